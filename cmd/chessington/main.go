package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/daystram/chessington/board"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")
	debug   = flag.Bool("debug", false, "enable debug logs")

	movegenMode   = flag.Bool("movegen", false, "list available moves, the default mode")
	movegenSquare = flag.String("movegen.square", "", "only list moves of the piece on this square, e.g. e2")
	movegenDraw   = flag.Bool("movegen.draw", false, "draw the board with highlighted destinations")

	perftDepth    = flag.Int("perft", 0, "run perft to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "run perft in parallel")

	stepPlies = flag.Int("step", 0, "play the given number of random plies")
	stepSeed  = flag.Int64("step.seed", 1, "random seed in step mode")
)

func main() {
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.WithError(err).Error("chessington failed")
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.WithField("addr", "http://"+addr+"/debug/pprof").Info("starting pprof endpoint")
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	switch selectMode(*movegenMode, *perftDepth, *stepPlies) {
	case modePerft:
		return perft(*perftDepth, fen, *perftParallel)
	case modeStep:
		return step(os.Stdout, fen, *stepPlies, *stepSeed)
	default:
		return movegen(os.Stdout, fen, *movegenSquare, *movegenDraw)
	}
}

type mode int

const (
	modeMovegen mode = iota
	modePerft
	modeStep
)

// selectMode picks the run mode from the flags. An explicit -movegen wins
// over the other modes.
func selectMode(movegen bool, perftDepth, stepPlies int) mode {
	switch {
	case movegen:
		return modeMovegen
	case perftDepth > 0:
		return modePerft
	case stepPlies > 0:
		return modeStep
	default:
		return modeMovegen
	}
}
