package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/apex/log"
	"github.com/montanaflynn/stats"

	"github.com/daystram/chessington/board"
)

// step plays random pseudo-legal plies from fen, printing every position and
// timing move generation and relocation.
func step(w io.Writer, fen string, plies int, seed int64) error {
	b, turn, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed))

	var (
		timesGenerateMoves stats.Float64Data
		timesApply         stats.Float64Data
	)
	for ply := 0; ply < plies; ply++ {
		t1 := time.Now()
		mvs, err := b.GenerateMoves(turn)
		if err != nil {
			return err
		}
		timesGenerateMoves = append(timesGenerateMoves, float64(time.Since(t1).Nanoseconds()))
		if len(mvs) == 0 {
			log.WithField("side", turn.String()).Info("no moves left")
			break
		}
		mv := mvs[rng.Intn(len(mvs))]

		t1 = time.Now()
		captured, err := b.MovePiece(mv.From, mv.To)
		if err != nil {
			return err
		}
		timesApply = append(timesApply, float64(time.Since(t1).Nanoseconds()))
		if captured != nil {
			log.WithFields(log.Fields{
				"move":     mv.Algebra(),
				"captured": captured.String(),
			}).Debug("capture")
		}

		turn = turn.Opposite()
		pos, err := board.MarshalFEN(b, turn)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n===== [#%d] %s: %s\n", ply/2+1, mv.IsTurn, mv)
		fmt.Fprintln(w, b.Dump())
		fmt.Fprintln(w, pos)
	}

	fmt.Fprintln(w)
	for _, t := range []struct {
		name string
		data stats.Float64Data
	}{
		{name: "genmv", data: timesGenerateMoves},
		{name: "apply", data: timesApply},
	} {
		line, err := summarize(t.data)
		if err != nil {
			return fmt.Errorf("%s: %w", t.name, err)
		}
		fmt.Fprintf(w, "%s: %s\n", t.name, line)
	}
	return nil
}

func summarize(ns stats.Float64Data) (string, error) {
	if len(ns) == 0 {
		return "no samples", nil
	}
	mean, err := stats.Mean(ns)
	if err != nil {
		return "", err
	}
	median, err := stats.Median(ns)
	if err != nil {
		return "", err
	}
	p95, err := stats.Percentile(ns, 95)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("mean=%s median=%s p95=%s",
		time.Duration(mean), time.Duration(median), time.Duration(p95)), nil
}
