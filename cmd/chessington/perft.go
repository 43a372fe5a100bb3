package main

import (
	"github.com/apex/log"

	"github.com/daystram/chessington/bench"
)

func perft(depth int, fen string, parallel bool) error {
	ctx := log.WithFields(log.Fields{
		"depth":    depth,
		"parallel": parallel,
	})
	ctx.Info("perft")

	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			ctx.Debug(line)
		}
	}()

	res, err := bench.Perft(depth, fen, parallel, out)
	close(out)
	<-done
	if err != nil {
		return err
	}
	ctx.Info(res.String())
	return nil
}
