package bench

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessington/board"
)

var ErrInvalidDepth = errors.New("invalid depth")

// Result holds the counters of a perft run. Moves are pseudo-legal: king
// safety is ignored and the king itself is never moved.
type Result struct {
	Depth    int
	Nodes    uint64
	Captures uint64
	Elapsed  time.Duration
}

func (r Result) String() string {
	rate := 0
	if r.Elapsed > 0 {
		rate = int(float64(r.Nodes) / r.Elapsed.Seconds())
	}
	return message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d (%.3fs elapsed)",
			r.Depth, r.Nodes, rate, r.Captures, r.Elapsed.Seconds())
}

// Perft counts the leaf nodes reachable in depth plies from fen. When out is
// non-nil, the per-move counts of the root are sent to it.
func Perft(depth int, fen string, parallel bool, out chan<- string) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	var nodes, cap uint64
	b, turn, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return Result{}, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	if _, err := run(b, turn, depth, true, out, &nodes, &cap); err != nil {
		return Result{}, err
	}
	end := time.Now()

	return Result{
		Depth:    depth,
		Nodes:    nodes,
		Captures: cap,
		Elapsed:  end.Sub(start),
	}, nil
}

type perftFunc func(b *board.Board, s board.Side, d int, root bool, out chan<- string, nodes, cap *uint64) (uint64, error)

func runPerft(b *board.Board, s board.Side, d int, root bool, out chan<- string, nodes, cap *uint64) (uint64, error) {
	if d == 0 {
		*nodes++
		return 1, nil
	}

	mvs, err := b.GenerateMoves(s)
	if err != nil {
		return 0, err
	}
	var sum uint64
	for _, mv := range mvs {
		var child uint64
		if d != 1 {
			bb := b.Clone()
			if _, err := bb.MovePiece(mv.From, mv.To); err != nil {
				return 0, err
			}
			child, err = runPerft(bb, s.Opposite(), d-1, false, out, nodes, cap)
			if err != nil {
				return 0, err
			}
		} else {
			child = 1
			*nodes++
			if mv.IsCapture {
				*cap++
			}
		}
		if root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum, nil
}

func runPerftParallel(b *board.Board, s board.Side, d int, root bool, out chan<- string, nodes, cap *uint64) (uint64, error) {
	if d == 0 {
		atomic.AddUint64(nodes, 1)
		return 1, nil
	}

	mvs, err := b.GenerateMoves(s)
	if err != nil {
		return 0, err
	}
	var (
		sum      uint64
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for _, mv := range mvs {
		mv := mv
		if d == 1 {
			atomic.AddUint64(nodes, 1)
			if mv.IsCapture {
				atomic.AddUint64(cap, 1)
			}
			if root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), 1)
			}
			atomic.AddUint64(&sum, 1)
			continue
		}
		// every goroutine works on its own clone; b is only read
		bb := b.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := bb.MovePiece(mv.From, mv.To); err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			child, err := runPerftParallel(bb, s.Opposite(), d-1, false, out, nodes, cap)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			if root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return 0, firstErr
	}
	return sum, nil
}
