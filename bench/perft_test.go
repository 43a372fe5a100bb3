package bench

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/daystram/chessington/board"
)

func TestPerft(t *testing.T) {
	t.Parallel()

	tests := map[string][]struct {
		depth     int
		wantNodes uint64
		wantCap   uint64
	}{
		board.DefaultStartingPositionFEN: {
			{depth: 0, wantNodes: 1},
			{depth: 1, wantNodes: 20},
			{depth: 2, wantNodes: 400},
		},
		"8/8/8/3p4/4P3/8/8/8 w - - 0 1": {
			{depth: 1, wantNodes: 2, wantCap: 1},
			{depth: 2, wantNodes: 1},
		},
		"8/8/8/8/8/8/8/R7 w - - 0 1": {
			{depth: 1, wantNodes: 14},
			{depth: 2, wantNodes: 0},
		},
		"8/8/8/8/8/8/8/R6r b - - 0 1": {
			{depth: 1, wantNodes: 14, wantCap: 1},
		},
	}

	for fen, cases := range tests {
		fen, cases := fen, cases
		for _, tt := range cases {
			tt := tt
			for _, parallel := range []bool{false, true} {
				parallel := parallel
				t.Run(fmt.Sprintf("%s/d=%d/parallel=%v", fen, tt.depth, parallel), func(t *testing.T) {
					t.Parallel()
					got, err := Perft(tt.depth, fen, parallel, nil)
					if err != nil {
						t.Fatal("unexpected error:", err)
					}
					if got.Nodes != tt.wantNodes {
						t.Errorf("unexpected nodes: got=%d want=%d", got.Nodes, tt.wantNodes)
					}
					if got.Captures != tt.wantCap {
						t.Errorf("unexpected captures: got=%d want=%d", got.Captures, tt.wantCap)
					}
				})
			}
		}
	}
}

func TestPerftDivide(t *testing.T) {
	t.Parallel()
	out := make(chan string, 64)
	got, err := Perft(2, board.DefaultStartingPositionFEN, false, out)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	close(out)

	var lines []string
	for line := range out {
		lines = append(lines, line)
	}
	if len(lines) != 20 {
		t.Fatalf("unexpected root move count: got=%d want=20", len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, ": 20") {
			t.Errorf("unexpected divide line: %s", line)
		}
	}
	if !strings.Contains(got.String(), "nodes=400") {
		t.Errorf("unexpected report: %s", got)
	}
}

func TestPerftInvalidFEN(t *testing.T) {
	t.Parallel()
	if _, err := Perft(1, "invalid fen", false, nil); err == nil {
		t.Error("error expected: got=nil")
	}
}

func TestPerftNegativeDepth(t *testing.T) {
	t.Parallel()
	for _, parallel := range []bool{false, true} {
		if _, err := Perft(-1, "8/8/8/8/8/8/8/R6r w - - 0 1", parallel, nil); !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("unexpected error: parallel=%v got=%v want=%v", parallel, err, ErrInvalidDepth)
		}
	}
}
