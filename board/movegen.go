package board

import (
	"fmt"

	"github.com/daystram/chessington/position"
)

type vector struct {
	dRow, dCol int
}

var (
	offsetsKnight = []vector{
		{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
		{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	}
	directionsDiagonal = []vector{
		{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
	}
	directionsLateral = []vector{
		{1, 0}, {-1, 0}, {0, -1}, {0, 1},
	}
	directionsAll = append(append([]vector{}, directionsDiagonal...), directionsLateral...)
)

// AvailableMoves returns every square p may move to on b under basic
// movement rules. King safety is not considered. The board is only read.
func (p *Piece) AvailableMoves(b *Board) ([]position.Square, error) {
	from, err := b.FindPiece(p)
	if err != nil {
		return nil, err
	}

	switch p.kind {
	case KindPawn:
		return b.genPawnDestinations(from, p.side), nil
	case KindKnight:
		return b.genHopDestinations(from, p.side, offsetsKnight), nil
	case KindBishop:
		return b.genRayDestinations(from, p.side, directionsDiagonal), nil
	case KindRook:
		return b.genRayDestinations(from, p.side, directionsLateral), nil
	case KindQueen:
		return b.genRayDestinations(from, p.side, directionsAll), nil
	case KindKing:
		// TODO: single step in all eight directions once king safety can be checked
		return []position.Square{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidPiece, p.kind)
	}
}

// MoveTo relocates p to sq. Destination legality is not checked.
func (p *Piece) MoveTo(b *Board, sq position.Square) error {
	from, err := b.FindPiece(p)
	if err != nil {
		return err
	}
	_, err = b.MovePiece(from, sq)
	return err
}

// GenerateMoves lists the moves of every piece of side s, in square order of
// the moving piece.
func (b *Board) GenerateMoves(s Side) ([]*Move, error) {
	var mvs []*Move
	for _, p := range b.Pieces(s) {
		from := b.squares[p]
		dsts, err := p.AvailableMoves(b)
		if err != nil {
			return nil, err
		}
		for _, to := range dsts {
			mvs = append(mvs, &Move{
				From:      from,
				To:        to,
				Piece:     p.kind,
				IsTurn:    p.side,
				IsCapture: !b.IsEmpty(to),
			})
		}
	}
	return mvs, nil
}

func (b *Board) genPawnDestinations(from position.Square, s Side) []position.Square {
	dsts := make([]position.Square, 0, 4)
	forward := pawnForward[s]

	// the double step needs the single step square to be empty too
	if one, ok := from.Offset(forward, 0); ok && b.IsEmpty(one) {
		dsts = append(dsts, one)
		if from.Row() == pawnStartRow[s] {
			if two, ok := from.Offset(2*forward, 0); ok && b.IsEmpty(two) {
				dsts = append(dsts, two)
			}
		}
	}

	for _, dCol := range [...]int{-1, 1} {
		if diag, ok := from.Offset(forward, dCol); ok && b.IsEnemy(diag, s) {
			dsts = append(dsts, diag)
		}
	}
	return dsts
}

// genHopDestinations checks each offset once, keeping squares that are empty
// or hold an opponent.
func (b *Board) genHopDestinations(from position.Square, s Side, offsets []vector) []position.Square {
	dsts := make([]position.Square, 0, len(offsets))
	for _, o := range offsets {
		to, ok := from.Offset(o.dRow, o.dCol)
		if !ok {
			continue
		}
		if b.IsEmpty(to) || b.IsEnemy(to, s) {
			dsts = append(dsts, to)
		}
	}
	return dsts
}

// genRayDestinations walks every direction until the edge or the first
// occupied square. An opponent on that square is included, a friendly piece
// is not.
func (b *Board) genRayDestinations(from position.Square, s Side, directions []vector) []position.Square {
	var dsts []position.Square
	for _, d := range directions {
		for i := 1; i < Width; i++ {
			to, ok := from.Offset(i*d.dRow, i*d.dCol)
			if !ok {
				break
			}
			if b.IsEmpty(to) {
				dsts = append(dsts, to)
				continue
			}
			if b.IsEnemy(to, s) {
				dsts = append(dsts, to)
			}
			break
		}
	}
	if dsts == nil {
		dsts = []position.Square{}
	}
	return dsts
}
