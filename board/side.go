package board

import "github.com/daystram/chessington/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

var (
	// pawnForward is the row delta of a single pawn step.
	pawnForward = [2 + 1]int{
		SideWhite: 1,
		SideBlack: -1,
	}
	pawnStartRow = [2 + 1]int{
		SideWhite: 1,
		SideBlack: position.MaxComponentScalar - 2,
	}
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

func (s Side) isValid() bool {
	return s == SideWhite || s == SideBlack
}
