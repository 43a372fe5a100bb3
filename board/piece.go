package board

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind tags the movement rules a piece follows.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindBishop
	KindKnight
	KindRook
	KindQueen
	KindKing
)

// Kinds lists every valid kind.
var Kinds = []Kind{KindPawn, KindBishop, KindKnight, KindRook, KindQueen, KindKing}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

func (k Kind) SymbolAlgebra(s Side) string {
	if k == KindPawn {
		return ""
	}
	return k.SymbolFEN(s)
}

func (k Kind) SymbolFEN(s Side) string {
	var sym rune
	switch k {
	case KindPawn:
		sym = 'P'
	case KindBishop:
		sym = 'B'
	case KindKnight:
		sym = 'N'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (k Kind) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch k {
		case KindPawn:
			return "♙"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch k {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

func (k Kind) isValid() bool {
	return KindPawn <= k && k <= KindKing
}

// Piece is a single piece instance. Two pieces of the same kind and side are
// still distinct; the board tracks where each instance stands.
type Piece struct {
	id       uuid.UUID
	kind     Kind
	side     Side
	hasMoved bool
}

func NewPiece(k Kind, s Side) *Piece {
	return &Piece{
		id:   uuid.New(),
		kind: k,
		side: s,
	}
}

func (p *Piece) ID() uuid.UUID {
	return p.id
}

func (p *Piece) Kind() Kind {
	return p.kind
}

func (p *Piece) Side() Side {
	return p.side
}

// HasMoved reports whether the piece has been relocated since it was placed.
func (p *Piece) HasMoved() bool {
	return p.hasMoved
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s", p.side, p.kind)
}

func (p *Piece) isValid() bool {
	return p != nil && p.kind.isValid() && p.side.isValid()
}
