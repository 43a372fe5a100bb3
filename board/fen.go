package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/chessington/position"
)

// UnmarshalFEN places the pieces described by fen onto b, replacing its
// contents. b is left untouched when fen is invalid. Only the placement field is required. Castling, en passant and
// clock fields are checked for shape and otherwise ignored.
func UnmarshalFEN(fen string, b *Board) (Side, error) {
	if b == nil {
		return SideUnknown, fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) > 6 {
		return SideUnknown, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != Height {
		return SideUnknown, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	parsed := &Board{squares: make(map[*Piece]position.Square)}
	for row := 0; row < Height; row++ {
		ptrX, ptrY := -1, Height-row-1
		for col := 0; col < Width; col++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return SideUnknown, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			var s Side
			var k Kind
			switch cell := rune(rows[ptrY][ptrX]); cell {
			case 'P':
				s, k = SideWhite, KindPawn
			case 'B':
				s, k = SideWhite, KindBishop
			case 'N':
				s, k = SideWhite, KindKnight
			case 'R':
				s, k = SideWhite, KindRook
			case 'Q':
				s, k = SideWhite, KindQueen
			case 'K':
				s, k = SideWhite, KindKing
			case 'p':
				s, k = SideBlack, KindPawn
			case 'b':
				s, k = SideBlack, KindBishop
			case 'n':
				s, k = SideBlack, KindKnight
			case 'r':
				s, k = SideBlack, KindRook
			case 'q':
				s, k = SideBlack, KindQueen
			case 'k':
				s, k = SideBlack, KindKing
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := int(cell - '0')
					if col+skip-1 < Width {
						col += skip - 1
						continue
					}
					return SideUnknown, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return SideUnknown, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if err := parsed.SetPiece(position.MustSquare(row, col), NewPiece(k, s)); err != nil {
				return SideUnknown, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
			}
		}
		if ptrX != len(rows[ptrY])-1 {
			return SideUnknown, fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}

	turn := SideWhite
	if len(segments) > 1 {
		switch segments[1] {
		case "w":
			turn = SideWhite
		case "b":
			turn = SideBlack
		default:
			return SideUnknown, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
		}
	}

	if len(segments) > 2 {
		if len(segments[2]) > 4 || segments[2] == "" {
			return SideUnknown, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
		if segments[2] != "-" && strings.Trim(segments[2], "KQkq") != "" {
			return SideUnknown, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if len(segments) > 3 && segments[3] != "-" {
		if _, err := position.NewSquareFromNotation(segments[3]); err != nil {
			return SideUnknown, fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
	}

	if len(segments) > 4 {
		if _, err := strconv.ParseUint(segments[4], 10, 64); err != nil {
			return SideUnknown, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
		}
	}

	if len(segments) > 5 {
		if _, err := strconv.ParseUint(segments[5], 10, 64); err != nil {
			return SideUnknown, fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
		}
	}

	b.cells, b.squares = parsed.cells, parsed.squares
	return turn, nil
}

// MarshalFEN returns the placement field of b. When turn is known the
// remaining fields are appended with no castling, no en passant and fresh
// clocks.
func MarshalFEN(b *Board, turn Side) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	for row := Height - 1; row >= 0; row-- {
		skip := 0
		for col := 0; col < Width; col++ {
			p := b.cells[row][col]
			if p == nil {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.kind.SymbolFEN(p.side))
		}
		if skip != 0 {
			_, _ = builder.WriteString(strconv.Itoa(skip))
		}
		if row > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	switch turn {
	case SideWhite:
		_, _ = builder.WriteString(" w - - 0 1")
	case SideBlack:
		_, _ = builder.WriteString(" b - - 0 1")
	}
	return builder.String(), nil
}
