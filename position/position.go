package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
	// ErrOutOfBounds represents a coordinate outside of the board.
	ErrOutOfBounds = errors.New("square out of bounds")
)

// Square is a (row, col) coordinate on the board. Row 0 is rank 1 and col 0
// is file a. The zero value is a1.
type Square struct {
	row, col int8
}

// NewSquare returns the square at row and col, rejecting coordinates outside
// of the board.
func NewSquare(row, col int) (Square, error) {
	if !InBounds(row, col) {
		return Square{}, fmt.Errorf("%w: row=%d col=%d", ErrOutOfBounds, row, col)
	}
	return Square{row: int8(row), col: int8(col)}, nil
}

// MustSquare is like NewSquare but panics on out of bounds coordinates.
func MustSquare(row, col int) Square {
	sq, err := NewSquare(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

func NewSquareFromNotation(n string) (Square, error) {
	col, row, err := notationToXY(n)
	if err != nil {
		return Square{}, err
	}
	return Square{row: int8(row), col: int8(col)}, nil
}

// InBounds reports whether row and col address a square on the board.
func InBounds(row, col int) bool {
	return 0 <= row && row < MaxComponentScalar && 0 <= col && col < MaxComponentScalar
}

func (s Square) Row() int {
	return int(s.row)
}

func (s Square) Col() int {
	return int(s.col)
}

// Index returns the little-endian rank-file index, a1 = 0 and h8 = 63.
func (s Square) Index() int {
	return int(s.row)*MaxComponentScalar + int(s.col)
}

// Offset returns the square dRow rows and dCol cols away from s. The second
// value is false when the result falls off the board.
func (s Square) Offset(dRow, dCol int) (Square, bool) {
	row, col := int(s.row)+dRow, int(s.col)+dCol
	if !InBounds(row, col) {
		return Square{}, false
	}
	return Square{row: int8(row), col: int8(col)}, true
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	return NotationComponentX(s.Col()) + NotationComponentY(s.Row())
}

func notationToXY(n string) (int, int, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	x, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func notationToX(x byte) (int, error) {
	pX := int(x) - 'a'
	if pX < 0 || MaxComponentScalar <= pX {
		return 0, ErrInvalidNotation
	}
	return pX, nil
}

func notationToY(y byte) (int, error) {
	pY := int(y) - '1'
	if pY < 0 || MaxComponentScalar <= pY {
		return 0, ErrInvalidNotation
	}
	return pY, nil
}

// NotationComponentX returns the file letter of col.
func NotationComponentX(col int) string {
	if col < 0 || MaxComponentScalar <= col {
		return ""
	}
	return string(rune('a' + col))
}

// NotationComponentY returns the rank digit of row.
func NotationComponentY(row int) string {
	if row < 0 || MaxComponentScalar <= row {
		return ""
	}
	return string(rune('1' + row))
}
