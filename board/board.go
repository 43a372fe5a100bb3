package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessington/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	ErrInvalidFEN    = errors.New("invalid fen")
	ErrPieceNotFound = errors.New("piece not found")
	ErrEmptySquare   = errors.New("square is empty")
	ErrInvalidPiece  = errors.New("invalid piece")
	ErrInvalidMove   = errors.New("invalid move")

	colorCellLight = color.New(38, 5, 233, 48, 5, 194)
	colorCellDark  = color.New(38, 5, 233, 48, 5, 77)
	colorLabel     = color.New(color.Bold)
)

// Board is a mailbox grid of pieces with a reverse index from piece instance
// to square. The zero value is an empty board ready to use. A Board is not safe for concurrent mutation; concurrent
// readers are fine as long as nothing relocates pieces meanwhile.
type Board struct {
	// grid data, indexed [row][col]
	cells [Height][Width]*Piece

	// reverse lookup, one entry per placed piece
	squares map[*Piece]position.Square
}

type boardConfig struct {
	fen    string
	useFEN bool
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
		cfg.useFEN = true
	}
}

func WithStartingPosition() BoardOption {
	return WithFEN(DefaultStartingPositionFEN)
}

// NewBoard creates an empty board unless a FEN option is given. The returned
// side is the side to move recorded in the FEN, SideWhite otherwise.
func NewBoard(opts ...BoardOption) (*Board, Side, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{
		squares: make(map[*Piece]position.Square),
	}
	if !cfg.useFEN {
		return b, SideWhite, nil
	}
	turn, err := UnmarshalFEN(cfg.fen, b)
	if err != nil {
		return nil, SideUnknown, err
	}
	return b, turn, nil
}

// GetPiece returns the piece standing on sq, or nil.
func (b *Board) GetPiece(sq position.Square) *Piece {
	return b.cells[sq.Row()][sq.Col()]
}

// FindPiece returns the square holding p.
func (b *Board) FindPiece(p *Piece) (position.Square, error) {
	sq, ok := b.squares[p]
	if !ok {
		return position.Square{}, fmt.Errorf("%w: %v", ErrPieceNotFound, p)
	}
	return sq, nil
}

// SetPiece places p on sq. If p already stands elsewhere it is lifted from
// there first; any other piece on sq is taken off the board.
func (b *Board) SetPiece(sq position.Square, p *Piece) error {
	if !p.isValid() {
		return fmt.Errorf("%w: %v", ErrInvalidPiece, p)
	}
	if b.squares == nil {
		b.squares = make(map[*Piece]position.Square)
	}
	if old, ok := b.squares[p]; ok {
		b.cells[old.Row()][old.Col()] = nil
	}
	if occupant := b.cells[sq.Row()][sq.Col()]; occupant != nil && occupant != p {
		delete(b.squares, occupant)
	}
	b.cells[sq.Row()][sq.Col()] = p
	b.squares[p] = sq
	return nil
}

// RemovePiece clears sq and returns the piece that stood there, if any.
func (b *Board) RemovePiece(sq position.Square) *Piece {
	p := b.cells[sq.Row()][sq.Col()]
	if p == nil {
		return nil
	}
	b.cells[sq.Row()][sq.Col()] = nil
	delete(b.squares, p)
	return p
}

// MovePiece relocates the piece on from to to, capturing whatever stood on to.
// The captured piece, if any, is returned.
func (b *Board) MovePiece(from, to position.Square) (*Piece, error) {
	p := b.GetPiece(from)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	if from == to {
		return nil, fmt.Errorf("%w: %s to itself", ErrInvalidMove, from)
	}

	if b.squares == nil {
		b.squares = make(map[*Piece]position.Square)
	}
	captured := b.RemovePiece(to)
	b.cells[from.Row()][from.Col()] = nil
	b.cells[to.Row()][to.Col()] = p
	b.squares[p] = to
	p.hasMoved = true
	return captured, nil
}

func (b *Board) IsEmpty(sq position.Square) bool {
	return b.GetPiece(sq) == nil
}

// IsEnemy reports whether sq holds a piece not owned by s.
func (b *Board) IsEnemy(sq position.Square, s Side) bool {
	p := b.GetPiece(sq)
	return p != nil && p.side != s
}

// Pieces returns the pieces of side s in square index order. SideUnknown
// returns every piece.
func (b *Board) Pieces(s Side) []*Piece {
	var ps []*Piece
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			p := b.cells[row][col]
			if p == nil || (s != SideUnknown && p.side != s) {
				continue
			}
			ps = append(ps, p)
		}
	}
	return ps
}

// Clone deep copies the board. Cloned pieces keep their id and moved flag but
// are new instances, so the original board cannot locate them.
func (b *Board) Clone() *Board {
	bb := &Board{
		squares: make(map[*Piece]position.Square, len(b.squares)),
	}
	for p, sq := range b.squares {
		pp := *p
		bb.cells[sq.Row()][sq.Col()] = &pp
		bb.squares[&pp] = sq
	}
	return bb
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := Height - 1; row >= 0; row-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", position.NotationComponentY(row)))
		for col := 0; col < Width; col++ {
			sym := " "
			if p := b.cells[row][col]; p != nil {
				sym = p.kind.SymbolFEN(p.side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := 0; col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentX(col)))
	}
	return builder.String()
}

// Draw renders the board with unicode pieces on colored cells. Squares in
// highlight are marked with a dot when empty.
func (b *Board) Draw(highlight ...position.Square) string {
	marked := make(map[position.Square]bool, len(highlight))
	for _, sq := range highlight {
		marked[sq] = true
	}

	builder := strings.Builder{}
	for row := Height - 1; row >= 0; row-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", position.NotationComponentY(row)))
		for col := 0; col < Width; col++ {
			sym := " "
			if p := b.cells[row][col]; p != nil {
				sym = p.kind.SymbolUnicode(p.side, false)
			} else if marked[position.MustSquare(row, col)] {
				sym = "·"
			}
			cell := colorCellLight
			if row%2 == col%2 {
				cell = colorCellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := 0; col < Width; col++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", position.NotationComponentX(col)))
	}
	return builder.String()
}
