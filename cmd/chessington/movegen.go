package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/apex/log"

	"github.com/daystram/chessington/board"
	"github.com/daystram/chessington/position"
)

func movegen(w io.Writer, fen, square string, draw bool) error {
	log.WithField("fen", fen).Debug("movegen")
	b, turn, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "to move:", turn)
	fmt.Fprintln(w, b.Dump())

	if square == "" {
		for _, s := range []board.Side{turn, turn.Opposite()} {
			if err := dumpMoves(w, b, s); err != nil {
				return err
			}
		}
		return nil
	}

	sq, err := position.NewSquareFromNotation(square)
	if err != nil {
		return fmt.Errorf("%w: %s", err, square)
	}
	p := b.GetPiece(sq)
	if p == nil {
		return fmt.Errorf("%w: %s", board.ErrEmptySquare, sq)
	}
	dsts, err := p.AvailableMoves(b)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"piece":  p.String(),
		"id":     p.ID().String(),
		"square": sq.String(),
		"moves":  len(dsts),
	}).Debug("generated moves")
	for i, to := range dsts {
		fmt.Fprintf(w, "option %*d: %s %s => %s (cap=%v)\n",
			len(strconv.Itoa(len(dsts))), i+1, p, sq, to, !b.IsEmpty(to))
	}
	if draw {
		fmt.Fprintln(w, b.Draw(dsts...))
	}
	return nil
}

func dumpMoves(w io.Writer, b *board.Board, s board.Side) error {
	mvs, err := b.GenerateMoves(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d moves\n", s, len(mvs))
	for i, mv := range mvs {
		fmt.Fprintf(w, "option %*d: [%s] [%s] %s %s %s => %s (cap=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.IsTurn, mv.Piece, mv.From, mv.To, mv.IsCapture)
	}
	return nil
}
