package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/daystram/bitcore/board"
	"github.com/daystram/bitcore/render"
)

type inspectConfig struct {
	moves   []string
	attacks bool
	check   bool
	color   bool
	svgPath string
}

func inspect(fen string, cfg inspectConfig) error {
	log.Println("============ inspect")
	return inspectTo(os.Stdout, fen, cfg)
}

func inspectTo(w io.Writer, fen string, cfg inspectConfig) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	if cfg.check {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, render.Text(b, render.WithColor(cfg.color)))
	fmt.Fprintln(w, b.FEN())

	for i, uci := range cfg.moves {
		mv, err := b.NewMoveUCI(uci)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		b.Apply(mv)
		if cfg.check {
			if err := b.Validate(); err != nil {
				return fmt.Errorf("move %d %s: %w", i+1, uci, err)
			}
		}
		fmt.Fprintf(w, "\n===== [#%d] %s: %s (%s)\n", i+1, mv.IsTurn, mv, mv.Kind)
		fmt.Fprintln(w, render.Text(b, render.WithColor(cfg.color)))
		fmt.Fprintln(w, b.FEN())
	}

	if cfg.attacks {
		dumpAttacks(w, b)
	}

	if cfg.svgPath != "" {
		f, err := os.Create(cfg.svgPath)
		if err != nil {
			return err
		}
		defer f.Close()
		render.SVG(f, b, render.WithHighlight(b.AttackedSquares(b.Turn().Opposite())))
		log.Printf("wrote %s\n", cfg.svgPath)
	}
	return nil
}

func dumpAttacks(w io.Writer, b *board.Board) {
	for _, s := range board.SideList {
		attacked := b.AttackedSquares(s)
		fmt.Fprintf(w, "\nattacked by %s (%d squares, opposing king checked=%v):\n",
			s, attacked.BitCount(), b.IsKingChecked(s.Opposite()))
		fmt.Fprint(w, attacked.Dump())
	}
}
