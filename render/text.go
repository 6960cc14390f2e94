package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/bitcore/board"
	"github.com/daystram/bitcore/position"
)

// Text draws b as an 8x8 diagram, rank 8 on top, followed by the side to move,
// castling rights, en passant square and both clocks.
func Text(b *board.Board, opts ...Option) string {
	cfg := newConfig(opts)
	builder := strings.Builder{}
	if cfg.color {
		drawColor(&builder, b, cfg.highlight)
	} else {
		drawPlain(&builder, b, cfg.highlight)
	}
	_, _ = builder.WriteString("\n")
	_, _ = builder.WriteString(fmt.Sprintf("side to move: %s\n", b.Turn()))
	_, _ = builder.WriteString(fmt.Sprintf("castling:     %s\n", b.CastleRights()))
	_, _ = builder.WriteString(fmt.Sprintf("en passant:   %s\n", b.EnPassant()))
	_, _ = builder.WriteString(fmt.Sprintf("half move:    %d\n", b.HalfMoveClock()))
	_, _ = builder.WriteString(fmt.Sprintf("full move:    %d\n", b.FullMoveClock()))
	return builder.String()
}

func drawPlain(builder *strings.Builder, b *board.Board, highlight board.Bitmap) {
	for y := position.Pos(board.Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < board.Width; x++ {
			pos := y*board.Width + x
			sym := " "
			if highlight.IsSet(pos) {
				sym = "*"
			}
			if s, ok := b.SideAt(pos); ok {
				p, _ := b.PieceAt(pos)
				sym = p.SymbolFEN(s)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < board.Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	_, _ = builder.WriteString("\n")
}

func drawColor(builder *strings.Builder, b *board.Board, highlight board.Bitmap) {
	label := color.New(color.Bold)
	dark := color.New(color.FgBlack, color.BgGreen)
	light := color.New(color.FgBlack, color.BgHiWhite)
	marked := color.New(color.FgBlack, color.BgHiYellow)
	for _, c := range []*color.Color{label, dark, light, marked} {
		c.EnableColor()
	}

	for y := position.Pos(board.Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(label.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < board.Width; x++ {
			pos := y*board.Width + x
			sym := " "
			if s, ok := b.SideAt(pos); ok {
				p, _ := b.PieceAt(pos)
				sym = p.SymbolUnicode(s, false)
			}
			cell := dark
			switch {
			case highlight.IsSet(pos):
				cell = marked
			case isLightSquare(int(x), int(y)):
				cell = light
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < board.Width; x++ {
		_, _ = builder.WriteString(label.Sprintf(" %s ", x.NotationComponentX()))
	}
	_, _ = builder.WriteString("\n")
}
