package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/daystram/bitcore/board"
	"github.com/daystram/bitcore/position"
)

const (
	files, ranks = int(board.Width), int(board.Height)

	fillLight     = "fill:#eeeed2"
	fillDark      = "fill:#769656"
	fillHighlight = "fill:#f6f669;fill-opacity:0.7"
)

// SVG writes b as a standalone SVG document, rank 8 on top. File and rank
// labels are drawn in a margin of half a square.
func SVG(w io.Writer, b *board.Board, opts ...Option) {
	cfg := newConfig(opts)
	cs := cfg.cellSize
	margin := cs / 2
	size := cs*files + 2*margin

	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#ffffff")

	glyph := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central;font-family:sans-serif", cs*3/4)
	label := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central;font-family:sans-serif;fill:#555555", cs/4)

	canvas.Gid("squares")
	for y := 0; y < ranks; y++ {
		for x := 0; x < files; x++ {
			px, py := margin+x*cs, margin+(ranks-1-y)*cs
			fill := fillDark
			if isLightSquare(x, y) {
				fill = fillLight
			}
			canvas.Rect(px, py, cs, cs, fill)
			if cfg.highlight.IsSet(position.NewPos(position.Pos(x), position.Pos(y))) {
				canvas.Rect(px, py, cs, cs, fillHighlight)
			}
		}
	}
	canvas.Gend()

	canvas.Gid("pieces")
	for y := 0; y < ranks; y++ {
		for x := 0; x < files; x++ {
			pos := position.NewPos(position.Pos(x), position.Pos(y))
			s, ok := b.SideAt(pos)
			if !ok {
				continue
			}
			p, _ := b.PieceAt(pos)
			px, py := margin+x*cs+cs/2, margin+(ranks-1-y)*cs+cs/2
			canvas.Text(px, py, p.SymbolUnicode(s, false), glyph)
		}
	}
	canvas.Gend()

	canvas.Gid("labels")
	for i := 0; i < files; i++ {
		canvas.Text(margin+i*cs+cs/2, size-margin/2, position.Pos(i).NotationComponentX(), label)
		canvas.Text(margin/2, margin+(ranks-1-i)*cs+cs/2, position.Pos(i).NotationComponentY(), label)
	}
	canvas.Gend()
	canvas.End()
}
