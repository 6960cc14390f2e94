// Package render draws boards for humans: a terminal diagram and an SVG image.
package render

import (
	"github.com/fatih/color"

	"github.com/daystram/bitcore/board"
)

const DefaultCellSize = 48

type config struct {
	color     bool
	cellSize  int
	highlight board.Bitmap
}

type Option func(*config)

// WithColor toggles ANSI colors in Text. Defaults to whatever the terminal supports.
func WithColor(enabled bool) Option {
	return func(cfg *config) {
		cfg.color = enabled
	}
}

// WithCellSize sets the SVG square size in pixels.
func WithCellSize(px int) Option {
	return func(cfg *config) {
		if px > 0 {
			cfg.cellSize = px
		}
	}
}

// WithHighlight marks squares, e.g. an attack set.
func WithHighlight(bm board.Bitmap) Option {
	return func(cfg *config) {
		cfg.highlight = bm
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		color:    !color.NoColor,
		cellSize: DefaultCellSize,
	}
	for _, f := range opts {
		f(cfg)
	}
	return cfg
}

func isLightSquare(x, y int) bool {
	return x%2^y%2 != 0
}
