package position

import (
	"errors"

	"golang.org/x/exp/constraints"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// None marks the absence of a square, e.g. no en passant target.
	None Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square index in little-endian rank-file order: a1=0, h1=7, a8=56, h8=63.
type Pos int8

const (
	FileA Pos = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Pos = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

//nolint:revive
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Pos = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2 Pos = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A3, B3, C3, D3, E3, F3, G3, H3 Pos = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A4, B4, C4, D4, E4, F4, G4, H4 Pos = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A5, B5, C5, D5, E5, F5, G5, H5 Pos = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A6, B6, C6, D6, E6, F6, G6, H6 Pos = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A7, B7, C7, D7, E7, F7, G7, H7 Pos = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A8, B8, C8, D8, E8, F8, G8, H8 Pos = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
)

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return None, err
	}
	return NewPos(x, y), nil
}

// NewPos returns the square at file x and rank y, or None when either is off the board.
func NewPos(x, y Pos) Pos {
	if x < 0 || MaxComponentScalar <= x || y < 0 || MaxComponentScalar <= y {
		return None
	}
	return MaxComponentScalar*y + x
}

func (p Pos) String() string {
	if !p.Valid() {
		return "-"
	}
	return p.Notation()
}

// Valid reports whether p addresses a square on the board.
func (p Pos) Valid() bool {
	return 0 <= p && p < MaxComponentScalar*MaxComponentScalar
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return string(rune('a'+p.X())) + string(rune('1'+p.Y()))
}

func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

// RankDistance returns how many ranks separate two squares.
func RankDistance(a, b Pos) Pos {
	return abs(a.Y() - b.Y())
}

// Midpoint returns the square halfway between two squares on the same file,
// e.g. the square a pawn skips on a double advance.
func Midpoint(a, b Pos) Pos {
	return (a + b) / 2
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if x < 'a' || 'a'+byte(MaxComponentScalar) <= x {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'a'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || '1'+byte(MaxComponentScalar) <= y {
		return 0, ErrInvalidNotation
	}
	return Pos(y - '1'), nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + p + 1))
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
