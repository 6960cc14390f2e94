package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/bitcore/position"
)

// Bitmap is a set of squares, one bit per square in little-endian rank-file order.
type Bitmap uint64

func ShiftNW(bm Bitmap) Bitmap {
	return bm << 7
}

func ShiftN(bm Bitmap) Bitmap {
	return bm << 8
}

func ShiftNE(bm Bitmap) Bitmap {
	return bm << 9
}

func ShiftE(bm Bitmap) Bitmap {
	return bm << 1
}

func ShiftSE(bm Bitmap) Bitmap {
	return bm >> 7
}

func ShiftS(bm Bitmap) Bitmap {
	return bm >> 8
}

func ShiftSW(bm Bitmap) Bitmap {
	return bm >> 9
}

func ShiftW(bm Bitmap) Bitmap {
	return bm >> 1
}

func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func (bm *Bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm *Bitmap) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

// Toggle flips every square in mask.
func (bm *Bitmap) Toggle(mask Bitmap) {
	*bm ^= mask
}

func (bm Bitmap) IsSet(pos position.Pos) bool {
	return bm&maskCell[pos] != 0
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// LS1B returns the lowest set square, or position.None if bm is empty.
func (bm Bitmap) LS1B() position.Pos {
	if bm == 0 {
		return position.None
	}
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

// MS1B returns the highest set square, or position.None if bm is empty.
func (bm Bitmap) MS1B() position.Pos {
	if bm == 0 {
		return position.None
	}
	return position.Pos(63 - bits.LeadingZeros64(uint64(bm)))
}

// PopLS1B clears and returns the lowest set square, or position.None if bm is empty.
func (bm *Bitmap) PopLS1B() position.Pos {
	pos := bm.LS1B()
	*bm &= *bm - 1
	return pos
}

// Squares lists the set squares in ascending order.
func (bm Bitmap) Squares() []position.Pos {
	sqs := make([]position.Pos, 0, bm.BitCount())
	for bm != 0 {
		sqs = append(sqs, bm.PopLS1B())
	}
	return sqs
}

// Dump renders the raw bit pattern as 8 rows of '0'/'1', rank 8 first.
func (bm Bitmap) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		for x := position.Pos(0); x < Width; x++ {
			if x > 0 {
				_ = builder.WriteByte(' ')
			}
			if bm.IsSet(y*Width + x) {
				_ = builder.WriteByte('1')
			} else {
				_ = builder.WriteByte('0')
			}
		}
		_ = builder.WriteByte('\n')
	}
	return builder.String()
}

// Diagram renders the set squares on a labelled grid.
func (bm Bitmap) Diagram(sym ...rune) string {
	builder := strings.Builder{}
	for y := Height; y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := position.Pos(0); x < Width; x++ {
			if bm.IsSet((y-1)*Width + x) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
