package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/bitcore/position"
)

func naiveBitCount(bm Bitmap) uint8 {
	var n uint8
	for i := 0; i < 64; i++ {
		if bm>>i&1 == 1 {
			n++
		}
	}
	return n
}

func TestBitmapBitCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(0), Bitmap(0).BitCount())
	assert.Equal(t, uint8(64), (^Bitmap(0)).BitCount())
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		bm := maskCell[pos]
		assert.Equal(t, naiveBitCount(bm), bm.BitCount(), "single bit %s", pos)
	}
	for _, bm := range []Bitmap{0x_FF_FF_00_00_00_00_FF_FF, 0x_81_00_00_00_00_00_00_81, 0x_55_AA_55_AA_55_AA_55_AA, 0x_12_34_56_78_9A_BC_DE_F0} {
		assert.Equal(t, naiveBitCount(bm), bm.BitCount(), "%#x", uint64(bm))
	}
}

func TestBitmapLS1BMS1B(t *testing.T) {
	t.Parallel()

	assert.Equal(t, position.None, Bitmap(0).LS1B())
	assert.Equal(t, position.None, Bitmap(0).MS1B())

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		assert.Equal(t, pos, maskCell[pos].LS1B())
		assert.Equal(t, pos, maskCell[pos].MS1B())
	}

	bm := maskCell[position.C3] | maskCell[position.F6] | maskCell[position.H2]
	assert.Equal(t, position.H2, bm.LS1B())
	assert.Equal(t, position.F6, bm.MS1B())
}

func TestBitmapSetUnset(t *testing.T) {
	t.Parallel()

	var bm Bitmap
	bm.Set(position.B3)
	assert.True(t, bm.IsSet(position.B3))
	assert.False(t, bm.IsSet(position.C4))

	bm.Set(position.B3)
	assert.Equal(t, uint8(1), bm.BitCount())

	bm.Unset(position.B3)
	assert.Equal(t, Bitmap(0), bm)

	bm.Unset(position.H8)
	assert.Equal(t, Bitmap(0), bm)

	bm.Toggle(maskCell[position.A1] | maskCell[position.H8])
	assert.Equal(t, []position.Pos{position.A1, position.H8}, bm.Squares())
	bm.Toggle(maskCell[position.A1])
	assert.Equal(t, []position.Pos{position.H8}, bm.Squares())
}

func TestBitmapPopLS1B(t *testing.T) {
	t.Parallel()

	bm := maskCell[position.A1] | maskCell[position.B2] | maskCell[position.H8]
	var got []position.Pos
	for bm != 0 {
		got = append(got, bm.PopLS1B())
	}
	assert.Equal(t, []position.Pos{position.A1, position.B2, position.H8}, got)
	assert.Equal(t, position.None, bm.PopLS1B())
	assert.Equal(t, Bitmap(0), bm)
	assert.Empty(t, bm.Squares())
}

func TestBitmapDump(t *testing.T) {
	t.Parallel()

	bm := maskCell[position.A1] | maskCell[position.H8] | maskCell[position.E4]
	want := "" +
		"0 0 0 0 0 0 0 1\n" +
		"0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 1 0 0 0\n" +
		"0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0\n" +
		"1 0 0 0 0 0 0 0\n"
	require.Equal(t, want, bm.Dump())
	assert.Contains(t, bm.Diagram(), " 4 | .  .  .  .  #  .  .  . ")
}

func TestBitmapUnion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Bitmap(0), Union())
	assert.Equal(t, maskRow[position.Rank1]|maskCol[position.FileA], Union(maskRow[position.Rank1], maskCol[position.FileA], maskCell[position.A1]))
}
