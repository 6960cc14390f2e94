package board

import (
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystram/bitcore/position"
)

func squares(sqs ...position.Pos) Bitmap {
	var bm Bitmap
	for _, sq := range sqs {
		bm.Set(sq)
	}
	return bm
}

func TestKnightAttacks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pos  position.Pos
		want Bitmap
	}{
		{pos: position.A1, want: squares(position.B3, position.C2)},
		{pos: position.H1, want: squares(position.G3, position.F2)},
		{pos: position.A8, want: squares(position.B6, position.C7)},
		{pos: position.H8, want: squares(position.G6, position.F7)},
		{pos: position.B1, want: squares(position.A3, position.C3, position.D2)},
		{pos: position.G7, want: squares(position.E8, position.E6, position.F5, position.H5)},
		{pos: position.D4, want: squares(position.C2, position.E2, position.B3, position.F3, position.B5, position.F5, position.C6, position.E6)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.pos.Notation(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want.Squares(), KnightAttacks(tt.pos).Squares())
		})
	}
}

func TestKingAttacks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pos  position.Pos
		want Bitmap
	}{
		{pos: position.A1, want: squares(position.A2, position.B2, position.B1)},
		{pos: position.H1, want: squares(position.H2, position.G2, position.G1)},
		{pos: position.H8, want: squares(position.H7, position.G7, position.G8)},
		{pos: position.A5, want: squares(position.A4, position.B4, position.B5, position.B6, position.A6)},
		{pos: position.E4, want: squares(position.D3, position.E3, position.F3, position.D4, position.F4, position.D5, position.E5, position.F5)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.pos.Notation(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want.Squares(), KingAttacks(tt.pos).Squares())
		})
	}
}

func TestPawnAttacks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, squares(position.B3), PawnAttacks(SideWhite, squares(position.A2)))
	assert.Equal(t, squares(position.G3), PawnAttacks(SideWhite, squares(position.H2)))
	assert.Equal(t, squares(position.D5, position.F5), PawnAttacks(SideWhite, squares(position.E4)))
	assert.Equal(t, squares(position.B6), PawnAttacks(SideBlack, squares(position.A7)))
	assert.Equal(t, squares(position.G6), PawnAttacks(SideBlack, squares(position.H7)))
	assert.Equal(t, squares(position.D4, position.F4), PawnAttacks(SideBlack, squares(position.E5)))
	assert.Equal(t, Bitmap(0), PawnAttacks(SideWhite, squares(position.C8)))
	assert.Equal(t, Bitmap(0), PawnAttacks(SideBlack, squares(position.C1)))
	assert.Equal(t, Bitmap(0), PawnAttacks(SideUnknown, squares(position.E4)))
	assert.Equal(t, maskRow[position.Rank3], PawnAttacks(SideWhite, maskRow[position.Rank2]))
}

func TestSlidingAttacksEmptyBoard(t *testing.T) {
	t.Parallel()

	rook := RookAttacks(position.D4, 0)
	assert.Equal(t, uint8(14), rook.BitCount())
	assert.Equal(t, (maskRow[position.Rank4]|maskCol[position.FileD])&^maskCell[position.D4], rook)

	bishop := BishopAttacks(position.D4, 0)
	assert.Equal(t, uint8(13), bishop.BitCount())
	assert.True(t, bishop.IsSet(position.A1))
	assert.True(t, bishop.IsSet(position.H8))
	assert.True(t, bishop.IsSet(position.A7))
	assert.True(t, bishop.IsSet(position.G1))
	assert.False(t, bishop.IsSet(position.D4))

	assert.Equal(t, rook|bishop, QueenAttacks(position.D4, 0))
	assert.Equal(t, uint8(27), QueenAttacks(position.D4, 0).BitCount())

	assert.Equal(t, uint8(14), RookAttacks(position.A1, 0).BitCount())
	assert.Equal(t, uint8(7), BishopAttacks(position.A1, 0).BitCount())
}

func TestSlidingAttacksBlocked(t *testing.T) {
	t.Parallel()

	occupied := squares(position.D6, position.F4, position.D2, position.B4, position.F6)
	assert.Equal(t,
		squares(position.D5, position.D6, position.D3, position.D2, position.E4, position.F4, position.C4, position.B4),
		RookAttacks(position.D4, occupied),
	)
	assert.Equal(t,
		squares(position.E5, position.F6,
			position.C5, position.B6, position.A7,
			position.E3, position.F2, position.G1,
			position.C3, position.B2, position.A1),
		BishopAttacks(position.D4, occupied),
	)

	// a blocker on the neighbouring square still counts as attacked
	assert.Equal(t, squares(position.A2, position.B1), RookAttacks(position.A1, squares(position.A2, position.B1)))
}

func TestSlidingAttacksMatchReference(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		occupied := Bitmap(r.Uint64() & r.Uint64())
		for pos := position.Pos(0); pos < TotalCells; pos++ {
			wantRook := Bitmap(dragontoothmg.CalculateRookMoveBitboard(uint8(pos), uint64(occupied)))
			wantBishop := Bitmap(dragontoothmg.CalculateBishopMoveBitboard(uint8(pos), uint64(occupied)))
			require.Equal(t, wantRook, RookAttacks(pos, occupied), "rook %s occ=%#x", pos, uint64(occupied))
			require.Equal(t, wantBishop, BishopAttacks(pos, occupied), "bishop %s occ=%#x", pos, uint64(occupied))
		}
	}
}

func TestAttackedSquaresStartingPosition(t *testing.T) {
	t.Parallel()

	b, err := NewBoard()
	require.NoError(t, err)

	assert.Equal(t, Bitmap(0x_00_00_00_00_00_FF_FF_7E), b.AttackedSquares(SideWhite))
	assert.Equal(t, Bitmap(0x_7E_FF_FF_00_00_00_00_00), b.AttackedSquares(SideBlack))
	assert.Equal(t, Bitmap(0), b.AttackedSquares(SideUnknown))
	assert.False(t, b.IsKingChecked(SideWhite))
	assert.False(t, b.IsKingChecked(SideBlack))
}

func TestAttackedSquaresScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		fen         string
		target      position.Pos
		by          Side
		wantAttack  bool
		wantChecked Side
	}{
		{
			name:        "rook on open file",
			fen:         "4r3/8/8/8/8/8/8/4K3 w - - 0 1",
			target:      position.E1,
			by:          SideBlack,
			wantAttack:  true,
			wantChecked: SideWhite,
		},
		{
			name:       "rook blocked on file",
			fen:        "4r3/8/8/8/8/4P3/8/4K3 w - - 0 1",
			target:     position.E1,
			by:         SideBlack,
			wantAttack: false,
		},
		{
			name:        "bishop on diagonal",
			fen:         "8/8/8/8/1b6/8/8/4K3 w - - 0 1",
			target:      position.E1,
			by:          SideBlack,
			wantAttack:  true,
			wantChecked: SideWhite,
		},
		{
			name:       "bishop blocked on diagonal",
			fen:        "8/8/8/8/1b6/8/3P4/4K3 w - - 0 1",
			target:     position.E1,
			by:         SideBlack,
			wantAttack: false,
		},
		{
			name:        "queen on diagonal",
			fen:         "7k/8/8/8/8/8/1q6/K7 w - - 0 1",
			target:      position.A1,
			by:          SideBlack,
			wantAttack:  true,
			wantChecked: SideWhite,
		},
		{
			name:        "knight check",
			fen:         "4k3/8/3N4/8/8/8/8/4K3 b - - 0 1",
			target:      position.E8,
			by:          SideWhite,
			wantAttack:  true,
			wantChecked: SideBlack,
		},
		{
			name:        "pawn check",
			fen:         "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1",
			target:      position.E8,
			by:          SideWhite,
			wantAttack:  true,
			wantChecked: SideBlack,
		},
		{
			name:       "pawn does not attack forward",
			fen:        "4k3/4P3/8/8/8/8/8/4K3 b - - 0 1",
			target:     position.E8,
			by:         SideWhite,
			wantAttack: false,
		},
		{
			name:       "pawn does not wrap around the edge",
			fen:        "k7/8/8/8/8/8/7P/K7 w - - 0 1",
			target:     position.A4,
			by:         SideWhite,
			wantAttack: false,
		},
		{
			name:       "kings attack each other",
			fen:        "8/8/8/3k4/8/3K4/8/8 w - - 0 1",
			target:     position.D4,
			by:         SideBlack,
			wantAttack: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard(WithFEN(tt.fen))
			require.NoError(t, err)

			assert.Equal(t, tt.wantAttack, b.IsAttacked(tt.target, tt.by))
			for _, s := range SideList {
				assert.Equal(t, s == tt.wantChecked, b.IsKingChecked(s), "side %s", s)
			}
		})
	}
}

func TestAttackedSquaresNoKing(t *testing.T) {
	t.Parallel()

	b, err := NewBoard(WithFEN("8/8/8/8/8/8/8/N7 w - - 0 1"))
	require.NoError(t, err)
	assert.Equal(t, squares(position.B3, position.C2), b.AttackedSquares(SideWhite))
	assert.Equal(t, Bitmap(0), b.AttackedSquares(SideBlack))
}

func TestAttackedSquaresDoesNotMutate(t *testing.T) {
	t.Parallel()

	b, err := NewBoard(WithFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"))
	require.NoError(t, err)
	before := *b
	_ = b.AttackedSquares(SideWhite)
	_ = b.AttackedSquares(SideBlack)
	_ = b.IsKingChecked(SideWhite)
	assert.Equal(t, before, *b)
}

func TestAttacksFrom(t *testing.T) {
	t.Parallel()

	b, err := NewBoard()
	require.NoError(t, err)

	assert.Equal(t, squares(position.A3, position.C3, position.D2), b.AttacksFrom(position.B1))
	assert.Equal(t, squares(position.D3, position.F3), b.AttacksFrom(position.E2))
	assert.Equal(t, squares(position.D6, position.F6), b.AttacksFrom(position.E7))
	assert.Equal(t, squares(position.C1, position.E1, position.C2, position.D2, position.E2), b.AttacksFrom(position.D1))
	assert.Equal(t, Bitmap(0), b.AttacksFrom(position.E4))

	var union Bitmap
	for bm := b.SideBitmap(SideWhite); bm != 0; {
		union |= b.AttacksFrom(bm.PopLS1B())
	}
	assert.Equal(t, b.AttackedSquares(SideWhite), union)
}
