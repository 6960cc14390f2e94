package board

import (
	"github.com/daystram/bitcore/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	maskCol = [Width]Bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]Bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	maskNotA  = ^maskCol[position.FileA]
	maskNotH  = ^maskCol[position.FileH]
	maskNotAB = ^(maskCol[position.FileA] | maskCol[position.FileB])
	maskNotGH = ^(maskCol[position.FileG] | maskCol[position.FileH])

	maskCell   [TotalCells]Bitmap
	maskKnight [TotalCells]Bitmap
	maskKing   [TotalCells]Bitmap

	// king and rook hops per castle direction, [from, to]
	posCastling = [4 + 1][6 + 1][2]position.Pos{
		CastleDirectionWhiteRight: {
			PieceKing: {position.E1, position.G1},
			PieceRook: {position.H1, position.F1},
		},
		CastleDirectionWhiteLeft: {
			PieceKing: {position.E1, position.C1},
			PieceRook: {position.A1, position.D1},
		},
		CastleDirectionBlackRight: {
			PieceKing: {position.E8, position.G8},
			PieceRook: {position.H8, position.F8},
		},
		CastleDirectionBlackLeft: {
			PieceKing: {position.E8, position.C8},
			PieceRook: {position.A8, position.D8},
		},
	}

	maskCastleRights = [4 + 1]CastleRights{
		CastleDirectionWhiteRight: 0b1000,
		CastleDirectionWhiteLeft:  0b0100,
		CastleDirectionBlackRight: 0b0010,
		CastleDirectionBlackLeft:  0b0001,
	}

	// bishop and rook ray directions as (dx, dy)
	dirsDiagonal = [4][2]position.Pos{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	dirsLateral  = [4][2]position.Pos{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
)

func init() {
	initMask()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := Bitmap(0)
		mask |= (cell << 17) & maskNotA
		mask |= (cell << 15) & maskNotH
		mask |= (cell << 10) & maskNotAB
		mask |= (cell << 6) & maskNotGH
		mask |= (cell >> 6) & maskNotAB
		mask |= (cell >> 10) & maskNotGH
		mask |= (cell >> 15) & maskNotA
		mask |= (cell >> 17) & maskNotH
		maskKnight[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := maskCell[pos]
		mask := Bitmap(0)
		mask |= ShiftN(cell &^ maskRow[7])
		mask |= ShiftNE(cell &^ maskRow[7] &^ maskCol[7])
		mask |= ShiftE(cell &^ maskCol[7])
		mask |= ShiftSE(cell &^ maskRow[0] &^ maskCol[7])
		mask |= ShiftS(cell &^ maskRow[0])
		mask |= ShiftSW(cell &^ maskRow[0] &^ maskCol[0])
		mask |= ShiftW(cell &^ maskCol[0])
		mask |= ShiftNW(cell &^ maskRow[7] &^ maskCol[0])
		maskKing[pos] = mask
	}
}
