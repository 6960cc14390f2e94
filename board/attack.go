package board

import (
	"github.com/daystram/bitcore/position"
)

// PawnAttacks returns the squares the given pawns capture on. Pushes are not included.
func PawnAttacks(s Side, pawns Bitmap) Bitmap {
	switch s {
	case SideWhite:
		return ShiftNW(pawns&maskNotA) | ShiftNE(pawns&maskNotH)
	case SideBlack:
		return ShiftSW(pawns&maskNotA) | ShiftSE(pawns&maskNotH)
	default:
		return 0
	}
}

func KnightAttacks(pos position.Pos) Bitmap {
	return maskKnight[pos]
}

func KingAttacks(pos position.Pos) Bitmap {
	return maskKing[pos]
}

// BishopAttacks casts the four diagonal rays from pos. Each ray includes the
// first occupied square it meets.
func BishopAttacks(pos position.Pos, occupied Bitmap) Bitmap {
	return castRays(pos, occupied, &dirsDiagonal)
}

// RookAttacks casts the four lateral rays from pos. Each ray includes the
// first occupied square it meets.
func RookAttacks(pos position.Pos, occupied Bitmap) Bitmap {
	return castRays(pos, occupied, &dirsLateral)
}

func QueenAttacks(pos position.Pos, occupied Bitmap) Bitmap {
	return Union(BishopAttacks(pos, occupied), RookAttacks(pos, occupied))
}

func castRays(pos position.Pos, occupied Bitmap, dirs *[4][2]position.Pos) Bitmap {
	var attacks Bitmap
	for _, d := range dirs {
		x, y := pos.X()+d[0], pos.Y()+d[1]
		for 0 <= x && x < Width && 0 <= y && y < Height {
			hit := y*Width + x
			attacks.Set(hit)
			if occupied.IsSet(hit) {
				break
			}
			x, y = x+d[0], y+d[1]
		}
	}
	return attacks
}

// AttacksFrom returns the squares attacked by the piece standing on pos, or
// an empty bitmap when pos is empty.
func (b *Board) AttacksFrom(pos position.Pos) Bitmap {
	s, p, ok := b.getSideAndPieceByPos(pos)
	if !ok {
		return 0
	}
	switch p {
	case PiecePawn:
		return PawnAttacks(s, maskCell[pos])
	case PieceKnight:
		return KnightAttacks(pos)
	case PieceBishop:
		return BishopAttacks(pos, b.Occupied())
	case PieceRook:
		return RookAttacks(pos, b.Occupied())
	case PieceQueen:
		return QueenAttacks(pos, b.Occupied())
	case PieceKing:
		return KingAttacks(pos)
	default:
		return 0
	}
}

// AttackedSquares returns every square attacked by side s. The king is read
// from the lowest bit of its bitmap.
func (b *Board) AttackedSquares(s Side) Bitmap {
	if s != SideWhite && s != SideBlack {
		return 0
	}
	occupied := b.Occupied()
	pieces := &b.pieces[s]

	attacks := PawnAttacks(s, pieces[PiecePawn])
	for bm := pieces[PieceKnight]; bm != 0; {
		attacks |= KnightAttacks(bm.PopLS1B())
	}
	for bm := pieces[PieceBishop] | pieces[PieceQueen]; bm != 0; {
		attacks |= BishopAttacks(bm.PopLS1B(), occupied)
	}
	for bm := pieces[PieceRook] | pieces[PieceQueen]; bm != 0; {
		attacks |= RookAttacks(bm.PopLS1B(), occupied)
	}
	if king := pieces[PieceKing].LS1B(); king.Valid() {
		attacks |= KingAttacks(king)
	}
	return attacks
}

// IsAttacked reports whether pos is attacked by side s.
func (b *Board) IsAttacked(pos position.Pos, s Side) bool {
	return b.AttackedSquares(s).IsSet(pos)
}

// IsKingChecked reports whether the king of side s stands on a square attacked by the opponent.
func (b *Board) IsKingChecked(s Side) bool {
	return b.pieces[s][PieceKing]&b.AttackedSquares(s.Opposite()) != 0
}
