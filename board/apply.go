package board

import (
	"github.com/daystram/bitcore/position"
)

// Apply plays mv and returns a function restoring the board to its state
// before the call. The move is not checked for legality.
func (b *Board) Apply(mv Move) (unApply func()) {
	prev := *b
	unApply = func() {
		*b = prev
	}

	s := mv.IsTurn
	switch mv.Kind {
	case MoveQuiet:
		b.move(s, mv.Piece, mv.From, mv.To)
	case MoveCapture:
		b.Remove(mv.To)
		b.move(s, mv.Piece, mv.From, mv.To)
	case MoveEnPassant:
		b.move(s, mv.Piece, mv.From, mv.To)
		b.Remove(enPassantVictim(s, mv.To))
	case MoveCastle:
		hopsKing := posCastling[mv.IsCastle][PieceKing]
		hopsRook := posCastling[mv.IsCastle][PieceRook]
		b.move(s, PieceKing, hopsKing[0], hopsKing[1])
		b.move(s, PieceRook, hopsRook[0], hopsRook[1])
	case MovePromotion:
		b.Remove(mv.From)
		b.Remove(mv.To)
		b.Place(mv.To, s, mv.IsPromote)
	default:
		return unApply
	}

	// update enPassant
	b.enPassant = position.None
	if mv.Piece == PiecePawn && mv.From.X() == mv.To.X() && position.RankDistance(mv.From, mv.To) == 2 {
		b.enPassant = position.Midpoint(mv.From, mv.To)
	}

	// update castleRights
	switch mv.Piece {
	case PieceKing:
		if b.castleRights.IsSideAllowed(s) {
			b.castleRights.Revoke(s)
		}
	case PieceRook:
		if d := castleDirectionByCorner(mv.From); d != CastleDirectionUnknown {
			b.castleRights.Set(d, false)
		}
	}
	if mv.Captured == PieceRook {
		if d := castleDirectionByCorner(mv.To); d != CastleDirectionUnknown && d.IsWhite() != (s == SideWhite) {
			b.castleRights.Set(d, false)
		}
	}

	// update half move clock
	if mv.Piece == PiecePawn || mv.IsCapture() {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	// update turn and full move clock
	b.turn = b.turn.Opposite()
	if b.turn == SideWhite {
		b.fullMoveClock++
	}

	return unApply
}

// MakeMove classifies and plays the move from one square to another.
// The board is left untouched when from is empty.
func (b *Board) MakeMove(from, to position.Pos) error {
	mv, err := b.NewMove(from, to, PieceUnknown)
	if err != nil {
		return err
	}
	b.Apply(mv)
	return nil
}

// enPassantVictim returns the square of the pawn taken en passant by side s landing on to.
func enPassantVictim(s Side, to position.Pos) position.Pos {
	if s == SideWhite {
		return to - Width
	}
	return to + Width
}
