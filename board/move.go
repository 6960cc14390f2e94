package board

import (
	"fmt"

	"github.com/daystram/bitcore/position"
)

// MoveKind tags how a move changes the board.
type MoveKind uint8

const (
	MoveUnknown MoveKind = iota
	MoveQuiet
	MoveCapture
	MoveEnPassant
	MoveCastle
	MovePromotion
)

func (k MoveKind) String() string {
	switch k {
	case MoveQuiet:
		return "quiet"
	case MoveCapture:
		return "capture"
	case MoveEnPassant:
		return "en_passant"
	case MoveCastle:
		return "castle"
	case MovePromotion:
		return "promotion"
	default:
		return ""
	}
}

type Move struct {
	From, To position.Pos
	Piece    Piece
	Kind     MoveKind

	IsTurn    Side
	Captured  Piece
	IsCastle  CastleDirection
	IsPromote Piece
}

// IsCapture reports whether the move removes an opposing piece, en passant included.
func (m Move) IsCapture() bool {
	return m.Captured != PieceUnknown
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	if m.Kind == MoveCastle {
		if m.IsCastle.IsRight() {
			return "0-0"
		}
		return "0-0-0"
	}
	nt := m.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.IsCapture() {
		if m.Piece == PiecePawn {
			nt += m.From.X().NotationComponentX()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsPromote != PieceUnknown {
		nt += m.IsPromote.SymbolAlgebra(SideWhite)
	}
	if m.Kind == MoveEnPassant {
		nt += " e.p."
	}
	return nt
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.IsPromote.SymbolAlgebra(SideBlack)
}

// NewMove classifies the move of the piece on from to to against the current
// board. A pawn reaching its last rank promotes into promote, or a Queen when
// promote is not a valid candidate. Legality is not checked.
func (b *Board) NewMove(from, to position.Pos, promote Piece) (Move, error) {
	if !from.Valid() || !to.Valid() {
		return Move{}, fmt.Errorf("%w: %d-%d", ErrInvalidSquare, from, to)
	}
	s, p, ok := b.getSideAndPieceByPos(from)
	if !ok {
		return Move{}, fmt.Errorf("%w: %s", ErrEmptySource, from)
	}

	mv := Move{
		From:   from,
		To:     to,
		Piece:  p,
		IsTurn: s,
		Kind:   MoveQuiet,
	}
	if from == to {
		return mv, nil
	}
	if _, cp, ok := b.getSideAndPieceByPos(to); ok {
		mv.Captured = cp
		mv.Kind = MoveCapture
	}

	switch p {
	case PieceKing:
		if d := castleDirectionByKingHop(from, to); d != CastleDirectionUnknown && !mv.IsCapture() && b.canCastle(s, d) {
			mv.Kind = MoveCastle
			mv.IsCastle = d
		}
	case PiecePawn:
		if to == b.enPassant && !mv.IsCapture() {
			mv.Kind = MoveEnPassant
			mv.Captured = PiecePawn
		}
		if (s == SideWhite && to.Y() == position.Rank8) || (s == SideBlack && to.Y() == position.Rank1) {
			mv.Kind = MovePromotion
			mv.IsPromote = PieceQueen
			if promote.IsPromoteCandidate() {
				mv.IsPromote = promote
			}
		}
	}
	return mv, nil
}

// canCastle reports whether side s holds the right for d with its rook on the
// corner and the rook's landing square free. Anything else is a plain king move.
func (b *Board) canCastle(s Side, d CastleDirection) bool {
	hopsRook := posCastling[d][PieceRook]
	return d.IsWhite() == (s == SideWhite) &&
		b.castleRights.IsAllowed(d) &&
		b.pieces[s][PieceRook].IsSet(hopsRook[0]) &&
		!b.IsOccupied(hopsRook[1])
}

// NewMoveUCI classifies a move written in UCI coordinate notation, e.g. "e2e4" or "e7e8n".
func (b *Board) NewMoveUCI(uci string) (Move, error) {
	if len(uci) != 4 && len(uci) != 5 {
		return Move{}, fmt.Errorf("%w: %q", position.ErrInvalidNotation, uci)
	}
	from, err := position.NewPosFromNotation(uci[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", err, uci)
	}
	to, err := position.NewPosFromNotation(uci[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", err, uci)
	}
	promote := PieceUnknown
	if len(uci) == 5 {
		_, p, ok := parseSymbolFEN(rune(uci[4]))
		if !ok || !p.IsPromoteCandidate() {
			return Move{}, fmt.Errorf("%w: bad promotion %q", position.ErrInvalidNotation, uci)
		}
		promote = p
	}
	return b.NewMove(from, to, promote)
}
