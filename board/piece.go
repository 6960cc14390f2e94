package board

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

// PieceList is every real piece kind in scan order.
var PieceList = [6]Piece{PiecePawn, PieceKnight, PieceBishop, PieceRook, PieceQueen, PieceKing}

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Piece{PieceQueen, PieceRook, PieceBishop, PieceKnight}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// IsPromoteCandidate reports whether a pawn may promote into p.
func (p Piece) IsPromoteCandidate() bool {
	for _, c := range PawnPromoteCandidates {
		if p == c {
			return true
		}
	}
	return false
}

func (p Piece) SymbolAlgebra(s Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceKnight:
		sym = 'N'
	case PieceBishop:
		sym = 'B'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

// parseSymbolFEN maps a FEN piece letter to its side and piece.
func parseSymbolFEN(sym rune) (Side, Piece, bool) {
	s := SideWhite
	if 'a' <= sym && sym <= 'z' {
		s = SideBlack
		sym &^= 0x20
	}
	switch sym {
	case 'P':
		return s, PiecePawn, true
	case 'N':
		return s, PieceKnight, true
	case 'B':
		return s, PieceBishop, true
	case 'R':
		return s, PieceRook, true
	case 'Q':
		return s, PieceQueen, true
	case 'K':
		return s, PieceKing, true
	default:
		return SideUnknown, PieceUnknown, false
	}
}

func (p Piece) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}
