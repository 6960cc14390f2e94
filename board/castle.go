package board

import (
	"strings"

	"github.com/daystram/bitcore/position"
)

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

// CastleDirectionList is every castle direction in FEN order (K, Q, k, q).
var CastleDirectionList = [4]CastleDirection{
	CastleDirectionWhiteRight,
	CastleDirectionWhiteLeft,
	CastleDirectionBlackRight,
	CastleDirectionBlackLeft,
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

// SymbolFEN returns the FEN castling letter for d.
func (d CastleDirection) SymbolFEN() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "K"
	case CastleDirectionWhiteLeft:
		return "Q"
	case CastleDirectionBlackRight:
		return "k"
	case CastleDirectionBlackLeft:
		return "q"
	default:
		return ""
	}
}

// castleDirectionByCorner returns the right tied to a rook home square.
func castleDirectionByCorner(pos position.Pos) CastleDirection {
	switch pos {
	case position.H1:
		return CastleDirectionWhiteRight
	case position.A1:
		return CastleDirectionWhiteLeft
	case position.H8:
		return CastleDirectionBlackRight
	case position.A8:
		return CastleDirectionBlackLeft
	default:
		return CastleDirectionUnknown
	}
}

// castleDirectionByKingHop returns the castle a king move performs, if any.
func castleDirectionByKingHop(from, to position.Pos) CastleDirection {
	for _, d := range CastleDirectionList {
		if hops := posCastling[d][PieceKing]; hops[0] == from && hops[1] == to {
			return d
		}
	}
	return CastleDirectionUnknown
}

type CastleRights uint8

// CastleRightsAll allows every castle direction.
const CastleRightsAll CastleRights = 0b1111

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

// Revoke clears both rights of side s.
func (c *CastleRights) Revoke(s Side) {
	if s == SideWhite {
		c.Set(CastleDirectionWhiteRight, false)
		c.Set(CastleDirectionWhiteLeft, false)
	} else if s == SideBlack {
		c.Set(CastleDirectionBlackRight, false)
		c.Set(CastleDirectionBlackLeft, false)
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteLeft]|maskCastleRights[CastleDirectionWhiteRight]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackLeft]|maskCastleRights[CastleDirectionBlackRight]) != 0
}

// String returns the FEN castling field, "-" when no right is left.
func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	builder := strings.Builder{}
	for _, d := range CastleDirectionList {
		if c.IsAllowed(d) {
			_, _ = builder.WriteString(d.SymbolFEN())
		}
	}
	return builder.String()
}
