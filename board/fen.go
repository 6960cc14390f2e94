package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/bitcore/position"
)

// UnmarshalFEN decodes fen into b, discarding its previous content. Only the
// piece placement is validated strictly; the remaining fields fall back to
// defaults when absent.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	b.reset()

	segments := strings.Split(fen, " ")
	if len(segments) < 2 {
		return fmt.Errorf("%w: missing side to move", ErrInvalidFEN)
	}
	if len(segments) > 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	x, y := 0, int(Height)-1
	for _, cell := range segments[0] {
		switch {
		case '0' <= cell && cell <= '9':
			x += int(cell - '0')
		case cell == '/':
			if x > int(Width) {
				return fmt.Errorf("%w: invalid piece placement: rank %d overflows", ErrInvalidFEN, y+1)
			}
			x, y = 0, y-1
			if y < 0 {
				return fmt.Errorf("%w: invalid piece placement: too many ranks", ErrInvalidFEN)
			}
		default:
			s, p, ok := parseSymbolFEN(cell)
			if !ok {
				return fmt.Errorf("%w: invalid piece placement: unknown symbol '%c'", ErrInvalidFEN, cell)
			}
			if x < 0 || int(Width) <= x || y < 0 || int(Height) <= y {
				return fmt.Errorf("%w: invalid piece placement: cell out of bounds", ErrInvalidFEN)
			}
			pos := position.NewPos(position.Pos(x), position.Pos(y))
			if b.IsOccupied(pos) {
				return fmt.Errorf("%w: invalid piece placement: %s filled twice", ErrInvalidFEN, pos)
			}
			b.Place(pos, s, p)
			x++
		}
	}
	if x > int(Width) {
		return fmt.Errorf("%w: invalid piece placement: rank %d overflows", ErrInvalidFEN, y+1)
	}

	if segments[1] == "w" {
		b.turn = SideWhite
	} else {
		b.turn = SideBlack
	}

	if len(segments) > 2 {
		for _, e := range segments[2] {
			switch e {
			case 'K':
				b.castleRights.Set(CastleDirectionWhiteRight, true)
			case 'Q':
				b.castleRights.Set(CastleDirectionWhiteLeft, true)
			case 'k':
				b.castleRights.Set(CastleDirectionBlackRight, true)
			case 'q':
				b.castleRights.Set(CastleDirectionBlackLeft, true)
			}
		}
	}

	if len(segments) > 3 && segments[3] != "-" {
		if pos, err := position.NewPosFromNotation(segments[3]); err == nil {
			b.enPassant = pos
		}
	}

	if len(segments) > 4 {
		halfMoveClock, err := parseClock(segments[4])
		if err != nil {
			return fmt.Errorf("%w: invalid half move clock: %v", ErrInvalidFEN, err)
		}
		b.halfMoveClock = halfMoveClock
	}

	if len(segments) > 5 {
		fullMoveClock, err := parseClock(segments[5])
		if err != nil {
			return fmt.Errorf("%w: invalid full move clock: %v", ErrInvalidFEN, err)
		}
		if fullMoveClock > 0 {
			b.fullMoveClock = fullMoveClock
		}
	}

	return nil
}

// parseClock reads the leading decimal digits of s; no digits reads as 0.
func parseClock(s string) (uint32, error) {
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, nil
	}
	v, err := strconv.ParseUint(s[:i], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func MarshalFEN(b *Board) string {
	builder := strings.Builder{}
	var skip uint8
	for y := Height - 1; y >= 0; y-- {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && !b.IsOccupied(y*Width+x); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				s, p, _ := b.getSideAndPieceByPos(y*Width + x)
				_, _ = builder.WriteString(p.SymbolFEN(s))
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(b.castleRights.String())
	_, _ = builder.WriteRune(' ')

	if !b.enPassant.Valid() {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassant.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String()
}

func (b *Board) FEN() string {
	return MarshalFEN(b)
}
