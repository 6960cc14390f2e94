package board

import (
	"errors"
	"fmt"

	"github.com/daystram/bitcore/position"
)

var (
	ErrInvalidFEN       = errors.New("invalid fen")
	ErrInvalidSquare    = errors.New("invalid square")
	ErrEmptySource      = errors.New("no piece on source square")
	ErrInconsistentData = errors.New("inconsistent board data")
)

// Board is a position in little-endian rank-file (LERF) mapping.
type Board struct {
	// grid data
	sides  [2 + 1]Bitmap
	pieces [2 + 1][6 + 1]Bitmap

	// meta
	enPassant     position.Pos
	castleRights  CastleRights
	halfMoveClock uint32
	fullMoveClock uint32
	turn          Side
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

// reset empties the board in place.
func (b *Board) reset() {
	*b = Board{
		enPassant:     position.None,
		fullMoveClock: 1,
		turn:          SideWhite,
	}
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassant returns the en passant target square, or position.None.
func (b *Board) EnPassant() position.Pos {
	return b.enPassant
}

func (b *Board) HalfMoveClock() uint32 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint32 {
	return b.fullMoveClock
}

func (b *Board) GetBitmap(s Side, p Piece) Bitmap {
	return b.pieces[s][p]
}

func (b *Board) SideBitmap(s Side) Bitmap {
	return b.sides[s]
}

func (b *Board) Occupied() Bitmap {
	return b.sides[SideWhite] | b.sides[SideBlack]
}

func (b *Board) IsOccupied(pos position.Pos) bool {
	return b.Occupied().IsSet(pos)
}

// PieceAt returns the kind of piece on pos, false when the square is empty.
func (b *Board) PieceAt(pos position.Pos) (Piece, bool) {
	for _, p := range PieceList {
		if (b.pieces[SideWhite][p] | b.pieces[SideBlack][p]).IsSet(pos) {
			return p, true
		}
	}
	return PieceUnknown, false
}

// SideAt returns the owner of the piece on pos, false when the square is empty.
func (b *Board) SideAt(pos position.Pos) (Side, bool) {
	for _, s := range SideList {
		if b.sides[s].IsSet(pos) {
			return s, true
		}
	}
	return SideUnknown, false
}

func (b *Board) getSideAndPieceByPos(pos position.Pos) (Side, Piece, bool) {
	s, ok := b.SideAt(pos)
	if !ok {
		return SideUnknown, PieceUnknown, false
	}
	for _, p := range PieceList {
		if b.pieces[s][p].IsSet(pos) {
			return s, p, true
		}
	}
	return SideUnknown, PieceUnknown, false
}

// Place puts a piece on pos. The square must be empty.
func (b *Board) Place(pos position.Pos, s Side, p Piece) {
	b.pieces[s][p].Set(pos)
	b.sides[s].Set(pos)
}

// Remove clears whatever occupies pos. Empty squares are left untouched.
func (b *Board) Remove(pos position.Pos) {
	s, p, ok := b.getSideAndPieceByPos(pos)
	if !ok {
		return
	}
	b.pieces[s][p].Unset(pos)
	b.sides[s].Unset(pos)
}

// move relocates a piece with a single symmetric-difference update; to must be empty.
func (b *Board) move(s Side, p Piece, from, to position.Pos) {
	if from == to {
		return
	}
	mask := maskCell[from] | maskCell[to]
	b.pieces[s][p].Toggle(mask)
	b.sides[s].Toggle(mask)
}

// Validate checks that piece bitmaps never overlap and that each side aggregate
// equals the union of its piece bitmaps.
func (b *Board) Validate() error {
	var seen Bitmap
	for _, s := range SideList {
		var union Bitmap
		for _, p := range PieceList {
			bm := b.pieces[s][p]
			if seen&bm != 0 {
				return fmt.Errorf("%w: %s %s overlaps at %s", ErrInconsistentData, s, p, (seen & bm).LS1B())
			}
			seen |= bm
			union |= bm
		}
		if union != b.sides[s] {
			return fmt.Errorf("%w: %s aggregate mismatch", ErrInconsistentData, s)
		}
	}
	if b.pieces[SideUnknown] != [6 + 1]Bitmap{} || b.sides[SideUnknown] != 0 {
		return fmt.Errorf("%w: unknown side has pieces", ErrInconsistentData)
	}
	for _, s := range SideList {
		if b.pieces[s][PieceUnknown] != 0 {
			return fmt.Errorf("%w: %s has unknown pieces", ErrInconsistentData, s)
		}
	}
	if b.fullMoveClock < 1 {
		return fmt.Errorf("%w: full move clock below 1", ErrInconsistentData)
	}
	return nil
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("turn: %s\ncast: %s\nenps: %s\nhalf: %4d\nfull: %4d",
		b.turn, b.castleRights, b.enPassant, b.halfMoveClock, b.fullMoveClock)
}
