//
// Gopherfish - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 Gopherfish contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import "strings"

// Move packs a chess move into a 32-bit word:
//
//	bits   field     width  values
//	0-5    from      6      square
//	6-11   to        6      square
//	12-15  moved     4      Piece
//	16-19  captured  4      Piece (NoPiece if none; pawn for en-passant)
//	20-23  flag      4      MoveFlag
//
// Unlike a bit-packed struct with accessor macros, Move exposes explicit
// shift/mask accessor methods; it carries no sort value of its own (that
// lives alongside the move in MoveList during ordering).
type Move uint32

// MoveFlag distinguishes normal moves from castling, en-passant, double
// pawn pushes, and the four promotion kinds.
type MoveFlag uint8

const (
	FlagNormal MoveFlag = iota
	FlagCastling
	FlagEnPassant
	FlagDoublePush
	FlagPromoteKnight
	FlagPromoteBishop
	FlagPromoteRook
	FlagPromoteQueen
)

// IsPromotion reports whether the flag encodes a promotion.
func (f MoveFlag) IsPromotion() bool {
	return f >= FlagPromoteKnight
}

// PromotionType returns the promoted-to piece kind. Only meaningful when
// IsPromotion() is true.
func (f MoveFlag) PromotionType() PieceType {
	switch f {
	case FlagPromoteKnight:
		return Knight
	case FlagPromoteBishop:
		return Bishop
	case FlagPromoteRook:
		return Rook
	case FlagPromoteQueen:
		return Queen
	default:
		return PtNone
	}
}

func (f MoveFlag) String() string {
	switch f {
	case FlagNormal:
		return "normal"
	case FlagCastling:
		return "castling"
	case FlagEnPassant:
		return "en-passant"
	case FlagDoublePush:
		return "double-push"
	case FlagPromoteKnight, FlagPromoteBishop, FlagPromoteRook, FlagPromoteQueen:
		return "promotion"
	default:
		return "invalid"
	}
}

const (
	fromShift     = 0
	toShift       = 6
	movedShift    = 12
	capturedShift = 16
	flagShift     = 20

	sqMask    Move = 0x3F
	pieceMask Move = 0xF
	flagMask  Move = 0xF
)

// MoveNone is the all-ones sentinel for "no move".
const MoveNone Move = 0xFFFFFFFF

// NewMove packs a move from its fields.
func NewMove(from, to Square, moved, captured Piece, flag MoveFlag) Move {
	return Move(from)&sqMask |
		(Move(to)&sqMask)<<toShift |
		(Move(moved)&pieceMask)<<movedShift |
		(Move(captured)&pieceMask)<<capturedShift |
		(Move(flag)&flagMask)<<flagShift
}

func (m Move) To() Square {
	return Square((m >> toShift) & sqMask)
}

func (m Move) From() Square {
	return Square((m >> fromShift) & sqMask)
}

func (m Move) Moved() Piece {
	return Piece((m >> movedShift) & pieceMask)
}

func (m Move) Captured() Piece {
	return Piece((m >> capturedShift) & pieceMask)
}

func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> flagShift) & flagMask)
}

func (m Move) IsCapture() bool {
	return m.Captured() != NoPiece
}

func (m Move) IsPromotion() bool {
	return m.Flag().IsPromotion()
}

func (m Move) IsCastling() bool {
	return m.Flag() == FlagCastling
}

func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

func (m Move) IsDoublePush() bool {
	return m.Flag() == FlagDoublePush
}

// IsQuiet reports whether the move is neither a capture nor a promotion -
// the class of moves eligible for the killer heuristic and excluded from
// quiescence search.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// StringUci renders the move in long-algebraic UCI form, e.g. "e2e4" or
// "a7a8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(m.Flag().PromotionType().Char())
	}
	return b.String()
}

func (m Move) String() string {
	if m == MoveNone {
		return "Move{none}"
	}
	return "Move{" + m.StringUci() + " " + m.Flag().String() + "}"
}
