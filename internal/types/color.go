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

// Color distinguishes the two sides of a chess game.
type Color uint8

const (
	White       Color = iota // 0
	Black                    // 1
	ColorNone                // 2
	ColorLength = ColorNone
)

// IsValid checks whether c is White or Black.
func (c Color) IsValid() bool {
	return c < ColorNone
}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// Direction returns +1 for White and -1 for Black, the multiplier applied
// to a Direction step when generating pseudo attacks for both colors from
// one table of steps.
func (c Color) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// MoveDirection returns the direction a pawn of this color advances in.
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PawnRank returns the starting rank of this color's pawns.
func (c Color) PawnRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// DoublePushRank returns the rank a pawn of this color lands on after a
// single push from its starting rank - the rank from which a further
// push becomes a legal double push.
func (c Color) DoublePushRank() Rank {
	if c == White {
		return Rank3
	}
	return Rank6
}

// PromotionRank returns the rank on which this color's pawns promote.
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}
