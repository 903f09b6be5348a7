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

// PackedGameInfo saves the per-move state needed to undo a make_move:
// castling rights (bits 0-3), en-passant square (bits 4-10, SqNone as the
// "none" sentinel) and the 50-move half-move clock (bit 11 upward).
type PackedGameInfo uint32

const (
	giCastlingShift = 0
	giEpShift       = 4
	giClockShift    = 11

	giCastlingMask PackedGameInfo = 0xF
	giEpMask       PackedGameInfo = 0x7F
)

// PackGameInfo packs the given pre-move state into a PackedGameInfo word.
func PackGameInfo(cr CastlingRights, ep Square, clock int) PackedGameInfo {
	return PackedGameInfo(cr)&giCastlingMask |
		(PackedGameInfo(ep)&giEpMask)<<giEpShift |
		PackedGameInfo(clock)<<giClockShift
}

func (gi PackedGameInfo) CastlingRights() CastlingRights {
	return CastlingRights((gi >> giCastlingShift) & giCastlingMask)
}

func (gi PackedGameInfo) EnPassantSquare() Square {
	return Square((gi >> giEpShift) & giEpMask)
}

func (gi PackedGameInfo) HalfMoveClock() int {
	return int(gi >> giClockShift)
}
