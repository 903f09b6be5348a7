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

// Piece identifies a colored chess piece. White pieces occupy 0-5, Black
// pieces 6-11, in Pawn,Knight,Bishop,Rook,Queen,King order within each
// color, so a Move can pack moved/captured pieces into 4 bits and
// Position can index piece_bitboards[12] directly.
type Piece uint8

const (
	WhitePawn   Piece = iota // 0
	WhiteKnight              // 1
	WhiteBishop              // 2
	WhiteRook                // 3
	WhiteQueen               // 4
	WhiteKing                // 5
	BlackPawn                // 6
	BlackKnight              // 7
	BlackBishop              // 8
	BlackRook                // 9
	BlackQueen               // 10
	BlackKing                // 11
	NoPiece                  // 12
	PieceLength = NoPiece + 1
)

// MakePiece returns the piece of the given color and kind.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return NoPiece
	}
	return Piece(int(c)*6 + int(pt))
}

// ColorOf returns the color of p. Must not be called with NoPiece.
func (p Piece) ColorOf() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// TypeOf returns the piece kind, independent of color.
func (p Piece) TypeOf() PieceType {
	if p == NoPiece {
		return PtNone
	}
	return PieceType(p % 6)
}

// IsValid reports whether p is one of the twelve colored pieces.
func (p Piece) IsValid() bool {
	return p < NoPiece
}

var pieceToChar = [PieceLength]string{"P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k", "-"}

// Char returns the FEN letter for the piece ("-" for NoPiece).
func (p Piece) Char() string {
	return pieceToChar[p]
}

// PieceFromChar returns the Piece for a single FEN letter, or NoPiece if
// s is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return NoPiece
	}
	idx := strings.Index("PNBRQKpnbrqk", s)
	if idx == -1 {
		return NoPiece
	}
	return Piece(idx)
}

func (p Piece) String() string {
	if p == NoPiece {
		return "None"
	}
	return p.ColorOf().String() + " " + p.TypeOf().String()
}
