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

// PieceType is the kind of a piece, independent of color.
type PieceType uint8

const (
	Pawn      PieceType = iota // 0
	Knight                     // 1
	Bishop                     // 2
	Rook                       // 3
	Queen                      // 4
	King                       // 5
	PtNone                     // 6
	PtLength  = PtNone + 1
)

// IsValid checks whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

// gamePhaseValue weights a piece type's contribution to the tapered-eval
// game phase: knight/bishop=1, rook=2, queen=4, pawn/king=0.
var gamePhaseValue = [PtLength]int{0, 1, 1, 2, 4, 0, 0}

// GamePhaseValue returns the phase weight of the piece type.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// material values in centipawns, indexed by PieceType.
var pieceTypeValue = [PtLength]Value{100, 320, 330, 500, 900, 0, 0}

// MaterialValue returns the material value of the piece type in centipawns.
func (pt PieceType) MaterialValue() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToChar = [PtLength]string{"p", "n", "b", "r", "q", "k", "-"}

// Char returns a lower case letter representation of the piece type.
func (pt PieceType) Char() string {
	return pieceTypeToChar[pt]
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}
