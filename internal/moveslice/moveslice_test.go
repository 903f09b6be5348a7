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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/gopherfish/engine/internal/types"
)

func move(from, to Square, moved, captured Piece, flag MoveFlag) Move {
	return NewMove(from, to, moved, captured, flag)
}

func TestAddLenAtClear(t *testing.T) {
	var ml MoveList
	assert.Equal(t, 0, ml.Len())

	m1 := move(SqE2, SqE4, WhitePawn, NoPiece, FlagDoublePush)
	m2 := move(SqG1, SqF3, WhiteKnight, NoPiece, FlagNormal)
	ml.Add(m1)
	ml.Add(m2)
	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, m1, ml.At(0))
	assert.Equal(t, m2, ml.At(1))

	ml.Clear()
	assert.Equal(t, 0, ml.Len())
}

func TestSortOrdersPvAboveCaptureAboveKillerAboveQuiet(t *testing.T) {
	var ml MoveList
	quiet := move(SqB1, SqC3, WhiteKnight, NoPiece, FlagNormal)
	capture := move(SqE4, SqD5, WhitePawn, BlackPawn, FlagNormal)
	pv := move(SqG1, SqF3, WhiteKnight, NoPiece, FlagNormal)
	killer := move(SqD2, SqD4, WhitePawn, NoPiece, FlagNormal)

	ml.Add(quiet)
	ml.Add(capture)
	ml.Add(pv)
	ml.Add(killer)

	ml.Sort(pv, killer, MoveNone, MoveNone)

	// pv outranks everything, a capture outranks a non-capturing killer,
	// and the killer still outranks a plain quiet move.
	assert.Equal(t, pv, ml.At(0))
	assert.Equal(t, capture, ml.At(1))
	assert.Equal(t, killer, ml.At(2))
	assert.Equal(t, quiet, ml.At(3))
}

func TestStringUciJoinsMoves(t *testing.T) {
	var ml MoveList
	ml.Add(move(SqE2, SqE4, WhitePawn, NoPiece, FlagDoublePush))
	ml.Add(move(SqE7, SqE5, BlackPawn, NoPiece, FlagDoublePush))
	assert.Equal(t, "e2e4 e7e5", ml.StringUci())
}
