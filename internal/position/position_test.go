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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/gopherfish/engine/internal/types"
)

func TestNewStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, StartFen, p.FenString())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
	}
	for _, fen := range fens {
		p := New(fen)
		assert.Equal(t, fen, p.FenString())
	}
}

func TestMakeUndoRestoresHash(t *testing.T) {
	p := New()
	var ml []Move
	for _, uci := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		m := findMove(t, p, uci)
		ml = append(ml, m)
		p.MakeMove(m)
	}
	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", p.FenString())

	for i := len(ml) - 1; i >= 0; i-- {
		p.UndoMove()
	}
	start := New()
	assert.Equal(t, start.Hash(), p.Hash())
	assert.Equal(t, start.FenString(), p.FenString())
}

func TestEnPassantSquareTracked(t *testing.T) {
	p := New()
	p.MakeMove(findMove(t, p, "e2e4"))
	assert.Equal(t, "e3", p.EnPassantSquare().String())
	p.MakeMove(findMove(t, p, "e7e5"))
	assert.Equal(t, "e6", p.EnPassantSquare().String())
}

func TestCastlingRightsClearOnKingMove(t *testing.T) {
	p := New("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.True(t, p.CanCastleKs(White))
	assert.True(t, p.CanCastleQs(White))
	p.MakeMove(findMove(t, p, "e1e2"))
	assert.False(t, p.CanCastleKs(White))
	assert.False(t, p.CanCastleQs(White))
}

// findMove is a small local helper - internal/movegen (the one place
// that generates moves) imports internal/position, so it can't be used
// here without an import cycle. Tests build the exact Move bitpattern by
// hand for the handful of uci strings they need.
func findMove(t *testing.T, p *Position, uci string) Move {
	t.Helper()
	from := MakeSquare(uci[0:2])
	to := MakeSquare(uci[2:4])
	moved := p.PieceAt(from)
	captured := p.PieceAt(to)
	flag := FlagNormal
	if to == p.EnPassantSquare() && moved.TypeOf() == Pawn {
		flag = FlagEnPassant
	} else if moved.TypeOf() == King && (to-from == 2 || from-to == 2) {
		flag = FlagCastling
	} else if moved.TypeOf() == Pawn && (to-from == 16 || from-to == 16) {
		flag = FlagDoublePush
	}
	return NewMove(from, to, moved, captured, flag)
}
