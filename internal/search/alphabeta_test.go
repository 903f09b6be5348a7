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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherfish/engine/internal/evaluator"
	"github.com/gopherfish/engine/internal/position"
	. "github.com/gopherfish/engine/internal/types"
)

func newTestSearch(t *testing.T) *Search {
	s := NewSearch()
	s.initialize()
	require := assert.New(t)
	require.NotNil(s.tt)
	return s
}

func TestRootSearchFindsMateInOne(t *testing.T) {
	s := newTestSearch(t)
	// White to play Qh5xf7# (scholar's mate, the c4 bishop guards f7).
	pos := position.New("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")

	m, v := s.rootSearch(pos, 2, MoveNone, -Inf, Inf)

	assert.NotEqual(t, MoveNone, m)
	assert.True(t, v.IsMate())
	assert.Greater(t, int(v), 0)
}

func TestMinimaxPrefersWinningCapture(t *testing.T) {
	s := newTestSearch(t)
	// Black queen hangs on d8->d4 style setup: white to move, rook takes
	// the loose queen on d5 for free.
	pos := position.New("4k3/8/8/3q4/3R4/8/8/4K3 w - - 0 1")

	m, v := s.rootSearch(pos, 3, MoveNone, -Inf, Inf)

	assert.Equal(t, SqD4, m.From())
	assert.Equal(t, SqD5, m.To())
	assert.Greater(t, int(v), 400)
}

func TestMinimaxDetectsStalemate(t *testing.T) {
	s := newTestSearch(t)
	// Classic stalemate: black to move, no legal moves, not in check.
	pos := position.New("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	v := s.minimax(pos, 1, -Inf, Inf, true, 0)

	assert.Equal(t, ValueZero, v)
}

func TestMinimaxDetectsCheckmate(t *testing.T) {
	s := newTestSearch(t)
	// Black to move, already mated (back-rank mate by the a8 rook).
	pos := position.New("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")

	v := s.minimax(pos, 1, -Inf, Inf, true, 0)

	assert.True(t, v.IsMate())
	assert.Less(t, int(v), 0)
}

func TestQsearchReturnsStandPatWithoutCaptures(t *testing.T) {
	s := newTestSearch(t)
	pos := position.New(position.StartFen)

	v := s.qsearch(pos, 4, -Inf, Inf, 0)

	// quiet starting position: no captures available, so qsearch must
	// return the static evaluation unchanged.
	assert.Equal(t, evaluator.Evaluate(pos), v)
}
