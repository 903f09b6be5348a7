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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherfish/engine/internal/position"
)

// ///////////////////////////////////////////////////////////////
// Perft results from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

func TestStandardPerft(t *testing.T) {
	assert := assert.New(t)

	var results = [6][5]uint64{
		// depth        Nodes       Captures      EP       Checks
		{0, 1, 0, 0, 0},
		{1, 20, 0, 0, 0},
		{2, 400, 0, 0, 0},
		{3, 8_902, 34, 0, 12},
		{4, 197_281, 1_576, 0, 469},
		{5, 4_865_609, 82_719, 258, 27_351},
	}

	for depth := 1; depth <= 5; depth++ {
		pf := NewPerft()
		pf.Run(position.StartFen, depth)
		assert.Equal(results[depth][1], pf.Nodes)
		assert.Equal(results[depth][2], pf.CaptureCounter)
		assert.Equal(results[depth][3], pf.EnpassantCounter)
		assert.Equal(results[depth][4], pf.CheckCounter)
	}
}

func TestStandardPerftParallel(t *testing.T) {
	assert := assert.New(t)

	var results = [6][2]uint64{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8_902},
		{4, 197_281},
		{5, 4_865_609},
	}

	for depth := 1; depth <= 5; depth++ {
		pf := NewPerft()
		pf.RunParallel(position.StartFen, depth)
		assert.Equal(results[depth][1], pf.Nodes)
	}
}

func TestKiwipetePerft(t *testing.T) {
	assert := assert.New(t)
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"

	var kiwipete = [5][6]uint64{
		// depth         Nodes       Captures        EP       Checks     Castles
		{0, 1, 0, 0, 0, 0},
		{1, 48, 8, 0, 0, 2},
		{2, 2_039, 351, 1, 3, 91},
		{3, 97_862, 17_102, 45, 993, 3_162},
		{4, 4_085_603, 757_163, 1_929, 25_523, 128_013},
	}

	for depth := 1; depth <= 4; depth++ {
		pf := NewPerft()
		pf.Run(fen, depth)
		assert.Equal(kiwipete[depth][1], pf.Nodes)
		assert.Equal(kiwipete[depth][2], pf.CaptureCounter)
		assert.Equal(kiwipete[depth][3], pf.EnpassantCounter)
		assert.Equal(kiwipete[depth][4], pf.CheckCounter)
		assert.Equal(kiwipete[depth][5], pf.CastleCounter)
	}
}

func TestMirrorPerft(t *testing.T) {
	assert := assert.New(t)

	var mirrorPerft = [5][6]uint64{
		// depth        Nodes     Captures       EP      Checks     Castles
		{0, 1, 0, 0, 0, 0},
		{1, 6, 0, 0, 0, 0},
		{2, 264, 87, 0, 10, 6},
		{3, 9467, 1021, 4, 38, 0},
		{4, 422333, 131393, 0, 15492, 7795},
	}

	fens := []string{
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq -",
		"r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ -",
	}

	for _, fen := range fens {
		for depth := 1; depth <= 4; depth++ {
			pf := NewPerft()
			pf.Run(fen, depth)
			assert.Equal(mirrorPerft[depth][1], pf.Nodes)
			assert.Equal(mirrorPerft[depth][2], pf.CaptureCounter)
			assert.Equal(mirrorPerft[depth][3], pf.EnpassantCounter)
			assert.Equal(mirrorPerft[depth][4], pf.CheckCounter)
			assert.Equal(mirrorPerft[depth][5], pf.CastleCounter)
		}
	}
}

func TestPos5Perft(t *testing.T) {
	assert := assert.New(t)
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ -"

	var nodes = [5]uint64{1, 44, 1_486, 62_379, 2_103_487}

	for depth := 1; depth <= 4; depth++ {
		pf := NewPerft()
		pf.Run(fen, depth)
		assert.Equal(nodes[depth], pf.Nodes)
	}
}
