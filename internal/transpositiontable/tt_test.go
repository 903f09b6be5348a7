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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/gopherfish/engine/internal/types"
	"github.com/gopherfish/engine/internal/zobrist"
)

func TestNewTtTable(t *testing.T) {
	tt := NewTtTable(1)
	assert.Greater(t, tt.Len(), 0)
}

func TestResizeClampsToMax(t *testing.T) {
	tt := NewTtTable(1)
	tt.Resize(MaxSizeInMB + 1)
	assert.LessOrEqual(t, tt.Len(), (MaxSizeInMB*mb)/TtEntrySize)
}

func TestProbeMiss(t *testing.T) {
	tt := NewTtTable(1)
	assert.Nil(t, tt.Probe(zobrist.Key(12345)))
}

func TestStoreThenProbeHits(t *testing.T) {
	tt := NewTtTable(1)
	key := zobrist.Key(0xDEADBEEF)
	mv := NewMove(SqE2, SqE4, MakePiece(White, Pawn), NoPiece, FlagDoublePush)

	tt.Store(key, mv, 4, Value(123), Exact)

	e := tt.Probe(key)
	if assert.NotNil(t, e) {
		assert.Equal(t, key, e.Key())
		assert.Equal(t, mv, e.Move())
		assert.EqualValues(t, 123, e.Score())
		assert.EqualValues(t, 4, e.Depth())
		assert.Equal(t, Exact, e.Flag())
	}
}

func TestStoreDepthPreferredReplacement(t *testing.T) {
	tt := NewTtTable(1)
	key := zobrist.Key(1)
	mv1 := NewMove(SqE2, SqE4, MakePiece(White, Pawn), NoPiece, FlagDoublePush)
	mv2 := NewMove(SqD2, SqD4, MakePiece(White, Pawn), NoPiece, FlagDoublePush)

	tt.Store(key, mv1, 8, Value(10), Exact)
	// lower depth for the same key must still overwrite - depth-preferred
	// replacement only guards against *different* keys hashing to the
	// same slot, not re-stores of the same position.
	tt.Store(key, mv2, 2, Value(20), AtLeast)

	e := tt.Probe(key)
	if assert.NotNil(t, e) {
		assert.Equal(t, mv2, e.Move())
		assert.EqualValues(t, 2, e.Depth())
	}
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTtTable(1)
	key := zobrist.Key(42)
	tt.Store(key, MoveNone, 1, Value(0), Exact)
	assert.NotNil(t, tt.Probe(key))

	tt.Clear()
	assert.Nil(t, tt.Probe(key))
	assert.Equal(t, 0, tt.Hashfull())
}

func TestZeroSizeTableIsNoOp(t *testing.T) {
	tt := NewTtTable(0)
	tt.Store(zobrist.Key(1), MoveNone, 1, Value(0), Exact)
	assert.Nil(t, tt.Probe(zobrist.Key(1)))
	assert.Equal(t, 0, tt.Hashfull())
}
