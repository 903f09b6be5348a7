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
	. "github.com/gopherfish/engine/internal/types"
	"github.com/gopherfish/engine/internal/zobrist"
)

// TtEntry is one transposition table slot: the full key (used as a tag on
// probe, since the index alone doesn't disambiguate collisions), the
// depth the score was searched to, the score itself, whether it's exact
// or a bound, and the move to try first.
type TtEntry struct {
	key   zobrist.Key
	move  Move
	score Value
	depth int8
	flag  ValueType
}

// TtEntrySize is sizeof(TtEntry), used to size the table from a
// megabyte budget.
const TtEntrySize = 24

func (e *TtEntry) Key() zobrist.Key {
	return e.key
}

func (e *TtEntry) Move() Move {
	return e.move
}

func (e *TtEntry) Score() Value {
	return e.score
}

func (e *TtEntry) Depth() int8 {
	return e.depth
}

func (e *TtEntry) Flag() ValueType {
	return e.flag
}
