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

import . "github.com/gopherfish/engine/internal/types"

// MaxPly bounds the search's recursion depth, independent of the
// position's own 256-slot make/undo stack.
const MaxPly = 128

// killerTable is a 2-slot-per-ply quiet-move cutoff cache. Unlike the
// dropped history heuristic it needs no per-move statistics: a beta cutoff
// from a quiet move at ply p is remembered at killers[p], and move
// ordering tries those two moves after captures and promotions and before
// the remaining quiet moves. Indexed directly by ply rather than held per movegen instance,
// since Generate is now a stateless package function.
type killerTable struct {
	moves [MaxPly][2]Move
}

// Store inserts m as the new slot-0 killer at ply, shifting the previous
// slot-0 killer into slot 1. A duplicate of the current slot-0 killer is
// ignored.
func (k *killerTable) Store(ply int, m Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

// First returns ply's slot-0 killer, or MoveNone.
func (k *killerTable) First(ply int) Move {
	if ply < 0 || ply >= MaxPly {
		return MoveNone
	}
	return k.moves[ply][0]
}

// Second returns ply's slot-1 killer, or MoveNone.
func (k *killerTable) Second(ply int) Move {
	if ply < 0 || ply >= MaxPly {
		return MoveNone
	}
	return k.moves[ply][1]
}

// Clear empties every ply's killer slots, e.g. on "ucinewgame".
func (k *killerTable) Clear() {
	*k = killerTable{}
}
