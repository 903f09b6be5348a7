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

// Package moveslice holds the move generator's output: a bounded,
// non-allocating move list that the search scores and sorts in place.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/gopherfish/engine/internal/types"
)

// MaxMoves bounds a single position's pseudo-legal move count (well above
// any reachable chess position, matching the move/undo stack bound).
const MaxMoves = 256

// Move-ordering score buckets, highest first. MVV-LVA is encoded inside
// the capture bucket by scaling with victim/attacker material.
const (
	ScorePv           = 10_000_000
	ScoreTT           = 9_999_999
	ScoreCaptureBase  = 1_000_000
	ScorePromoteBase  = 900_000
	ScoreKiller1      = 800_000
	ScoreKiller2      = 700_000
	ScoreDoublePush   = 1_000
	ScoreQuiet        = 0
)

var promotionBonus = map[PieceType]int32{Knight: 200, Bishop: 220, Rook: 400, Queen: 800}

// MoveList is a fixed-capacity, score-paired list of moves: the move
// generator appends pseudo-legal moves with Add, then the search scores
// and sorts them in place with Sort before iterating. Neither array is
// ever reallocated - the hot path must not allocate.
type MoveList struct {
	moves  [MaxMoves]Move
	scores [MaxMoves]int32
	size   int
}

// Clear empties the list, retaining the backing arrays.
func (ml *MoveList) Clear() {
	ml.size = 0
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return ml.size
}

// Add appends a move. Panics if the list is already at MaxMoves, which
// would indicate a move-generator bug (no legal chess position needs it).
func (ml *MoveList) Add(m Move) {
	if ml.size >= MaxMoves {
		panic("MoveList: capacity exceeded")
	}
	ml.moves[ml.size] = m
	ml.size++
}

// At returns the move at index i, in current list order.
func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// ScoreAt returns the ordering score last assigned to the move at index i.
func (ml *MoveList) ScoreAt(i int) int32 {
	return ml.scores[i]
}

// Sort scores every move per spec.md's move-ordering table and sorts the
// list descending by score with a stable insertion sort (lists are small
// and mostly pre-sorted across iterations, so insertion sort beats a
// general-purpose sort here). pv/killer1/killer2/tt are hints; any of them
// may be MoveNone to disable that bucket.
func (ml *MoveList) Sort(pv, killer1, killer2, tt Move) {
	for i := 0; i < ml.size; i++ {
		ml.scores[i] = scoreMove(ml.moves[i], pv, killer1, killer2, tt)
	}
	for i := 1; i < ml.size; i++ {
		m, s := ml.moves[i], ml.scores[i]
		j := i
		for j > 0 && ml.scores[j-1] < s {
			ml.moves[j] = ml.moves[j-1]
			ml.scores[j] = ml.scores[j-1]
			j--
		}
		ml.moves[j] = m
		ml.scores[j] = s
	}
}

func scoreMove(m, pv, killer1, killer2, tt Move) int32 {
	switch {
	case m == pv:
		return ScorePv
	case m == tt:
		return ScoreTT
	case m.IsCapture():
		victim := m.Captured().TypeOf().MaterialValue()
		attacker := m.Moved().TypeOf().MaterialValue()
		return ScoreCaptureBase + 10_000*int32(abs(int(victim))) + (1_000 - int32(abs(int(attacker))))
	case m.IsPromotion():
		return ScorePromoteBase + promotionBonus[m.Flag().PromotionType()]
	case m == killer1:
		return ScoreKiller1
	case m == killer2:
		return ScoreKiller2
	case m.IsDoublePush():
		return ScoreDoublePush
	default:
		return ScoreQuiet
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (ml *MoveList) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("MoveList: [%d] { ", ml.size))
	for i := 0; i < ml.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ml.moves[i].String())
	}
	b.WriteString(" }")
	return b.String()
}

// StringUci renders the list as a space-separated list of UCI move
// strings, e.g. for a "pv" info line.
func (ml *MoveList) StringUci() string {
	var b strings.Builder
	for i := 0; i < ml.size; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(ml.moves[i].StringUci())
	}
	return b.String()
}
