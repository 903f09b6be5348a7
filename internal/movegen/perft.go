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
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopherfish/engine/internal/moveslice"
	"github.com/gopherfish/engine/internal/position"
	. "github.com/gopherfish/engine/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft counts leaf positions (and a few move-kind breakdowns) reachable
// from a FEN to a fixed depth, the standard move-generator correctness
// check: a mismatch against known-good totals pinpoints a generator or
// make/undo bug.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new, zeroed Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running Run return early - safe to call from
// another goroutine.
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// Run performs perft from fen to the given depth on the calling goroutine
// and prints a summary. The UCI "perft" extension command uses
// RunParallel instead.
func (pf *Perft) Run(fen string, depth int) {
	if depth <= 0 {
		depth = 1
	}
	pf.reset()

	pos := position.New(fen)
	var lists [MaxPerftDepth + 1]moveslice.MoveList

	pf.printHeader(fen, depth)
	start := time.Now()
	pf.Nodes = pf.search(pos, depth, &lists)
	pf.printResult(time.Since(start))
}

// RunParallel is Run's concurrent counterpart: it counts the root move
// list's child subtrees on an errgroup of goroutines, one per root move,
// each walking its own copy of the position. Useful from depth 6 on,
// where perft's branching factor gives every goroutine enough work to
// outweigh the fork overhead.
func (pf *Perft) RunParallel(fen string, depth int) {
	if depth <= 0 {
		depth = 1
	}
	pf.reset()

	root := position.New(fen)
	var rootMoves moveslice.MoveList
	Generate(root, &rootMoves)
	us := root.NextPlayer()

	pf.printHeader(fen, depth)
	start := time.Now()

	var mu sync.Mutex
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < rootMoves.Len(); i++ {
		m := rootMoves.At(i)
		g.Go(func() error {
			if pf.stopFlag {
				return nil
			}
			pos := *root
			pos.MakeMove(m)
			if pos.IsInCheck(us) {
				return nil
			}

			var sub Perft
			var lists [MaxPerftDepth + 1]moveslice.MoveList
			var nodes uint64
			if depth > 1 {
				nodes = sub.search(&pos, depth-1, &lists)
			} else {
				nodes = 1
				if m.IsCapture() {
					sub.CaptureCounter++
				}
				if m.IsEnPassant() {
					sub.EnpassantCounter++
				}
				if m.IsCastling() {
					sub.CastleCounter++
				}
				if m.IsPromotion() {
					sub.PromotionCounter++
				}
				if pos.IsInCheck(pos.NextPlayer()) {
					sub.CheckCounter++
				}
			}

			mu.Lock()
			pf.Nodes += nodes
			pf.CaptureCounter += sub.CaptureCounter
			pf.EnpassantCounter += sub.EnpassantCounter
			pf.CastleCounter += sub.CastleCounter
			pf.PromotionCounter += sub.PromotionCounter
			pf.CheckCounter += sub.CheckCounter
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	pf.printResult(time.Since(start))
}

func (pf *Perft) printHeader(fen string, depth int) {
	out.Printf("Performing PERFT test for depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")
}

func (pf *Perft) printResult(elapsed time.Duration) {
	if pf.stopFlag {
		out.Print("Perft stopped\n")
		return
	}
	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (pf.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", pf.Nodes)
	out.Printf("   Captures  : %d\n", pf.CaptureCounter)
	out.Printf("   EnPassant : %d\n", pf.EnpassantCounter)
	out.Printf("   Checks    : %d\n", pf.CheckCounter)
	out.Printf("   Castles   : %d\n", pf.CastleCounter)
	out.Printf("   Promotions: %d\n", pf.PromotionCounter)
	out.Printf("-----------------------------------------\n")
}

// MaxPerftDepth bounds the per-ply MoveList array Run allocates once
// up front, so the recursive search itself never allocates.
const MaxPerftDepth = 16

func (pf *Perft) search(pos *position.Position, depth int, lists *[MaxPerftDepth + 1]moveslice.MoveList) uint64 {
	if pf.stopFlag {
		return 0
	}
	us := pos.NextPlayer()
	ml := &lists[depth]
	ml.Clear()
	Generate(pos, ml)

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		capture := m.IsCapture()
		enpassant := m.IsEnPassant()
		castling := m.IsCastling()
		promotion := m.IsPromotion()

		pos.MakeMove(m)
		if pos.IsInCheck(us) {
			pos.UndoMove()
			continue
		}

		if depth > 1 {
			nodes += pf.search(pos, depth-1, lists)
		} else {
			nodes++
			if capture {
				pf.CaptureCounter++
			}
			if enpassant {
				pf.EnpassantCounter++
			}
			if castling {
				pf.CastleCounter++
			}
			if promotion {
				pf.PromotionCounter++
			}
			if pos.IsInCheck(pos.NextPlayer()) {
				pf.CheckCounter++
			}
		}
		pos.UndoMove()
	}
	return nodes
}

func (pf *Perft) reset() {
	*pf = Perft{}
}
