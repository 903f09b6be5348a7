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
	"time"

	"github.com/gopherfish/engine/internal/config"
	"github.com/gopherfish/engine/internal/evaluator"
	"github.com/gopherfish/engine/internal/movegen"
	"github.com/gopherfish/engine/internal/moveslice"
	"github.com/gopherfish/engine/internal/position"
	. "github.com/gopherfish/engine/internal/types"
)

// nodePollInterval is how often the move loop inside minimax/qsearch
// checks the stop predicate - checking on every node would make the
// atomic load a measurable fraction of the search itself.
const nodePollInterval = 1024

// rootSearch generates pos's pseudo-legal moves, sorts them with pv/tt
// hints, and searches each with a negamax child call. It never reduces
// (no null-move, no LMR) - those only ever apply below the root. Returns
// the best move found and its value; MoveNone/-Inf if stopped before any
// move completed, or MoveNone with the mate/stalemate score if no move is
// legal at all.
func (s *Search) rootSearch(pos *position.Position, depth int, pvMove Move, alpha, beta Value) (Move, Value) {
	ttMove := MoveNone
	if config.Settings.Search.UseTT {
		if entry := s.tt.Probe(pos.Hash()); entry != nil {
			ttMove = entry.Move()
		}
	}

	var ml moveslice.MoveList
	movegen.Generate(pos, &ml)
	ml.Sort(pvMove, MoveNone, MoveNone, ttMove)

	bestMove := MoveNone
	bestValue := -Inf
	legalMoves := 0

	for i := 0; i < ml.Len(); i++ {
		if s.stopRequested() {
			return bestMove, bestValue
		}
		m := ml.At(i)

		pos.MakeMove(m)
		if pos.IsInCheck(pos.NextPlayer().Flip()) {
			pos.UndoMove()
			continue
		}
		legalMoves++
		s.nodesVisited++
		score := -s.minimax(pos, depth-1, -beta, -alpha, true, 1)
		pos.UndoMove()

		if bestMove == MoveNone || score > bestValue {
			bestMove = m
			bestValue = score
		}
		if score > alpha {
			alpha = score
		}
	}

	if legalMoves == 0 {
		if pos.IsInCheck(pos.NextPlayer()) {
			return MoveNone, -MateValue
		}
		return MoveNone, ValueZero
	}

	if bestMove != MoveNone && config.Settings.Search.UseTT {
		s.tt.Store(pos.Hash(), bestMove, int8(depth), bestValue, Exact)
	}
	return bestMove, bestValue
}

// minimax is the negamax search below the root. ply counts plies from the
// root, used to index the killer table and to set the mate distance of a
// mated score. Transposition-table scores are stored and read as they
// are, without any ply adjustment.
func (s *Search) minimax(pos *position.Position, depth int, alpha, beta Value, nullOk bool, ply int) Value {
	s.nodesVisited++
	if s.nodesVisited%nodePollInterval == 0 && s.stopRequested() {
		return ValueZero
	}

	if depth <= 0 {
		return s.qsearch(pos, config.Settings.Search.MaxQDepth, alpha, beta, ply)
	}

	originalAlpha := alpha

	ttMove := MoveNone
	if config.Settings.Search.UseTT {
		if entry := s.tt.Probe(pos.Hash()); entry != nil {
			s.statistics.TTHit++
			ttMove = entry.Move()
		} else {
			s.statistics.TTMiss++
		}
	}

	var ml moveslice.MoveList
	movegen.Generate(pos, &ml)
	ml.Sort(MoveNone, s.killers.First(ply), s.killers.Second(ply), ttMove)

	us := pos.NextPlayer()
	inCheck := pos.IsInCheck(us)

	// Null-move pruning: skip our own move entirely and see if the
	// opponent can still only reach beta - if even a free move doesn't
	// help them, depth is wasted searching this node further.
	if nullOk && !inCheck && depth >= config.Settings.Search.NmpMinDepth &&
		evaluator.EndgameWeight(evaluator.Phase(pos)) < config.Settings.Search.NmpEndgameThreshold {
		pos.NullMove()
		score := -s.minimax(pos, depth-1-config.Settings.Search.NmpReduction, -beta, -beta+1, false, ply+1)
		pos.UndoMove()
		if score >= beta && !score.IsMate() {
			s.statistics.NullMoveCuts++
			return beta
		}
	}

	bestValue := -Inf
	bestMove := MoveNone
	legalMoves := 0

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)

		pos.MakeMove(m)
		if pos.IsInCheck(us) {
			pos.UndoMove()
			continue
		}
		legalMoves++

		var score Value
		quiet := !m.IsCapture() && !m.IsPromotion()
		if i > config.Settings.Search.LmrMinMoveIdx && depth >= config.Settings.Search.LmrMinDepth &&
			config.Settings.Search.UseLmr && !inCheck && quiet {
			s.statistics.LmrReductions++
			score = -s.minimax(pos, depth-config.Settings.Search.LmrReduction, -alpha-1, -alpha, true, ply+1)
			if score > alpha {
				s.statistics.LmrResearches++
				score = -s.minimax(pos, depth-1, -beta, -alpha, true, ply+1)
			}
		} else {
			score = -s.minimax(pos, depth-1, -beta, -alpha, true, ply+1)
		}
		pos.UndoMove()

		if score > bestValue {
			bestValue = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if quiet {
				s.killers.Store(ply, m)
			}
			break
		}

		if s.nodesVisited%nodePollInterval == 0 && s.stopRequested() {
			return ValueZero
		}
	}

	if legalMoves == 0 {
		if inCheck {
			s.statistics.Checkmates++
			return -(MateValue - Value(ply))
		}
		s.statistics.Stalemates++
		return ValueZero
	}

	flag := Exact
	switch {
	case bestValue <= originalAlpha:
		flag = AtMost
	case bestValue >= beta:
		flag = AtLeast
	}
	if config.Settings.Search.UseTT {
		s.tt.Store(pos.Hash(), bestMove, int8(depth), bestValue, flag)
	}

	return bestValue
}

// qsearch extends the search past the horizon along noisy lines only
// (captures and promotions), so a side can't hide a hanging piece just
// past the depth cutoff. stand_pat assumes "doing nothing" is at least as
// good as the worst available move, which holds outside of zugzwang.
func (s *Search) qsearch(pos *position.Position, depth int, alpha, beta Value, ply int) Value {
	s.nodesVisited++
	if s.nodesVisited%nodePollInterval == 0 && s.stopRequested() {
		return ValueZero
	}

	if depth == 0 {
		return evaluator.Evaluate(pos)
	}

	standPat := evaluator.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var ml moveslice.MoveList
	movegen.Generate(pos, &ml)
	ml.Sort(MoveNone, MoveNone, MoveNone, MoveNone)

	margin := Value(config.Settings.Search.DeltaPruningMargin)

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if !m.IsCapture() && !m.IsPromotion() {
			continue
		}

		if m.IsCapture() {
			gain := m.Captured().TypeOf().MaterialValue() - (m.Moved().TypeOf().MaterialValue() + 100)
			if standPat+gain+margin < alpha {
				continue
			}
		}

		pos.MakeMove(m)
		if pos.IsInCheck(pos.NextPlayer().Flip()) {
			pos.UndoMove()
			continue
		}
		score := -s.qsearch(pos, depth-1, -beta, -alpha, ply+1)
		pos.UndoMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// stopRequested reports whether the search should unwind now: the UCI
// "stop" command fired, or a move-time budget elapsed.
func (s *Search) stopRequested() bool {
	if s.stopFlag.IsSet() {
		return true
	}
	if s.timeLimit > 0 && time.Since(s.startTime) >= s.timeLimit {
		s.stopFlag.Set()
		return true
	}
	return false
}
