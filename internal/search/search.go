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

// Package search implements iterative-deepening negamax with a
// transposition table, null-move pruning, late-move reductions, and a
// quiescence search - everything in spec is spelled out as fixed
// parameters rather than the ply/move-count-indexed tuning tables a
// tournament-strength engine would carry.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/gopherfish/engine/internal/config"
	myLogging "github.com/gopherfish/engine/internal/logging"
	"github.com/gopherfish/engine/internal/moveslice"
	"github.com/gopherfish/engine/internal/position"
	"github.com/gopherfish/engine/internal/transpositiontable"
	. "github.com/gopherfish/engine/internal/types"
	"github.com/gopherfish/engine/internal/uciInterface"
	"github.com/gopherfish/engine/internal/util"
)

var out = message.NewPrinter(language.German)

// Search runs iterative-deepening negamax on a Position given to
// StartSearch. Create with NewSearch.
type Search struct {
	log *logging.Logger

	uciHandlerPtr uciInterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt      *transpositiontable.TtTable
	killers killerTable

	stopFlag  util.AtomicFlag
	startTime time.Time
	timeLimit time.Duration

	nodesVisited uint64
	statistics   Statistics

	lastResult *Result
}

// NewSearch creates a Search with no transposition table allocated yet
// (lazily done on first IsReady/StartSearch, per config.Settings.Search.TTSize).
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
	}
}

// NewGame stops any running search and clears the transposition table
// and killer moves, per the "ucinewgame" UCI command.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.killers.Clear()
}

// SetUciHandler installs the callback search uses to report progress. A
// nil handler (the default) makes Search log instead.
func (s *Search) SetUciHandler(h uciInterface.UciDriver) {
	s.uciHandlerPtr = h
}

// IsReady lazily allocates the transposition table, then reports
// "readyok" - the UCI handshake step that lets a GUI know setup (which
// may allocate a large hash table) has finished.
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

func (s *Search) initialize() {
	if config.Settings.Search.UseTT && s.tt == nil {
		size := config.Settings.Search.TTSize
		if size == 0 {
			size = 64
		}
		s.tt = transpositiontable.NewTtTable(size)
	}
}

// ResizeCache reallocates the transposition table at the size currently
// set in config.Settings.Search.TTSize. Refused while searching.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		s.sendInfoString("Can't resize hash while searching.")
		return
	}
	if s.tt == nil {
		s.initialize()
		return
	}
	s.tt.Resize(config.Settings.Search.TTSize)
}

// ClearHash empties the transposition table. Refused while searching.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		s.sendInfoString("Can't clear hash while searching.")
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoString("Hash cleared")
	}
}

// StartSearch begins searching p under the given limits in its own
// goroutine, returning only once the goroutine has grabbed the running
// semaphore and copied its inputs - so a StopSearch issued immediately
// after is guaranteed to see the search as running.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	go s.run(&p, &sl)
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch sets the stop flag and blocks until the search goroutine has
// emitted its result and returned.
func (s *Search) StopSearch() {
	s.stopFlag.Set()
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has finished.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// LastResult returns a copy of the most recently finished search's result.
func (s *Search) LastResult() Result {
	if s.lastResult == nil {
		return Result{}
	}
	return *s.lastResult
}

// NodesVisited returns the node count of the last (or currently running)
// search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns the last (or currently running) search's counters.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

func (s *Search) run(pos *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("search already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.stopFlag.Clear()
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.timeLimit = timeLimitFor(pos, sl)
	s.initialize()

	s.initSemaphore.Release(1)

	result := s.iterativeDeepening(pos, sl)
	result.SearchTime = time.Since(s.startTime)
	s.lastResult = result

	s.log.Infof("search finished: %s", result.String())
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(result.BestMove)
	} else {
		s.log.Infof("bestmove %s", result.BestMove.StringUci())
	}
}

// iterativeDeepening implements the loop spec.md's §4.7 spells out:
// aspiration windows around the previous iteration's score, widening to
// the full range on a fail-low/high, one "info" line per completed depth.
func (s *Search) iterativeDeepening(pos *position.Position, sl *Limits) *Result {
	maxDepth := config.Settings.Search.MaxDepth
	if sl.Depth > 0 && sl.Depth < maxDepth {
		maxDepth = sl.Depth
	}
	window := Value(config.Settings.Search.AspirationWindow)

	bestMove := MoveNone
	eval := ValueZero

	for depth := 1; depth <= maxDepth; depth++ {
		alpha, beta := -Inf, Inf
		if depth > 1 {
			alpha, beta = eval-window, eval+window
		}

		m, v := s.rootSearch(pos, depth, bestMove, alpha, beta)
		if v <= alpha || v >= beta {
			s.statistics.AspirationResearches++
			m, v = s.rootSearch(pos, depth, bestMove, -Inf, Inf)
		}

		// v == -Inf only when rootSearch was stopped before any move
		// completed (no result to report yet); a genuine terminal score
		// (checkmate/stalemate, MoveNone with a real value) still updates
		// eval so "bestmove 0000"/"score" reflect it, per spec.md §8
		// scenarios 3-4.
		if v > -Inf {
			bestMove, eval = m, v
		}

		s.statistics.CurrentIterationDepth = depth
		s.statistics.CurrentBestRootMove = bestMove
		s.statistics.CurrentBestRootMoveVal = eval
		s.sendIterationEnd(depth, eval, bestMove)

		if s.stopRequested() {
			break
		}
	}

	var pv moveslice.MoveList
	if bestMove != MoveNone {
		pv.Add(bestMove)
	}
	return &Result{
		BestMove:    bestMove,
		BestValue:   eval,
		SearchDepth: s.statistics.CurrentIterationDepth,
		Pv:          pv,
	}
}

func timeLimitFor(pos *position.Position, sl *Limits) time.Duration {
	switch {
	case sl.Infinite || sl.Depth > 0:
		return 0
	case sl.MoveTime > 0:
		return sl.MoveTime
	case sl.TimeControl:
		movesToGo := sl.MovesToGo
		if movesToGo <= 0 {
			movesToGo = 30
		}
		var timeLeft, inc time.Duration
		if pos.NextPlayer() == White {
			timeLeft, inc = sl.WhiteTime, sl.WhiteInc
		} else {
			timeLeft, inc = sl.BlackTime, sl.BlackInc
		}
		budget := timeLeft/time.Duration(movesToGo) + inc
		// keep a safety margin so we always return before the clock runs out
		budget = time.Duration(float64(budget) * 0.9)
		if budget < 0 {
			budget = 0
		}
		return budget
	default:
		return 0
	}
}

func (s *Search) sendInfoString(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	} else {
		s.log.Debug(msg)
	}
}

func (s *Search) sendIterationEnd(depth int, score Value, best Move) {
	elapsed := time.Since(s.startTime)
	nps := util.Nps(s.nodesVisited, elapsed)
	var pv moveslice.MoveList
	if best != MoveNone {
		pv.Add(best)
	}
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(depth, score, s.nodesVisited, nps, elapsed, pv)
	} else {
		s.log.Infof(out.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
			depth, score.String(), s.nodesVisited, nps, elapsed.Milliseconds(), pv.StringUci()))
	}
}
