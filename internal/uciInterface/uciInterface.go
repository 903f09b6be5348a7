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

// Package uciInterface defines the callback a Search uses to report
// progress to whatever is driving it. internal/uci needs a *Search to
// start/stop searches, so Search cannot import internal/uci back without
// a cycle - it holds a UciDriver instead, and internal/uci implements it.
package uciInterface

import (
	"time"

	"github.com/gopherfish/engine/internal/moveslice"
	"github.com/gopherfish/engine/internal/types"
)

// UciDriver is the set of callbacks a Search uses to report progress and
// results. A nil driver is valid - Search falls back to logging.
type UciDriver interface {
	// SendReadyOk replies to "isready" once the search is initialized.
	SendReadyOk()
	// SendInfoString sends a free-form "info string" diagnostic line.
	SendInfoString(info string)
	// SendIterationEndInfo reports one completed iterative-deepening depth.
	SendIterationEndInfo(depth int, score types.Value, nodes uint64, nps uint64, elapsed time.Duration, pv moveslice.MoveList)
	// SendResult sends the final "bestmove" for a finished search.
	SendResult(bestMove types.Move)
}
