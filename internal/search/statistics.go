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
	. "github.com/gopherfish/engine/internal/types"
)

// Statistics are counters kept alongside a search, useful for logging and
// for the "info string" diagnostics extension - none of them feed back
// into the search itself.
type Statistics struct {
	NullMoveCuts         uint64
	LmrResearches        uint64
	LmrReductions        uint64
	AspirationResearches uint64

	TTHit  uint64
	TTMiss uint64

	Checkmates uint64
	Stalemates uint64

	CurrentIterationDepth   int
	CurrentBestRootMove     Move
	CurrentBestRootMoveVal  Value
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
