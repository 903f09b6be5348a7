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

package config

// searchConfiguration holds the search's tunable knobs. spec.md gives each
// of these a fixed default value; here the default becomes the packaged
// default rather than a compile-time constant, so a config.toml can
// override it without a rebuild.
type searchConfiguration struct {
	// Transposition table
	UseTT  bool
	TTSize int

	// Iterative deepening / aspiration
	MaxDepth          int
	AspirationWindow  int // cp, spec.md §4.7's "window = 67"

	// Null-move pruning
	UseNullMove         bool
	NmpMinDepth         int     // depth >= NmpMinDepth to try null-move
	NmpReduction        int     // R in depth-1-R, so depth-1-R=depth-3 per spec.md §4.7 step 6
	NmpEndgameThreshold float64 // only tried when endgame_weight < this

	// Late-move reduction
	UseLmr        bool
	LmrMinMoveIdx int // i > LmrMinMoveIdx
	LmrMinDepth   int // depth >= LmrMinDepth
	LmrReduction  int // depth-2 in spec.md's reduced search

	// Quiescence search
	MaxQDepth          int
	DeltaPruningMargin int // the "+200" in spec.md §4.7 step 5
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.MaxDepth = 64
	Settings.Search.AspirationWindow = 67

	Settings.Search.UseNullMove = true
	Settings.Search.NmpMinDepth = 3
	Settings.Search.NmpReduction = 2
	Settings.Search.NmpEndgameThreshold = 0.7

	Settings.Search.UseLmr = true
	Settings.Search.LmrMinMoveIdx = 3
	Settings.Search.LmrMinDepth = 3
	Settings.Search.LmrReduction = 2

	Settings.Search.MaxQDepth = 6
	Settings.Search.DeltaPruningMargin = 200
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupSearch() {
}
