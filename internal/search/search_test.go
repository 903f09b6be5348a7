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
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gopherfish/engine/internal/position"
	. "github.com/gopherfish/engine/internal/types"
)

// make tests run from the project root so relative config paths resolve.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	_ = os.Chdir(dir)
}

func TestStartSearchDepthLimitedReturnsBestMove(t *testing.T) {
	s := NewSearch()
	pos := position.New(position.StartFen)

	s.StartSearch(*pos, Limits{Depth: 3})
	s.WaitWhileSearching()

	result := s.LastResult()
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Equal(t, 3, result.SearchDepth)
}

func TestStartSearchMoveTimeStops(t *testing.T) {
	s := NewSearch()
	pos := position.New(position.StartFen)

	start := time.Now()
	s.StartSearch(*pos, Limits{TimeControl: true, MoveTime: 100 * time.Millisecond})
	s.WaitWhileSearching()
	elapsed := time.Since(start)

	result := s.LastResult()
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestStopSearchInterruptsInfiniteSearch(t *testing.T) {
	s := NewSearch()
	pos := position.New(position.StartFen)

	s.StartSearch(*pos, Limits{Infinite: true})
	assert.True(t, s.IsSearching())
	time.Sleep(50 * time.Millisecond)
	s.StopSearch()

	assert.False(t, s.IsSearching())
	assert.NotEqual(t, MoveNone, s.LastResult().BestMove)
}

func TestNewGameClearsHashAndKillers(t *testing.T) {
	s := NewSearch()
	s.initialize()
	pos := position.New(position.StartFen)
	s.StartSearch(*pos, Limits{Depth: 4})
	s.WaitWhileSearching()

	assert.NotNil(t, s.tt)
	s.NewGame()
	assert.Equal(t, 0, s.tt.Hashfull())
	assert.Equal(t, MoveNone, s.killers.First(0))
}

func TestMateInOneIsFoundQuickly(t *testing.T) {
	s := NewSearch()
	// Fool's mate position: black to move, Qh4# available.
	pos := position.New("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")

	s.StartSearch(*pos, Limits{Depth: 3})
	s.WaitWhileSearching()

	result := s.LastResult()
	assert.True(t, result.BestValue.IsMate())
	assert.Equal(t, SqD8, result.BestMove.From())
	assert.Equal(t, SqH4, result.BestMove.To())
}
