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

package uci

import (
	"bufio"
	"bytes"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gopherfish/engine/internal/config"
	"github.com/gopherfish/engine/internal/position"
)

// make tests run in the project's root directory so relative config
// paths resolve.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestUciHandlerLoop(t *testing.T) {
	uh := NewUciHandler()
	uh.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buffer := new(bytes.Buffer)
	uh.OutIo = bufio.NewWriter(buffer)
	uh.Loop()
	assert.Contains(t, buffer.String(), "uciok")
}

func TestUciCommand(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("uci")
	assert.Contains(t, result, "id name Gopherfish")
	assert.Contains(t, result, "Clear Hash")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyCmd(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("isready")
	assert.Contains(t, result, "readyok")
}

func TestClearHash(t *testing.T) {
	uh := NewUciHandler()
	assert.Contains(t, uh.Command("isready"), "readyok")
	result := uh.Command("setoption name Clear Hash")
	assert.Contains(t, result, "Hash cleared")
}

func TestResizeHash(t *testing.T) {
	uh := NewUciHandler()
	assert.Contains(t, uh.Command("isready"), "readyok")
	uh.Command("setoption name Hash value 32")
	assert.Equal(t, 32, config.Settings.Search.TTSize)
}

func TestPositionCmd(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")
	assert.EqualValues(t, position.StartFen, uh.myPosition.FenString())

	uh.Command("position fen " + position.StartFen)
	assert.EqualValues(t, position.StartFen, uh.myPosition.FenString())

	result := uh.Command("position fen")
	assert.Contains(t, result, "Command 'position' malformed")

	uh.Command("position fen " + position.StartFen + "  moves     e2e4 e7e5 g1f3 b8c6")
	assert.EqualValues(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", uh.myPosition.FenString())

	result = uh.Command("position fen " + position.StartFen + "  moves e7e5 g1f3 b8c6")
	assert.Contains(t, result, "Command 'position' malformed")

	uh.Command("position startpos  moves  e2e4 e7e5 g1f3 b8c6")
	assert.EqualValues(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", uh.myPosition.FenString())
}

func TestReadSearchLimits(t *testing.T) {
	uh := NewUciHandler()

	tokens := regexWhiteSpace.Split("go infinite", -1)
	sl, failed := uh.readSearchLimits(tokens)
	assert.False(t, failed)
	assert.True(t, sl.Infinite)
	assert.False(t, sl.TimeControl)

	tokens = regexWhiteSpace.Split("go depth 6", -1)
	sl, failed = uh.readSearchLimits(tokens)
	assert.False(t, failed)
	assert.EqualValues(t, 6, sl.Depth)
	assert.False(t, sl.TimeControl)

	tokens = regexWhiteSpace.Split("go nodes 10000000", -1)
	sl, failed = uh.readSearchLimits(tokens)
	assert.False(t, failed)
	assert.EqualValues(t, 10_000_000, sl.Nodes)
	assert.False(t, sl.TimeControl)

	tokens = regexWhiteSpace.Split("go depth six", -1)
	_, failed = uh.readSearchLimits(tokens)
	assert.True(t, failed)

	tokens = regexWhiteSpace.Split("go moveTime 5000", -1)
	sl, failed = uh.readSearchLimits(tokens)
	assert.False(t, failed)
	assert.EqualValues(t, 5000, sl.MoveTime.Milliseconds())
	assert.True(t, sl.TimeControl)

	tokens = regexWhiteSpace.Split("go moveTime 5000 depth 6 nodes 1000000", -1)
	sl, failed = uh.readSearchLimits(tokens)
	assert.False(t, failed)
	assert.EqualValues(t, 5000, sl.MoveTime.Milliseconds())
	assert.EqualValues(t, 6, sl.Depth)
	assert.EqualValues(t, 1_000_000, sl.Nodes)
	assert.True(t, sl.TimeControl)

	tokens = regexWhiteSpace.Split("go moveTime 5000 depth 6 nodex 1000000", -1)
	_, failed = uh.readSearchLimits(tokens)
	assert.True(t, failed)

	tokens = regexWhiteSpace.Split("go wtime 60000 btime 60000 winc 2000 binc 2000 depth 6 nodes 1000000 movestogo 20", -1)
	sl, failed = uh.readSearchLimits(tokens)
	assert.False(t, failed)
	assert.EqualValues(t, 60000, sl.WhiteTime.Milliseconds())
	assert.EqualValues(t, 60000, sl.BlackTime.Milliseconds())
	assert.EqualValues(t, 2000, sl.WhiteInc.Milliseconds())
	assert.EqualValues(t, 2000, sl.BlackInc.Milliseconds())
	assert.EqualValues(t, 20, sl.MovesToGo)
	assert.True(t, sl.TimeControl)

	tokens = regexWhiteSpace.Split("go winc 2000 binc 2000 movestogo 20", -1)
	_, failed = uh.readSearchLimits(tokens)
	assert.True(t, failed)
}

func TestFullSearchProcess(t *testing.T) {
	uh := NewUciHandler()

	result := uh.Command("uci")
	assert.Contains(t, result, "id name Gopherfish")
	assert.Contains(t, result, "uciok")

	assert.Contains(t, uh.Command("isready"), "readyok")

	uh.Command("position startpos moves e2e4 e7e5")
	assert.EqualValues(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", uh.myPosition.FenString())

	uh.Command("go moveTime 500")
	assert.True(t, uh.mySearch.IsSearching())
	uh.mySearch.WaitWhileSearching()
	assert.NotEqual(t, "0000", uh.mySearch.LastResult().BestMove.StringUci())

	uh.Command("quit")
}

func TestInfiniteStopsOnCommand(t *testing.T) {
	uh := NewUciHandler()

	assert.Contains(t, uh.Command("uci"), "uciok")
	assert.Contains(t, uh.Command("isready"), "readyok")

	uh.Command("position startpos moves e2e4 e7e5")
	uh.Command("go infinite")
	assert.True(t, uh.mySearch.IsSearching())

	time.Sleep(50 * time.Millisecond)
	uh.Command("stop")
	uh.mySearch.WaitWhileSearching()
	assert.False(t, uh.mySearch.IsSearching())

	uh.Command("quit")
}

func TestPerftCommand(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")
	result := uh.Command("perft 2")
	_ = result
	time.Sleep(100 * time.Millisecond)
}
