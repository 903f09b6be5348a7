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

// Package transpositiontable implements a fixed-size transposition table
// (cache) for the search. TtTable is not safe for concurrent use; Resize
// and Clear must not race with Probe/Store.
package transpositiontable

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/gopherfish/engine/internal/logging"
	. "github.com/gopherfish/engine/internal/types"
	"github.com/gopherfish/engine/internal/util"
	"github.com/gopherfish/engine/internal/zobrist"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB bounds how large a table a user can ask for.
const MaxSizeInMB = 65_536

const mb = 1024 * 1024

// TtTable is a flat array of TtEntry indexed by hash mod len(data). Create
// with NewTtTable.
type TtTable struct {
	log   *logging.Logger
	data  []TtEntry
	Stats TtStats
}

// TtStats holds usage counters, purely informational (surfaced via
// String for debugging).
type TtStats struct {
	numberOfStores uint64
	numberOfProbes uint64
	numberOfHits   uint64
	numberOfMisses uint64
}

// NewTtTable creates a table sized from a megabyte budget: capacity is
// however many TtEntrySize-byte slots fit in sizeInMByte.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize clears the table and rebuilds it for the new size.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}
	capacity := (sizeInMByte * mb) / TtEntrySize
	tt.data = make([]TtEntry, capacity)
	tt.Stats = TtStats{}
	tt.log.Info(out.Sprintf("TT size %d MByte, capacity %d entries", sizeInMByte, capacity))
	tt.log.Debug(util.MemStat())
}

// index is "hash mod size" per spec - a plain modulo rather than the
// power-of-two mask a fixed-capacity table usually prefers, since
// NewTtTable's capacity is not constrained to be a power of two.
func (tt *TtTable) index(key zobrist.Key) uint64 {
	return uint64(key) % uint64(len(tt.data))
}

// Probe returns a pointer to the entry at key's slot iff its stored key
// matches, nil otherwise (empty slot or a different position hashed to
// the same slot).
func (tt *TtTable) Probe(key zobrist.Key) *TtEntry {
	if len(tt.data) == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.index(key)]
	if e.key == key {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Store writes an entry, replacing the current occupant of its slot iff
// the slot is empty, holds the same key, or its stored depth is <= the
// new depth (depth-preferred replacement).
func (tt *TtTable) Store(key zobrist.Key, move Move, depth int8, score Value, flag ValueType) {
	if len(tt.data) == 0 {
		return
	}
	tt.Stats.numberOfStores++
	e := &tt.data[tt.index(key)]
	if e.key == zobrist.Key(0) || e.key == key || e.depth <= depth {
		e.key = key
		e.move = move
		e.score = score
		e.depth = depth
		e.flag = flag
	}
}

// Clear empties the table, for the UCI "ucinewgame" command.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, len(tt.data))
	tt.Stats = TtStats{}
}

// Hashfull reports how full the table is, in permille, as UCI's "info
// hashfull" expects. Samples the first 1000 slots rather than scanning
// the whole table, matching the cheap-estimate contract UCI expects.
func (tt *TtTable) Hashfull() int {
	if len(tt.data) == 0 {
		return 0
	}
	occupied := 0
	sampleSize := len(tt.data)
	if sampleSize > 1000 {
		sampleSize = 1000
	}
	for i := 0; i < sampleSize; i++ {
		if tt.data[i].key != zobrist.Key(0) {
			occupied++
		}
	}
	return (1000 * occupied) / sampleSize
}

// Len returns the table's slot capacity.
func (tt *TtTable) Len() int {
	return len(tt.data)
}

func (tt *TtTable) String() string {
	return out.Sprintf("TT: %d entries, %d stores, %d probes, %d hits, %d misses, %d%% full",
		len(tt.data), tt.Stats.numberOfStores, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, tt.Stats.numberOfMisses, tt.Hashfull()/10)
}
