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

package types

import "fmt"

// Value is a centipawn evaluation or search score, signed from the
// perspective of the side to move (negamax convention).
type Value int32

const (
	ValueZero Value = 0
	// MateValue is the score assigned to an immediate checkmate; scores of
	// larger magnitude than MaxCp but smaller than MateValue encode "mate
	// in N plies" as MateValue-N.
	MateValue Value = 30000
	// Inf is larger than any legal evaluation or mate score and is used to
	// seed alpha/beta at the root of the search.
	Inf Value = 30001
	// MaxCp bounds ordinary (non-mate) evaluations; |score| > MaxCp
	// identifies a mate score.
	MaxCp Value = 10000
)

// IsMate reports whether v encodes a forced mate score.
func (v Value) IsMate() bool {
	if v < 0 {
		v = -v
	}
	return v > MaxCp
}

// MatePlies returns the number of plies to the mate v encodes, signed
// from v's own perspective (positive: this side mates, negative: this
// side gets mated). Only meaningful when v.IsMate().
func (v Value) MatePlies() int {
	if v > 0 {
		return int(MateValue - v)
	}
	return -int(MateValue + v)
}

// String renders v the way UCI's "score" token does: "mate <n>" for a
// forced mate, "cp <n>" otherwise.
func (v Value) String() string {
	if v.IsMate() {
		n := v.MatePlies()
		// UCI counts mate distance in full moves, not plies.
		if n > 0 {
			return fmt.Sprintf("mate %d", (n+1)/2)
		}
		return fmt.Sprintf("mate %d", n/2)
	}
	return fmt.Sprintf("cp %d", int(v))
}

// ValueType tags a stored search score as exact, a lower bound, or an
// upper bound, matching the transposition table's replacement contract.
type ValueType int8

const (
	NoValue ValueType = iota
	Exact
	AtLeast // beta cutoff: true score >= stored value
	AtMost  // alpha cutoff: true score <= stored value
)

func (vt ValueType) IsValid() bool {
	return vt >= NoValue && vt <= AtMost
}

var valueTypeStrings = [...]string{"NoValue", "Exact", "AtLeast", "AtMost"}

func (vt ValueType) String() string {
	if !vt.IsValid() {
		return "Invalid"
	}
	return valueTypeStrings[vt]
}
