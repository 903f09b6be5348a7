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

// evalConfiguration holds the evaluator's tunable bonuses/penalties, all in
// centipawns. spec.md §4.5 gives each a fixed value; as with
// searchConfiguration these become packaged defaults rather than compile-
// time constants.
type evalConfiguration struct {
	MobilityKnight int
	MobilityBishop int
	MobilityRook   int
	MobilityQueen  int

	CastleKingsideBonus  int
	CastleQueensideBonus int
	BishopPairBonus      int
	IsolatedPawnPenalty  int
	BlockedBishopPenalty int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.MobilityKnight = 4
	Settings.Eval.MobilityBishop = 3
	Settings.Eval.MobilityRook = 2
	Settings.Eval.MobilityQueen = 2

	Settings.Eval.CastleKingsideBonus = 8
	Settings.Eval.CastleQueensideBonus = 6
	Settings.Eval.BishopPairBonus = 30
	Settings.Eval.IsolatedPawnPenalty = 15
	Settings.Eval.BlockedBishopPenalty = 30
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
