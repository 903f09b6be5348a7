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

// Package evaluator turns a Position into a centipawn score from the
// side-to-move's perspective: tapered material and piece-square tables,
// mobility, and a handful of structural bonuses/penalties. Nothing here
// is cached or kept incremental - every call walks the bitboards fresh.
package evaluator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopherfish/engine/internal/config"
	myLogging "github.com/gopherfish/engine/internal/logging"
	"github.com/gopherfish/engine/internal/position"
	. "github.com/gopherfish/engine/internal/types"
)

var log = myLogging.GetLog()
var out = message.NewPrinter(language.German)

// MaxGamePhase is the cap on Phase: a board with every minor/major piece
// still on it sums to 24 across both colors (4 knights + 4 bishops +
// 4 rooks*2 + 2 queens*4) and is clamped to 16 - see Phase.
const MaxGamePhase = 16

// Evaluator exists for parity with the rest of this codebase's
// constructor idiom and to give a Report() a receiver to hang off; it
// holds no per-position state, so search calls the package-level
// Evaluate directly on its hot path.
type Evaluator struct{}

// NewEvaluator creates an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns pos's value in centipawns from pos.NextPlayer's
// perspective (negamax convention), clamped to [-MaxCp, MaxCp].
func (e *Evaluator) Evaluate(pos *position.Position) Value {
	return Evaluate(pos)
}

// Report renders a breakdown of Evaluate's terms for a position, for use
// in debugging.
func (e *Evaluator) Report(pos *position.Position) string {
	phase := Phase(pos)
	return out.Sprintf(
		"phase=%d endgame_weight=%.2f material=%d pst=%d mobility=%d structure=%d total=%d\n",
		phase, EndgameWeight(phase), material(pos), pst(pos, phase), mobility(pos), structure(pos, phase), Evaluate(pos))
}

// Evaluate is the package-level entry point used directly by search, which
// never needs an Evaluator beyond this stateless function.
func Evaluate(pos *position.Position) Value {
	if pos.HalfMoveClock() >= 100 {
		return ValueZero
	}

	phase := Phase(pos)
	score := material(pos) + pst(pos, phase) + mobility(pos) + structure(pos, phase)

	if score > MaxCp {
		score = MaxCp
	} else if score < -MaxCp {
		score = -MaxCp
	}

	return score * Value(pos.NextPlayer().Direction())
}

// Phase sums knight=1/bishop=1/rook=2/queen=4 across both colors and
// clamps to MaxGamePhase, matching PieceType.GamePhaseValue's weights.
func Phase(pos *position.Position) int {
	phase := 0
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		phase += pos.GetPieceTypeBitboard(pt).PopCount() * pt.GamePhaseValue()
	}
	if phase > MaxGamePhase {
		phase = MaxGamePhase
	}
	return phase
}

// EndgameWeight converts a Phase() result into the [0,1] endgame_weight
// the tapered pst/structural formulas, and search's null-move guard, are
// expressed in terms of.
func EndgameWeight(phase int) float64 {
	return 1 - float64(phase)/float64(MaxGamePhase)
}

func material(pos *position.Position) Value {
	var score Value
	for pt := Pawn; pt <= Queen; pt++ {
		v := pt.MaterialValue()
		score += v * Value(pos.GetBitboard(MakePiece(White, pt)).PopCount())
		score -= v * Value(pos.GetBitboard(MakePiece(Black, pt)).PopCount())
	}
	return score
}

// pst sums piece-square contributions for every occupied square. Pawn and
// King tables are tapered between their mid-game and end-game variants by
// phase; the other piece types use a single (mid-game) table. Black's
// square is mirrored (63-sq) and its contribution subtracted.
func pst(pos *position.Position, phase int) Value {
	var score Value
	for pt := Pawn; pt <= King; pt++ {
		mg, eg, tapered := pstTables(pt)

		whiteBb := pos.GetBitboard(MakePiece(White, pt))
		for whiteBb != BbZero {
			sq := whiteBb.PopLsb()
			if tapered {
				score += taperedValue(mg[sq], eg[sq], phase)
			} else {
				score += mg[sq]
			}
		}

		blackBb := pos.GetBitboard(MakePiece(Black, pt))
		for blackBb != BbZero {
			sq := blackBb.PopLsb()
			mirror := SqH8 - sq
			if tapered {
				score -= taperedValue(mg[mirror], eg[mirror], phase)
			} else {
				score -= mg[mirror]
			}
		}
	}
	return score
}

// taperedValue blends mg/eg by phase as an integer weighted average
// (rather than floating point), so evaluation is bit-for-bit
// reproducible across platforms - the same idiom the dropped
// posValues.go used for its own mid/end-game blending.
func taperedValue(mg, eg Value, phase int) Value {
	return (mg*Value(phase) + eg*Value(MaxGamePhase-phase)) / Value(MaxGamePhase)
}

func mobility(pos *position.Position) Value {
	occ := pos.Occupied()
	var score Value
	for _, m := range []struct {
		pt    PieceType
		bonus Value
	}{
		{Knight, Value(config.Settings.Eval.MobilityKnight)},
		{Bishop, Value(config.Settings.Eval.MobilityBishop)},
		{Rook, Value(config.Settings.Eval.MobilityRook)},
		{Queen, Value(config.Settings.Eval.MobilityQueen)},
	} {
		whiteBb := pos.GetBitboard(MakePiece(White, m.pt))
		for whiteBb != BbZero {
			sq := whiteBb.PopLsb()
			score += m.bonus * Value(GetAttacksBb(m.pt, sq, occ).PopCount())
		}
		blackBb := pos.GetBitboard(MakePiece(Black, m.pt))
		for blackBb != BbZero {
			sq := blackBb.PopLsb()
			score -= m.bonus * Value(GetAttacksBb(m.pt, sq, occ).PopCount())
		}
	}
	return score
}

func structure(pos *position.Position, phase int) Value {
	var score Value
	ks := Value(config.Settings.Eval.CastleKingsideBonus)
	qs := Value(config.Settings.Eval.CastleQueensideBonus)
	bishopPair := Value(config.Settings.Eval.BishopPairBonus)
	isolated := Value(config.Settings.Eval.IsolatedPawnPenalty)
	blockedPenalty := Value(config.Settings.Eval.BlockedBishopPenalty)

	rights := pos.CastlingRights()
	if rights.Has(CastlingWhiteOO) {
		score += ks
	}
	if rights.Has(CastlingWhiteOOO) {
		score += qs
	}
	if rights.Has(CastlingBlackOO) {
		score -= ks
	}
	if rights.Has(CastlingBlackOOO) {
		score -= qs
	}

	if pos.GetBitboard(MakePiece(White, Bishop)).PopCount() >= 2 {
		score += bishopPair
	}
	if pos.GetBitboard(MakePiece(Black, Bishop)).PopCount() >= 2 {
		score -= bishopPair
	}

	score -= isolated * Value(isolatedPawnCount(pos, White))
	score += isolated * Value(isolatedPawnCount(pos, Black))

	if EndgameWeight(phase) < 0.5 {
		if blockedBishop(pos, White) {
			score -= blockedPenalty
		}
		if blockedBishop(pos, Black) {
			score += blockedPenalty
		}
	}

	return score
}

func isolatedPawnCount(pos *position.Position, c Color) int {
	pawns := pos.GetBitboard(MakePiece(c, Pawn))
	count := 0
	bb := pawns
	for bb != BbZero {
		sq := bb.PopLsb()
		if sq.NeighbourFilesMask()&pawns == BbZero {
			count++
		}
	}
	return count
}

// blockedBishop reports whether c's d- or e-pawn is still on its home
// square with a friendly bishop sitting directly in front of it, unable
// to advance - a sign of poor opening development.
func blockedBishop(pos *position.Position, c Color) bool {
	homeRank := c.PawnRank()
	fwd := c.MoveDirection()
	for _, f := range []File{FileD, FileE} {
		pawnSq := SquareOf(f, homeRank)
		if pos.PieceAt(pawnSq) != MakePiece(c, Pawn) {
			continue
		}
		frontSq := pawnSq.To(fwd)
		if frontSq != SqNone && pos.PieceAt(frontSq) == MakePiece(c, Bishop) {
			return true
		}
	}
	return false
}
