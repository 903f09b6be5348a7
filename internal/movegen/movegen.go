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

// Package movegen enumerates pseudo-legal moves for a Position: moves that
// obey piece movement rules but may leave the mover's own king in check -
// the search filters those out by making the move and checking.
package movegen

import (
	"github.com/gopherfish/engine/internal/moveslice"
	"github.com/gopherfish/engine/internal/position"
	. "github.com/gopherfish/engine/internal/types"
)

// Generate appends every pseudo-legal move for pos's side to move to ml.
// ml is not cleared first, so callers that want a fresh list call
// ml.Clear() themselves.
func Generate(pos *position.Position, ml *moveslice.MoveList) {
	generatePawnMoves(pos, ml)
	generateCastling(pos, ml)
	generateLeaperMoves(pos, King, ml)
	generateLeaperMoves(pos, Knight, ml)
	generateSliderMoves(pos, ml)
}

// generatePawnMoves generates single/double pushes, left/right captures,
// en-passant, and the four-way promotion split - all via bitboard shifts
// rather than per-pawn loops.
func generatePawnMoves(pos *position.Position, ml *moveslice.MoveList) {
	us := pos.NextPlayer()
	them := us.Flip()
	fwd := us.MoveDirection()
	back := them.MoveDirection()
	empty := ^pos.Occupied()
	myPawns := pos.GetBitboard(MakePiece(us, Pawn))
	piece := MakePiece(us, Pawn)
	promRank := us.PromotionRank().Bb()

	// pushes
	singlePush := ShiftBitboard(myPawns, fwd) & empty
	doublePush := ShiftBitboard(singlePush&us.DoublePushRank().Bb(), fwd) & empty

	promPush := singlePush & promRank
	for promPush != BbZero {
		to := promPush.PopLsb()
		from := to.To(back)
		addPromotions(ml, from, to, piece, NoPiece)
	}
	quietPush := singlePush &^ promRank
	for quietPush != BbZero {
		to := quietPush.PopLsb()
		from := to.To(back)
		ml.Add(NewMove(from, to, piece, NoPiece, FlagNormal))
	}
	for doublePush != BbZero {
		to := doublePush.PopLsb()
		from := to.To(back).To(back)
		ml.Add(NewMove(from, to, piece, NoPiece, FlagDoublePush))
	}

	// captures
	for _, dir := range []Direction{West, East} {
		caps := ShiftBitboard(myPawns, fwd+dir) & pos.GetColorBitboard(them)
		promCaps := caps & promRank
		for promCaps != BbZero {
			to := promCaps.PopLsb()
			from := to.To(back - dir)
			addPromotions(ml, from, to, piece, pos.PieceAt(to))
		}
		quietCaps := caps &^ promRank
		for quietCaps != BbZero {
			to := quietCaps.PopLsb()
			from := to.To(back - dir)
			ml.Add(NewMove(from, to, piece, pos.PieceAt(to), FlagNormal))
		}
	}

	// en-passant
	if ep := pos.EnPassantSquare(); ep != SqNone {
		for _, dir := range []Direction{West, East} {
			from := ep.To(back - dir)
			if from != SqNone && myPawns.Has(from) {
				ml.Add(NewMove(from, ep, piece, MakePiece(them, Pawn), FlagEnPassant))
			}
		}
	}
}

// addPromotions emits the four promotion-kind moves for a pawn landing on
// to from, in Queen/Rook/Bishop/Knight order.
func addPromotions(ml *moveslice.MoveList, from, to Square, moved, captured Piece) {
	ml.Add(NewMove(from, to, moved, captured, FlagPromoteQueen))
	ml.Add(NewMove(from, to, moved, captured, FlagPromoteRook))
	ml.Add(NewMove(from, to, moved, captured, FlagPromoteBishop))
	ml.Add(NewMove(from, to, moved, captured, FlagPromoteKnight))
}

// generateCastling emits the king's two-square move with FlagCastling
// whenever the matching CanCastleKs/CanCastleQs predicate holds.
func generateCastling(pos *position.Position, ml *moveslice.MoveList) {
	us := pos.NextPlayer()
	kingSq := pos.KingSquare(us)
	piece := MakePiece(us, King)
	if pos.CanCastleKs(us) {
		to := kingSq + 2
		ml.Add(NewMove(kingSq, to, piece, NoPiece, FlagCastling))
	}
	if pos.CanCastleQs(us) {
		to := kingSq - 2
		ml.Add(NewMove(kingSq, to, piece, NoPiece, FlagCastling))
	}
}

// generateLeaperMoves generates knight or king moves: attack table AND NOT
// own occupancy, one move per destination, captured piece read from
// mailbox.
func generateLeaperMoves(pos *position.Position, pt PieceType, ml *moveslice.MoveList) {
	us := pos.NextPlayer()
	piece := MakePiece(us, pt)
	ownOcc := pos.GetColorBitboard(us)
	pieces := pos.GetBitboard(piece)
	for pieces != BbZero {
		from := pieces.PopLsb()
		targets := GetPseudoAttacks(pt, from) &^ ownOcc
		for targets != BbZero {
			to := targets.PopLsb()
			ml.Add(NewMove(from, to, piece, pos.PieceAt(to), FlagNormal))
		}
	}
}

// generateSliderMoves generates bishop/rook/queen moves via the magic
// lookup at the current occupancy, AND NOT own occupancy.
func generateSliderMoves(pos *position.Position, ml *moveslice.MoveList) {
	us := pos.NextPlayer()
	ownOcc := pos.GetColorBitboard(us)
	occ := pos.Occupied()
	for _, pt := range []PieceType{Bishop, Rook, Queen} {
		piece := MakePiece(us, pt)
		pieces := pos.GetBitboard(piece)
		for pieces != BbZero {
			from := pieces.PopLsb()
			targets := GetAttacksBb(pt, from, occ) &^ ownOcc
			for targets != BbZero {
				to := targets.PopLsb()
				ml.Add(NewMove(from, to, piece, pos.PieceAt(to), FlagNormal))
			}
		}
	}
}
