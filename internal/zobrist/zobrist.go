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

// Package zobrist holds the process-wide random keys used to compute a
// Position's incremental 64-bit hash: one key per (piece, square), one
// per castling-rights combination, one per en-passant file, and one for
// side-to-move. They are generated once at process start from a fixed
// seed, so a build is reproducible and every Position shares the same
// table.
package zobrist

import (
	. "github.com/gopherfish/engine/internal/types"
)

// Key is a 64-bit Zobrist signature.
type Key uint64

var (
	// Pieces holds keys[piece][square], including the unused NoPiece row.
	Pieces [PieceLength][SqLength]Key
	// Castling holds one key per distinct CastlingRights bit combination.
	Castling [CastlingAny + 1]Key
	// EpFile holds one key per file a pawn just double-pushed through.
	EpFile [8]Key
	// NextPlayer is XORed in whenever it is Black's move.
	NextPlayer Key
)

var initialized = false

// Init computes all Zobrist keys exactly once. Safe to call repeatedly.
func Init() {
	if initialized {
		return
	}
	rng := newRandom(1070372)
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := SqA1; sq < SqNone; sq++ {
			Pieces[pc][sq] = Key(rng.rand64())
		}
	}
	for cr := CastlingNone; cr <= CastlingAny; cr++ {
		Castling[cr] = Key(rng.rand64())
	}
	for f := FileA; f <= FileH; f++ {
		EpFile[f] = Key(rng.rand64())
	}
	NextPlayer = Key(rng.rand64())
	initialized = true
}

// random is the xorshift64star PRNG, used only to seed the Zobrist table
// deterministically at startup - not on any search hot path.
type random struct {
	s uint64
}

func newRandom(seed uint64) *random {
	if seed == 0 {
		panic("zobrist: PRNG seed must not be zero")
	}
	return &random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
