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

// Package position holds the mutable board state a search walks: bitboards,
// mailbox, game info and a running Zobrist hash, plus the bounded make/undo
// stacks that let search descend and backtrack without reallocating.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gopherfish/engine/internal/logging"
	. "github.com/gopherfish/engine/internal/types"
	"github.com/gopherfish/engine/internal/zobrist"
)

var log = logging.GetLog()

func init() {
	zobrist.Init()
}

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxStackSize bounds the make/undo stacks (invariant 7: never exceed 256).
const MaxStackSize = 256

// Position is the board state the search mutates in place via make_move
// and undo_move, keeping piece_bitboards, color_bitboards, occupancy and
// mailbox coherent and the Zobrist hash incremental.
type Position struct {
	pieceBb [PieceLength]Bitboard
	colorBb [ColorLength]Bitboard
	occupied Bitboard

	mailbox [SqLength]Piece

	sideToMove  Color
	castling    CastlingRights
	epSquare    Square
	rule50Clock int
	fullMoveNo  int

	hash zobrist.Key

	moveStack [MaxStackSize]Move
	undoStack [MaxStackSize]PackedGameInfo
	stackSize int
}

// New builds a Position from a FEN string, or the standard starting
// position if fen is empty.
func New(fen ...string) *Position {
	p := &Position{}
	f := StartFen
	if len(fen) > 0 && fen[0] != "" {
		f = fen[0]
	}
	if err := p.ParseFen(f); err != nil {
		log.Errorf("invalid FEN %q (%v), falling back to start position", f, err)
		_ = p.ParseFen(StartFen)
	}
	return p
}

// PieceAt reads the mailbox at sq.
func (p *Position) PieceAt(sq Square) Piece {
	return p.mailbox[sq]
}

// GetBitboard returns the bitboard of a single (colored) piece kind.
func (p *Position) GetBitboard(pc Piece) Bitboard {
	return p.pieceBb[pc]
}

// GetPieceTypeBitboard returns the combined bitboard of both colors for pt.
func (p *Position) GetPieceTypeBitboard(pt PieceType) Bitboard {
	return p.pieceBb[MakePiece(White, pt)] | p.pieceBb[MakePiece(Black, pt)]
}

// GetColorBitboard returns all squares occupied by c.
func (p *Position) GetColorBitboard(c Color) Bitboard {
	return p.colorBb[c]
}

// Occupied returns all occupied squares.
func (p *Position) Occupied() Bitboard {
	return p.occupied
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color {
	return p.sideToMove
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castling
}

// EnPassantSquare returns the current en-passant target, SqNone if none.
func (p *Position) EnPassantSquare() Square {
	return p.epSquare
}

// HalfMoveClock returns the 50-move-rule half-move counter.
func (p *Position) HalfMoveClock() int {
	return p.rule50Clock
}

// Hash returns the running Zobrist signature.
func (p *Position) Hash() zobrist.Key {
	return p.hash
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieceBb[MakePiece(c, King)].Lsb()
}

// LastMove returns the most recently played move, MoveNone if the stack is
// empty.
func (p *Position) LastMove() Move {
	if p.stackSize == 0 {
		return MoveNone
	}
	return p.moveStack[p.stackSize-1]
}

// setSquare places piece pc on sq, updating mailbox, both bitboards,
// occupancy and the Zobrist hash. sq must currently be empty.
func (p *Position) setSquare(sq Square, pc Piece) {
	p.mailbox[sq] = pc
	p.pieceBb[pc].PushSquare(sq)
	p.colorBb[pc.ColorOf()].PushSquare(sq)
	p.occupied.PushSquare(sq)
	p.hash ^= zobrist.Pieces[pc][sq]
}

// clearSquare empties sq, which must currently hold pc, updating mailbox,
// both bitboards, occupancy and the Zobrist hash.
func (p *Position) clearSquare(sq Square) {
	pc := p.mailbox[sq]
	p.mailbox[sq] = NoPiece
	p.pieceBb[pc].PopSquare(sq)
	p.colorBb[pc.ColorOf()].PopSquare(sq)
	p.occupied.PopSquare(sq)
	p.hash ^= zobrist.Pieces[pc][sq]
}

// movePiece relocates the piece on from to to (to must be empty).
func (p *Position) movePiece(from, to Square) {
	pc := p.mailbox[from]
	p.clearSquare(from)
	p.setSquare(to, pc)
}

// ParseFen loads a position from Forsyth-Edwards notation, rebuilding all
// bitboards, the mailbox, game info and the Zobrist hash from scratch, and
// clearing the move/undo stacks. Missing trailing fields (castling,
// en-passant, clocks) default to "no rights" / "none" / a half-move clock
// of zero and a full-move number of 1.
func (p *Position) ParseFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 1 {
		return fmt.Errorf("empty FEN")
	}
	for len(fields) < 6 {
		switch len(fields) {
		case 1:
			fields = append(fields, "w")
		case 2:
			fields = append(fields, "-")
		case 3:
			fields = append(fields, "-")
		case 4:
			fields = append(fields, "0")
		case 5:
			fields = append(fields, "1")
		}
	}

	*p = Position{}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("FEN board must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			pc := pieceFromFenChar(ch)
			if pc == NoPiece {
				return fmt.Errorf("invalid FEN piece char %q", ch)
			}
			if !f.IsValid() {
				return fmt.Errorf("FEN rank %d overflows files", i)
			}
			p.setSquare(SquareOf(f, r), pc)
			f++
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
		p.hash ^= zobrist.NextPlayer
	default:
		return fmt.Errorf("invalid side to move %q", fields[1])
	}

	for _, ch := range fields[2] {
		switch ch {
		case 'K':
			p.castling.Add(CastlingWhiteOO)
		case 'Q':
			p.castling.Add(CastlingWhiteOOO)
		case 'k':
			p.castling.Add(CastlingBlackOO)
		case 'q':
			p.castling.Add(CastlingBlackOOO)
		case '-':
		default:
			return fmt.Errorf("invalid castling field %q", fields[2])
		}
	}
	p.hash ^= zobrist.Castling[p.castling]

	p.epSquare = SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return fmt.Errorf("invalid en-passant square %q", fields[3])
		}
		p.epSquare = sq
		p.hash ^= zobrist.EpFile[sq.FileOf()]
	}

	clock, err := strconv.Atoi(fields[4])
	if err != nil || clock < 0 {
		clock = 0
	}
	p.rule50Clock = clock

	fullMoveNo, err := strconv.Atoi(fields[5])
	if err != nil || fullMoveNo < 1 {
		fullMoveNo = 1
	}
	p.fullMoveNo = fullMoveNo

	p.stackSize = 0
	return nil
}

func pieceFromFenChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// IsSquareAttacked reports whether any piece of byColor attacks sq: for
// each piece type, the attacks *from* sq as that piece type are
// intersected with byColor's pieces of the matching type.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	if GetPawnAttacks(byColor.Flip(), sq)&p.pieceBb[MakePiece(byColor, Pawn)] != BbZero {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.pieceBb[MakePiece(byColor, Knight)] != BbZero {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.pieceBb[MakePiece(byColor, King)] != BbZero {
		return true
	}
	bishopsQueens := p.pieceBb[MakePiece(byColor, Bishop)] | p.pieceBb[MakePiece(byColor, Queen)]
	if GetAttacksBb(Bishop, sq, p.occupied)&bishopsQueens != BbZero {
		return true
	}
	rooksQueens := p.pieceBb[MakePiece(byColor, Rook)] | p.pieceBb[MakePiece(byColor, Queen)]
	if GetAttacksBb(Rook, sq, p.occupied)&rooksQueens != BbZero {
		return true
	}
	return false
}

// IsInCheck reports whether c's king is currently attacked.
func (p *Position) IsInCheck(c Color) bool {
	return p.IsSquareAttacked(p.KingSquare(c), c.Flip())
}

// CanCastleKs reports whether c may castle kingside right now: the right
// is held, the squares strictly between king and rook are empty, and the
// king's transit squares (its own square included) are not attacked.
func (p *Position) CanCastleKs(c Color) bool {
	var right CastlingRights
	var kingSq, rookSq Square
	var transit [3]Square
	if c == White {
		right, kingSq, rookSq = CastlingWhiteOO, SqE1, SqH1
		transit = [3]Square{SqE1, SqF1, SqG1}
	} else {
		right, kingSq, rookSq = CastlingBlackOO, SqE8, SqH8
		transit = [3]Square{SqE8, SqF8, SqG8}
	}
	return p.canCastle(c, right, kingSq, rookSq, transit)
}

// CanCastleQs reports whether c may castle queenside right now, with the
// same empty-squares and not-attacked-in-transit conditions as CanCastleKs.
func (p *Position) CanCastleQs(c Color) bool {
	var right CastlingRights
	var kingSq, rookSq Square
	var transit [3]Square
	if c == White {
		right, kingSq, rookSq = CastlingWhiteOOO, SqE1, SqA1
		transit = [3]Square{SqE1, SqD1, SqC1}
	} else {
		right, kingSq, rookSq = CastlingBlackOOO, SqE8, SqA8
		transit = [3]Square{SqE8, SqD8, SqC8}
	}
	return p.canCastle(c, right, kingSq, rookSq, transit)
}

func (p *Position) canCastle(c Color, right CastlingRights, kingSq, rookSq Square, transit [3]Square) bool {
	if !p.castling.Has(right) {
		return false
	}
	if Intermediate(kingSq, rookSq)&p.occupied != BbZero {
		return false
	}
	opp := c.Flip()
	for _, sq := range transit {
		if p.IsSquareAttacked(sq, opp) {
			return false
		}
	}
	return true
}

// MakeMove applies m in place, pushing the pre-move state so UndoMove can
// restore it. See spec step list in package doc of the move generator for
// the pseudo-legality contract this relies on.
func (p *Position) MakeMove(m Move) {
	p.undoStack[p.stackSize] = PackGameInfo(p.castling, p.epSquare, p.rule50Clock)
	p.moveStack[p.stackSize] = m
	p.stackSize++

	from, to := m.From(), m.To()
	moved := m.Moved()
	us := p.sideToMove

	if p.epSquare != SqNone {
		p.hash ^= zobrist.EpFile[p.epSquare.FileOf()]
	}
	p.hash ^= zobrist.Castling[p.castling]

	switch m.Flag() {
	case FlagEnPassant:
		capSq := SquareOf(to.FileOf(), from.RankOf())
		p.clearSquare(capSq)
		p.movePiece(from, to)
	case FlagCastling:
		p.movePiece(from, to)
		rookFrom, rookTo := castleRookSquares(to)
		p.movePiece(rookFrom, rookTo)
	default:
		if m.IsCapture() {
			p.clearSquare(to)
		}
		p.movePiece(from, to)
		if m.IsPromotion() {
			p.clearSquare(to)
			p.setSquare(to, MakePiece(us, m.Flag().PromotionType()))
		}
	}

	p.castling.Remove(GetCastlingRights(from) | GetCastlingRights(to))
	p.hash ^= zobrist.Castling[p.castling]

	if m.Flag() == FlagDoublePush {
		p.epSquare = SquareOf(from.FileOf(), (from.RankOf()+to.RankOf())/2)
		p.hash ^= zobrist.EpFile[p.epSquare.FileOf()]
	} else {
		p.epSquare = SqNone
	}

	if moved.TypeOf() == Pawn || m.IsCapture() {
		p.rule50Clock = 0
	} else {
		p.rule50Clock++
	}

	if p.sideToMove == Black {
		p.fullMoveNo++
	}
	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobrist.NextPlayer
}

// UndoMove reverses the most recent MakeMove, restoring the position to
// exactly the state before it (bit-for-bit, including the hash).
func (p *Position) UndoMove() {
	p.stackSize--
	m := p.moveStack[p.stackSize]
	saved := p.undoStack[p.stackSize]

	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobrist.NextPlayer

	if p.sideToMove == Black {
		p.fullMoveNo--
	}

	if p.epSquare != SqNone {
		p.hash ^= zobrist.EpFile[p.epSquare.FileOf()]
	}
	p.hash ^= zobrist.Castling[p.castling]

	// NullMove() pushes MoveNone as a marker that no piece moved; its flag
	// bits happen to decode as a (meaningless) promotion flag, so it must
	// be excluded from the piece-restoring switch below rather than
	// falling into the default case.
	if m != MoveNone {
		from, to := m.From(), m.To()
		us := p.sideToMove

		switch m.Flag() {
		case FlagEnPassant:
			p.movePiece(to, from)
			capSq := SquareOf(to.FileOf(), from.RankOf())
			p.setSquare(capSq, MakePiece(us.Flip(), Pawn))
		case FlagCastling:
			rookFrom, rookTo := castleRookSquares(to)
			p.movePiece(rookTo, rookFrom)
			p.movePiece(to, from)
		default:
			if m.IsPromotion() {
				p.clearSquare(to)
				p.setSquare(from, m.Moved())
			} else {
				p.movePiece(to, from)
			}
			if m.IsCapture() {
				p.setSquare(to, m.Captured())
			}
		}
	}

	p.castling = saved.CastlingRights()
	p.hash ^= zobrist.Castling[p.castling]

	p.epSquare = saved.EnPassantSquare()
	if p.epSquare != SqNone {
		p.hash ^= zobrist.EpFile[p.epSquare.FileOf()]
	}

	p.rule50Clock = saved.HalfMoveClock()
}

// NullMove flips the side to move and clears the en-passant square,
// pushing a matching stack entry so UndoMove reverses it symmetrically -
// used by the search's null-move pruning.
func (p *Position) NullMove() {
	p.undoStack[p.stackSize] = PackGameInfo(p.castling, p.epSquare, p.rule50Clock)
	p.moveStack[p.stackSize] = MoveNone
	p.stackSize++

	if p.epSquare != SqNone {
		p.hash ^= zobrist.EpFile[p.epSquare.FileOf()]
	}
	p.epSquare = SqNone

	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobrist.NextPlayer
}

// castleRookSquares returns the rook's from/to squares for a castling move
// whose king lands on kingTo.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("castleRookSquares: %s is not a castling king destination", kingTo))
	}
}

// FenString renders the current position as a standard 6-field FEN, the
// inverse of ParseFen - used to log/replay the position a UCI "position"
// command has built after applying its move list.
func (p *Position) FenString() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.mailbox[SquareOf(f, r)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteString("/")
	}

	b.WriteString(" ")
	if p.sideToMove == White {
		b.WriteString("w")
	} else {
		b.WriteString("b")
	}

	b.WriteString(" ")
	b.WriteString(p.castling.String())

	b.WriteString(" ")
	b.WriteString(p.epSquare.String())

	b.WriteString(fmt.Sprintf(" %d %d", p.rule50Clock, p.fullMoveNo))
	return b.String()
}

func (p *Position) String() string {
	var b strings.Builder
	b.WriteString(p.occupied.StringBoard())
	b.WriteString(fmt.Sprintf("side=%s castling=%s ep=%s clock=%d\n",
		p.sideToMove, p.castling, p.epSquare, p.rule50Clock))
	return b.String()
}
