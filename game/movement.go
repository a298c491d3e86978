package game

import (
	"iter"

	"github.com/pkg/errors"
)

type violation int8

const (
	legal violation = iota
	sourceOffBoard
	sourceNotOwned
	sourceImmovable
	targetOffBoard
	targetLake
	targetOwnPiece
	targetSameCell
	notAdjacent
	notInLine
	pathObstructed
)

var violationReasons = map[violation]string{
	sourceOffBoard:  "source is off the board",
	sourceNotOwned:  "source is not owned by the moving side",
	sourceImmovable: "piece at source cannot move",
	targetOffBoard:  "target is off the board",
	targetLake:      "target is a lake",
	targetOwnPiece:  "target holds the moving side's own piece",
	targetSameCell:  "target is the source cell",
	notAdjacent:     "target is not orthogonally adjacent",
	notInLine:       "scout target is not on the same row or column",
	pathObstructed:  "scout path is obstructed",
}

// check classifies a move without allocating, so enumeration stays cheap.
func check(b *Board, from, to Coord, side Side) violation {
	switch {
	case !from.InBounds():
		return sourceOffBoard
	case !side.Playing() || b.Owner(from) != side:
		return sourceNotOwned
	case !b.IsMovablePiece(from):
		return sourceImmovable
	case !to.InBounds():
		return targetOffBoard
	case IsLake(to):
		return targetLake
	case from == to:
		return targetSameCell
	case b.Owner(to) == side:
		return targetOwnPiece
	}

	if b.Occupant(from).Rank == Scout {
		return checkSlide(b, from, to)
	}

	dr, dc := abs(to.Row-from.Row), abs(to.Col-from.Col)
	if dr+dc != 1 {
		return notAdjacent
	}
	return legal
}

// checkSlide walks the cells strictly between from and to; every one must be empty.
func checkSlide(b *Board, from, to Coord) violation {
	if from.Row != to.Row && from.Col != to.Col {
		return notInLine
	}
	step := Coord{Row: sign(to.Row - from.Row), Col: sign(to.Col - from.Col)}
	for c := (Coord{from.Row + step.Row, from.Col + step.Col}); c != to; c = (Coord{c.Row + step.Row, c.Col + step.Col}) {
		if b.Occupant(c).Kind != Empty {
			return pathObstructed
		}
	}
	return legal
}

// IsLegalMove reports whether side may move the piece on from to to.
func IsLegalMove(b *Board, from, to Coord, side Side) bool {
	return check(b, from, to, side) == legal
}

// CheckMove explains why a move is illegal. The error wraps ErrIllegalMove;
// a nil error means the move is legal.
func CheckMove(b *Board, from, to Coord, side Side) error {
	v := check(b, from, to, side)
	if v == legal {
		return nil
	}
	return errors.Wrapf(ErrIllegalMove, "%s %s->%s: %s", side, from, to, violationReasons[v])
}

// Moves yields every legal move of side: sources in row-major order, and
// for each source its targets in row-major order. The sequence can be ranged
// over any number of times.
func Moves(b *Board, side Side) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for fr := 0; fr < Rows; fr++ {
			for fc := 0; fc < Cols; fc++ {
				from := Coord{fr, fc}
				if b.Owner(from) != side || !b.IsMovablePiece(from) {
					continue
				}
				for tr := 0; tr < Rows; tr++ {
					for tc := 0; tc < Cols; tc++ {
						to := Coord{tr, tc}
						if IsLegalMove(b, from, to, side) && !yield(Move{From: from, To: to}) {
							return
						}
					}
				}
			}
		}
	}
}

// LegalMoves collects Moves into a slice.
func LegalMoves(b *Board, side Side) []Move {
	var moves []Move
	for m := range Moves(b, side) {
		moves = append(moves, m)
	}
	return moves
}

// HasLegalMove stops at the first legal move of side.
func HasLegalMove(b *Board, side Side) bool {
	for range Moves(b, side) {
		return true
	}
	return false
}

// Targets lists the legal destinations of the piece on from.
func Targets(b *Board, from Coord, side Side) []Coord {
	var targets []Coord
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			to := Coord{r, c}
			if IsLegalMove(b, from, to, side) {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
