package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds reports whether c lies on the 10x10 grid.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// lakes are the impassable cells in the middle of the board. Static for every game.
var lakes = []Coord{
	{4, 2}, {4, 3}, {5, 2}, {5, 3},
	{4, 6}, {4, 7}, {5, 6}, {5, 7},
}

// IsLake reports whether c is one of the fixed lake cells.
func IsLake(c Coord) bool {
	return slices.Contains(lakes, c)
}

type OccupantKind int8

const (
	Empty OccupantKind = iota
	Piece
	Lake
)

// Occupant is what stands on a cell: nothing, a ranked piece, or lake terrain.
type Occupant struct {
	Kind OccupantKind
	Rank Rank // NoRank unless Kind is Piece
}

var (
	EmptyCell = Occupant{Kind: Empty}
	LakeCell  = Occupant{Kind: Lake}
)

// PieceOf returns the occupant for a piece of rank r.
func PieceOf(r Rank) Occupant {
	return Occupant{Kind: Piece, Rank: r}
}

func (o Occupant) String() string {
	switch o.Kind {
	case Piece:
		return o.Rank.String()
	case Lake:
		return "~"
	default:
		return "."
	}
}

// Board is the 10x10 grid of occupants with its parallel ownership grid.
// Board is a value type: copying it yields an independent snapshot.
// All mutation goes through Set so the two grids never disagree.
type Board struct {
	cells  [Rows][Cols]Occupant
	owners [Rows][Cols]Side
}

// NewBoard returns an empty board with the lakes in place.
func NewBoard() *Board {
	b := &Board{}
	for _, c := range lakes {
		b.cells[c.Row][c.Col] = LakeCell
	}
	return b
}

func (b *Board) InBounds(c Coord) bool {
	return c.InBounds()
}

func (b *Board) IsLake(c Coord) bool {
	return IsLake(c)
}

// Occupant returns the occupant at c. Off-board coordinates read as empty.
func (b *Board) Occupant(c Coord) Occupant {
	if !c.InBounds() {
		return EmptyCell
	}
	return b.cells[c.Row][c.Col]
}

// Owner returns the side owning the piece at c, Neutral for empty, lake and off-board cells.
func (b *Board) Owner(c Coord) Side {
	if !c.InBounds() {
		return Neutral
	}
	return b.owners[c.Row][c.Col]
}

// IsMovablePiece reports whether c holds a numeric-rank piece. Bombs and flags never move.
func (b *Board) IsMovablePiece(c Coord) bool {
	o := b.Occupant(c)
	return o.Kind == Piece && o.Rank.IsNumeric()
}

// Set writes occupant and owner of c together. The owner must be Neutral
// exactly when the occupant is empty; lake cells cannot be written.
func (b *Board) Set(c Coord, o Occupant, owner Side) error {
	if !c.InBounds() {
		return errors.Wrapf(ErrOutOfBounds, "set %s", c)
	}
	if IsLake(c) || o.Kind == Lake {
		return errors.Wrapf(ErrLakeCell, "set %s to %s", c, o)
	}
	switch o.Kind {
	case Empty:
		if owner != Neutral {
			return errors.Wrapf(ErrOwnership, "empty cell %s owned by %s", c, owner)
		}
	case Piece:
		if !o.Rank.Valid() {
			return errors.Errorf("set %s: invalid rank %d", c, o.Rank)
		}
		if !owner.Playing() {
			return errors.Wrapf(ErrOwnership, "piece at %s owned by %s", c, owner)
		}
	default:
		return errors.Errorf("set %s: unknown occupant kind %d", c, o.Kind)
	}
	b.cells[c.Row][c.Col] = o
	b.owners[c.Row][c.Col] = owner
	return nil
}

// clear empties c. Only called on cells already known to be on the board and dry.
func (b *Board) clear(c Coord) {
	b.cells[c.Row][c.Col] = EmptyCell
	b.owners[c.Row][c.Col] = Neutral
}

// Army counts the pieces side still has on the board.
func (b *Board) Army(side Side) Army {
	var a Army
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.owners[r][c] == side && b.cells[r][c].Kind == Piece {
				a[b.cells[r][c].Rank]++
			}
		}
	}
	return a
}

// Hash fingerprints occupants and owners of every cell.
func (b *Board) Hash() BoardHash {
	hasher := fnv.New64a()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			o := b.cells[r][c]
			binary.Write(hasher, binary.LittleEndian, [3]int8{int8(o.Kind), int8(o.Rank), int8(b.owners[r][c])})
		}
	}
	return BoardHash(hasher.Sum64())
}
