package game

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// HomeRows returns the home region of side as [start, end) rows. Side A
// sets up on the bottom four rows, side B on the top four.
func HomeRows(side Side) (start, end int) {
	switch side {
	case SideA:
		return Rows - HomeDepth, Rows
	case SideB:
		return 0, HomeDepth
	default:
		return 0, 0
	}
}

// HomeCells lists side's home region in row-major order.
func HomeCells(side Side) []Coord {
	start, end := HomeRows(side)
	cells := make([]Coord, 0, (end-start)*Cols)
	for r := start; r < end; r++ {
		for c := 0; c < Cols; c++ {
			cells = append(cells, Coord{r, c})
		}
	}
	return cells
}

// frontRow maps a layout row index (0 = front line) onto a board row.
func frontRow(side Side, i int) int {
	if side == SideB {
		return HomeDepth - 1 - i
	}
	return Rows - HomeDepth + i
}

// validateRegion checks that side's home region can receive army.
func validateRegion(b *Board, side Side, army Army) error {
	var result *multierror.Error
	if !side.Playing() {
		return errors.Wrapf(ErrInvalidSetup, "no home region for side %s", side)
	}
	cells := HomeCells(side)
	if len(cells) != army.Total() {
		result = multierror.Append(result, errors.Errorf("home region has %d cells, army has %d pieces", len(cells), army.Total()))
	}
	for r, n := range army {
		if n < 0 {
			result = multierror.Append(result, errors.Errorf("negative count %d for rank %s", n, Rank(r)))
		} else if n > 0 && !Rank(r).Valid() {
			result = multierror.Append(result, errors.Errorf("army holds %d pieces of invalid rank %d", n, r))
		}
	}
	for _, c := range cells {
		switch {
		case IsLake(c):
			result = multierror.Append(result, errors.Wrapf(ErrLakeCell, "home cell %s", c))
		case b.Occupant(c).Kind != Empty:
			result = multierror.Append(result, errors.Errorf("home cell %s is already occupied", c))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return errors.Wrapf(ErrInvalidSetup, "side %s: %v", side, err)
	}
	return nil
}

// RandomizeSetup fills side's home region with a uniformly random
// arrangement of the standard army.
func RandomizeSetup(b *Board, side Side, rng Rand) error {
	return RandomizeArmy(b, side, StandardArmy(), rng)
}

// RandomizeArmy draws pieces from army without replacement, one per home
// cell, so the region receives a random permutation of the multiset. The
// board is left untouched when validation fails.
func RandomizeArmy(b *Board, side Side, army Army, rng Rand) error {
	if err := validateRegion(b, side, army); err != nil {
		return err
	}

	remaining := army
	cells := HomeCells(side)
	ranks := make([]Rank, len(cells))
	for i := range cells {
		ranks[i] = remaining.draw(rng.Intn(remaining.Total()))
	}
	if remaining.Total() != 0 {
		return errors.Wrapf(ErrInvalidSetup, "side %s: %d pieces left over", side, remaining.Total())
	}

	for i, c := range cells {
		if err := b.Set(c, PieceOf(ranks[i]), side); err != nil {
			return err
		}
	}
	return nil
}

// PlaceSetup places a fixed layout of HomeDepth rows by Cols ranks, given
// front line first. The layout must be exactly the standard army.
func PlaceSetup(b *Board, side Side, layout [][]Rank) error {
	army := StandardArmy()
	if err := validateRegion(b, side, army); err != nil {
		return err
	}

	var result *multierror.Error
	if len(layout) != HomeDepth {
		result = multierror.Append(result, errors.Errorf("layout has %d rows, want %d", len(layout), HomeDepth))
	}
	var got Army
	for i, row := range layout {
		if len(row) != Cols {
			result = multierror.Append(result, errors.Errorf("layout row %d has %d ranks, want %d", i, len(row), Cols))
		}
		for _, r := range row {
			if !r.Valid() {
				result = multierror.Append(result, errors.Errorf("layout row %d: invalid rank %d", i, r))
				continue
			}
			got[r]++
		}
	}
	if got != army {
		for r := range army {
			if got[r] != army[r] {
				result = multierror.Append(result, errors.Errorf("rank %s: layout has %d, army has %d", Rank(r), got[r], army[r]))
			}
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return errors.Wrapf(ErrInvalidSetup, "side %s: %v", side, err)
	}

	for i, row := range layout {
		for c, r := range row {
			if err := b.Set(Coord{frontRow(side, i), c}, PieceOf(r), side); err != nil {
				return err
			}
		}
	}
	return nil
}
