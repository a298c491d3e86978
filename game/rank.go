package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Rank is either a numeric rank 1..10 or one of the immovable special
// ranks Bomb and Flag. Numeric comparisons are only meaningful between
// numeric ranks.
type Rank int8

const (
	NoRank Rank = iota
	Spy
	Scout
	Miner
	Sergeant
	Lieutenant
	Captain
	Major
	Colonel
	General
	Marshal
	Bomb
	Flag
)

// IsNumeric reports whether r is one of the ranks 1..10.
func (r Rank) IsNumeric() bool {
	return r >= Spy && r <= Marshal
}

// Valid reports whether r is a rank a piece can carry.
func (r Rank) Valid() bool {
	return r.IsNumeric() || r == Bomb || r == Flag
}

func (r Rank) String() string {
	switch {
	case r == Bomb:
		return "B"
	case r == Flag:
		return "F"
	case r.IsNumeric():
		return strconv.Itoa(int(r))
	default:
		return "?"
	}
}

// ParseRank accepts "B"/"bomb", "F"/"flag" and the numbers 1..10.
func ParseRank(s string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "bomb":
		return Bomb, nil
	case "f", "flag":
		return Flag, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Rank(n).IsNumeric() {
		return NoRank, errors.Errorf("unknown rank %q", s)
	}
	return Rank(n), nil
}

// Army is a multiset of ranks: the number of pieces held per rank.
type Army [Flag + 1]int

// StandardArmy returns the fixed 40-piece set every side starts with.
func StandardArmy() Army {
	return Army{
		Spy:        1,
		Scout:      8,
		Miner:      5,
		Sergeant:   4,
		Lieutenant: 4,
		Captain:    4,
		Major:      3,
		Colonel:    2,
		General:    1,
		Marshal:    1,
		Bomb:       6,
		Flag:       1,
	}
}

// Total is the number of pieces in the army.
func (a Army) Total() int {
	total := 0
	for _, n := range a {
		total += n
	}
	return total
}

// draw removes the k-th remaining piece (0-based, in rank order) and returns its rank.
func (a *Army) draw(k int) Rank {
	for r := range a {
		if k < a[r] {
			a[r]--
			return Rank(r)
		}
		k -= a[r]
	}
	panic("draw index exceeds army size")
}
