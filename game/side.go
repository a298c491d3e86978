package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Side owns pieces. Neutral marks empty and lake cells.
type Side int8

const (
	Neutral Side = iota
	SideA
	SideB
)

// Opponent returns the other playing side; Neutral has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return Neutral
	}
}

// Playing reports whether s is SideA or SideB.
func (s Side) Playing() bool {
	return s == SideA || s == SideB
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "neutral"
	}
}

func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "sidea", "side-a":
		return SideA, nil
	case "b", "sideb", "side-b":
		return SideB, nil
	}
	return Neutral, errors.Errorf("unknown side %q", s)
}
