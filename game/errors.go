package game

import "github.com/pkg/errors"

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidSetup = errors.New("invalid setup")
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrLakeCell     = errors.New("lake cell")
	ErrOwnership    = errors.New("owner does not match occupant")
)
