package game

import "fmt"

const (
	Rows = 10
	Cols = 10

	// PiecesPerSide is the size of each side's army and of each home region.
	PiecesPerSide = 40
	// HomeDepth is the number of rows in a side's home region.
	HomeDepth = PiecesPerSide / Cols
)

// Move is a request to move the piece standing on From to To.
type Move struct {
	From Coord
	To   Coord
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

type BoardHash uint64

// Rand is the random source threaded through setup and move selection.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Rand interface {
	Intn(n int) int
}
