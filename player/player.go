package player

import (
	"stratego/game"
)

// Random picks uniformly among all legal moves. It has no preference for
// captures or safety.
type Random struct {
	rng game.Rand
}

// NewRandom creates a random player drawing from rng.
func NewRandom(rng game.Rand) *Random {
	return &Random{rng: rng}
}

// ChooseMove returns a legal move for side, or false when side has none.
func (p *Random) ChooseMove(b *game.Board, side game.Side) (game.Move, bool) {
	moves := game.LegalMoves(b, side)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[p.rng.Intn(len(moves))], true
}
