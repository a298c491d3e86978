package engine

import (
	"stratego/game"

	"github.com/rs/zerolog/log"
)

// SubmitMove moves the piece on from to to for the side whose turn it is.
// A rejected move returns an error wrapping game.ErrIllegalMove and leaves
// the game exactly as it was.
func (e *Engine) SubmitMove(from, to game.Coord) (game.Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submit(game.Move{From: from, To: to})
}

// RequestOpponentMove lets the opponent policy move for the computer side.
func (e *Engine) RequestOpponentMove() (game.Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != GameOver && e.side == e.human {
		return game.Outcome{}, illegal(ErrNotYourTurn, "opponent move requested on side %s's turn", e.side)
	}
	return e.play(e.opponent)
}

// Play lets p choose and make the move for whichever side is to move. If p
// finds no move the side to move loses and ErrNoMove is returned.
func (e *Engine) Play(p Policy) (game.Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.play(p)
}

func (e *Engine) play(p Policy) (game.Outcome, error) {
	if e.state == GameOver {
		return game.Outcome{}, illegal(ErrGameOver, "game %s", e.id)
	}
	snapshot := *e.board
	move, ok := p.ChooseMove(&snapshot, e.side)
	if !ok {
		e.finish(Result{Status: Lost, Side: e.side})
		return game.Outcome{}, ErrNoMove
	}
	return e.submit(move)
}

func (e *Engine) submit(move game.Move) (game.Outcome, error) {
	if e.state == GameOver {
		return game.Outcome{}, illegal(ErrGameOver, "game %s", e.id)
	}
	side := e.side
	if err := game.CheckMove(e.board, move.From, move.To, side); err != nil {
		return game.Outcome{}, err
	}

	outcome := game.Resolve(e.board, move.From, move.To, side)
	if err := e.board.Apply(outcome); err != nil {
		// CheckMove passed, so the board and the outcome cannot disagree.
		panic(err)
	}
	e.turns++
	e.last = &outcome
	e.selected = nil
	log.Debug().
		Str("game", e.id.String()).
		Int("turn", e.turns).
		Stringer("side", side).
		Stringer("move", move).
		Stringer("outcome", outcome.Kind).
		Msg("move applied")

	if outcome.Kind == game.FlagCaptured {
		e.finish(Result{Status: Won, Side: outcome.Winner})
		return outcome, nil
	}

	next := side.Opponent()
	e.side = next
	if !game.HasLegalMove(e.board, next) {
		e.finish(Result{Status: Lost, Side: next})
		return outcome, nil
	}
	e.state = awaiting(next)
	return outcome, nil
}
