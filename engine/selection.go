package engine

import (
	"stratego/game"
)

// Select marks the human side's piece on c as the one about to move,
// replacing any earlier selection.
func (e *Engine) Select(c game.Coord) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.state == GameOver:
		return illegal(ErrGameOver, "select %s", c)
	case e.side != e.human:
		return illegal(ErrNotYourTurn, "select %s", c)
	case e.board.Owner(c) != e.human || !e.board.IsMovablePiece(c):
		return illegal(ErrNoSelection, "%s holds no movable piece of side %s", c, e.human)
	}
	e.selected = &c
	return nil
}

func (e *Engine) Deselect() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = nil
}

func (e *Engine) Selected() (game.Coord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected == nil {
		return game.Coord{}, false
	}
	return *e.selected, true
}

// SelectedTargets lists where the selected piece may legally go.
func (e *Engine) SelectedTargets() []game.Coord {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected == nil {
		return nil
	}
	return game.Targets(e.board, *e.selected, e.human)
}

// MoveSelected submits a move of the selected piece to to. The selection
// survives a rejected move.
func (e *Engine) MoveSelected(to game.Coord) (game.Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected == nil {
		return game.Outcome{}, illegal(ErrNoSelection, "move to %s", to)
	}
	return e.submit(game.Move{From: *e.selected, To: to})
}
