package engine

import (
	"fmt"
	"sync"

	"stratego/game"
	"stratego/player"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not this side's turn")
	ErrNoMove      = errors.New("no legal move")
	ErrNoSelection = errors.New("no piece selected")
)

// illegal marks err as an IllegalMove while keeping it matchable on its own.
func illegal(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", game.ErrIllegalMove, errors.Wrapf(err, format, args...))
}

type State int8

const (
	AwaitingSideA State = iota
	AwaitingSideB
	GameOver
)

func awaiting(side game.Side) State {
	if side == game.SideB {
		return AwaitingSideB
	}
	return AwaitingSideA
}

func (s State) String() string {
	switch s {
	case AwaitingSideA:
		return "awaiting_a"
	case AwaitingSideB:
		return "awaiting_b"
	default:
		return "game_over"
	}
}

type Status int8

const (
	InProgress Status = iota
	Won
	Lost
)

// Result is Won(Side) after a flag capture, Lost(Side) when Side had no
// legal move on its turn, and InProgress otherwise.
type Result struct {
	Status Status
	Side   game.Side
}

// Winner returns the winning side, Neutral while the game is in progress.
func (r Result) Winner() game.Side {
	switch r.Status {
	case Won:
		return r.Side
	case Lost:
		return r.Side.Opponent()
	default:
		return game.Neutral
	}
}

func (r Result) String() string {
	switch r.Status {
	case Won:
		return fmt.Sprintf("won(%s)", r.Side)
	case Lost:
		return fmt.Sprintf("lost(%s)", r.Side)
	default:
		return "in_progress"
	}
}

// Policy chooses moves for a computer-controlled side.
type Policy interface {
	ChooseMove(b *game.Board, side game.Side) (game.Move, bool)
}

// Engine owns one game. Every mutation of the board goes through it, one
// move at a time.
type Engine struct {
	mu       sync.Mutex
	id       uuid.UUID
	board    *game.Board
	state    State
	side     game.Side // side to move, or the side that was to move when the game ended
	result   Result
	human    game.Side
	opponent Policy
	selected *game.Coord
	turns    int
	last     *game.Outcome
}

type Option func(e *Engine)

func WithStartingSide(side game.Side) Option {
	return func(e *Engine) {
		if side.Playing() {
			e.side = side
		}
	}
}

// WithHumanSide sets the side moved through SubmitMove and selection; the
// other side is driven by the opponent policy.
func WithHumanSide(side game.Side) Option {
	return func(e *Engine) {
		if side.Playing() {
			e.human = side
		}
	}
}

func WithOpponent(p Policy) Option {
	return func(e *Engine) {
		if p != nil {
			e.opponent = p
		}
	}
}

func WithID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.id = id
	}
}

// New starts a game on a copy of a board that is already set up. If the starting side
// has no legal move the game is over before it begins.
func New(b *game.Board, options ...Option) (*Engine, error) {
	if b == nil {
		return nil, errors.Wrap(game.ErrInvalidSetup, "nil board")
	}
	board := *b
	e := &Engine{ // Default values
		id:    uuid.New(),
		board: &board,
		side:  game.SideA,
		human: game.SideA,
	}
	for _, option := range options {
		option(e)
	}
	if e.opponent == nil {
		return nil, errors.New("engine needs an opponent policy")
	}

	e.state = awaiting(e.side)
	log.Info().Msgf("game %s: side %s is starting", e.id, e.side)
	if !game.HasLegalMove(e.board, e.side) {
		e.finish(Result{Status: Lost, Side: e.side})
	}
	return e, nil
}

// NewGame sets up both armies at random from rng and starts a game. Unless
// another opponent is given, the computer side plays uniformly at random
// from the same source.
func NewGame(rng game.Rand, options ...Option) (*Engine, error) {
	b := game.NewBoard()
	for _, side := range []game.Side{game.SideA, game.SideB} {
		if err := game.RandomizeSetup(b, side, rng); err != nil {
			return nil, err
		}
	}
	options = append([]Option{WithOpponent(player.NewRandom(rng))}, options...)
	return New(b, options...)
}

func (e *Engine) finish(result Result) {
	e.state = GameOver
	e.result = result
	e.selected = nil
	log.Info().Msgf("game %s over after %d moves: %s", e.id, e.turns, result)
}

func (e *Engine) ID() uuid.UUID {
	return e.id
}

func (e *Engine) HumanSide() game.Side {
	return e.human
}

// Board returns a snapshot of the board.
func (e *Engine) Board() game.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.board
}

func (e *Engine) Occupant(c game.Coord) game.Occupant {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Occupant(c)
}

func (e *Engine) Owner(c game.Coord) game.Side {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Owner(c)
}

func (e *Engine) IsLake(c game.Coord) bool {
	return game.IsLake(c)
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// CurrentSide is the side to move. After the game ends it stays on the
// side that was to move last.
func (e *Engine) CurrentSide() game.Side {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.side
}

func (e *Engine) Result() Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

func (e *Engine) Turns() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.turns
}

// LastOutcome returns the outcome of the most recent move, if any.
func (e *Engine) LastOutcome() (game.Outcome, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.last == nil {
		return game.Outcome{}, false
	}
	return *e.last, true
}

func (e *Engine) LegalMoves(side game.Side) []game.Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	return game.LegalMoves(e.board, side)
}
