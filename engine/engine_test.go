package engine

import (
	"testing"

	"stratego/experiments/metrics"
	"stratego/game"
	"stratego/player"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func place(t *testing.T, b *game.Board, row, col int, r game.Rank, side game.Side) {
	t.Helper()
	require.NoError(t, b.Set(game.Coord{Row: row, Col: col}, game.PieceOf(r), side))
}

func at(row, col int) game.Coord {
	return game.Coord{Row: row, Col: col}
}

func newEngine(t *testing.T, b *game.Board, options ...Option) *Engine {
	t.Helper()
	options = append([]Option{WithOpponent(player.NewRandom(newRand(1)))}, options...)
	e, err := New(b, options...)
	require.NoError(t, err)
	return e
}

type noMoves struct{}

func (noMoves) ChooseMove(*game.Board, game.Side) (game.Move, bool) {
	return game.Move{}, false
}

func TestNewGame(t *testing.T) {
	e, err := NewGame(newRand(11))
	require.NoError(t, err)

	b := e.Board()
	require.Equal(t, game.StandardArmy(), b.Army(game.SideA))
	require.Equal(t, game.StandardArmy(), b.Army(game.SideB))
	require.Equal(t, AwaitingSideA, e.State())
	require.Equal(t, game.SideA, e.CurrentSide())
	require.Equal(t, Result{Status: InProgress}, e.Result())
	require.True(t, e.IsLake(at(4, 2)))
	require.Equal(t, game.LakeCell, e.Occupant(at(4, 2)))
	require.Equal(t, game.Neutral, e.Owner(at(4, 4)))
}

func TestNewCopiesBoard(t *testing.T) {
	b := game.NewBoard()
	place(t, b, 6, 0, game.Sergeant, game.SideA)
	place(t, b, 3, 0, game.Sergeant, game.SideB)
	e := newEngine(t, b)

	place(t, b, 6, 1, game.Marshal, game.SideA)

	require.Equal(t, game.EmptyCell, e.Occupant(at(6, 1)))
}

func TestSubmitMove(t *testing.T) {
	t.Run("out-of-turn move leaves the game unchanged", func(t *testing.T) {
		e, err := NewGame(newRand(3))
		require.NoError(t, err)
		before := e.Board()
		opponentMove := e.LegalMoves(game.SideB)[0]

		_, err = e.SubmitMove(opponentMove.From, opponentMove.To)

		require.ErrorIs(t, err, game.ErrIllegalMove)
		after := e.Board()
		require.Equal(t, before, after)
		require.Equal(t, before.Hash(), after.Hash())
		require.Equal(t, AwaitingSideA, e.State())
		require.Equal(t, 0, e.Turns())
	})

	t.Run("illegal geometry is rejected", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, 6, 5, game.Captain, game.SideA)
		place(t, b, 3, 5, game.Captain, game.SideB)
		e := newEngine(t, b)
		before := e.Board()

		_, err := e.SubmitMove(at(6, 5), at(4, 5))
		require.ErrorIs(t, err, game.ErrIllegalMove)
		_, err = e.SubmitMove(at(6, 5), at(6, 5))
		require.ErrorIs(t, err, game.ErrIllegalMove)
		_, err = e.SubmitMove(at(6, 5), at(6, 10))
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, before, e.Board())
	})

	t.Run("legal move flips the side to move", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, 6, 5, game.Captain, game.SideA)
		place(t, b, 3, 5, game.Captain, game.SideB)
		e := newEngine(t, b)

		out, err := e.SubmitMove(at(6, 5), at(5, 5))

		require.NoError(t, err)
		require.Equal(t, game.Moved, out.Kind)
		require.Equal(t, AwaitingSideB, e.State())
		require.Equal(t, game.SideB, e.CurrentSide())
		require.Equal(t, 1, e.Turns())
		last, ok := e.LastOutcome()
		require.True(t, ok)
		require.Equal(t, out, last)
	})

	t.Run("flag capture ends the game at once", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, 5, 0, game.Scout, game.SideA)
		place(t, b, 4, 0, game.Flag, game.SideB)
		place(t, b, 0, 9, game.Marshal, game.SideB)
		place(t, b, 0, 8, game.General, game.SideB)
		e := newEngine(t, b)

		out, err := e.SubmitMove(at(5, 0), at(4, 0))

		require.NoError(t, err)
		require.Equal(t, game.FlagCaptured, out.Kind)
		require.Equal(t, GameOver, e.State())
		require.Equal(t, Result{Status: Won, Side: game.SideA}, e.Result())
		require.Equal(t, game.SideA, e.Result().Winner())

		_, err = e.SubmitMove(at(0, 9), at(1, 9))
		require.ErrorIs(t, err, ErrGameOver)
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("opponent without moves loses", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, 6, 5, game.Captain, game.SideA)
		place(t, b, 0, 0, game.Flag, game.SideB)
		place(t, b, 0, 1, game.Bomb, game.SideB)
		e := newEngine(t, b)

		_, err := e.SubmitMove(at(6, 5), at(5, 5))

		require.NoError(t, err)
		require.Equal(t, GameOver, e.State())
		require.Equal(t, Result{Status: Lost, Side: game.SideB}, e.Result())
		require.Equal(t, game.SideA, e.Result().Winner())
	})

	t.Run("last movable piece destroyed by a bomb loses", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, 6, 5, game.Captain, game.SideA)
		place(t, b, 9, 9, game.Flag, game.SideA)
		place(t, b, 5, 5, game.Bomb, game.SideB)
		place(t, b, 0, 0, game.Sergeant, game.SideB)
		e := newEngine(t, b)

		out, err := e.SubmitMove(at(6, 5), at(5, 5))
		require.NoError(t, err)
		require.Equal(t, game.AttackerDestroyedByBomb, out.Kind)
		require.Equal(t, AwaitingSideB, e.State())

		_, err = e.SubmitMove(at(0, 0), at(1, 0))
		require.NoError(t, err)
		require.Equal(t, Result{Status: Lost, Side: game.SideA}, e.Result())
	})
}

func TestStartingSide(t *testing.T) {
	t.Run("configurable starting side", func(t *testing.T) {
		e, err := NewGame(newRand(2), WithStartingSide(game.SideB))
		require.NoError(t, err)
		require.Equal(t, AwaitingSideB, e.State())
		require.Equal(t, game.SideB, e.CurrentSide())
	})

	t.Run("starting side without moves has lost", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, 9, 0, game.Flag, game.SideA)
		place(t, b, 0, 0, game.Sergeant, game.SideB)

		e := newEngine(t, b)

		require.Equal(t, GameOver, e.State())
		require.Equal(t, Result{Status: Lost, Side: game.SideA}, e.Result())
	})

	t.Run("needs an opponent", func(t *testing.T) {
		_, err := New(game.NewBoard())
		require.Error(t, err)
	})
}

func TestRequestOpponentMove(t *testing.T) {
	t.Run("refused on the human side's turn", func(t *testing.T) {
		e, err := NewGame(newRand(4))
		require.NoError(t, err)
		before := e.Board()

		_, err = e.RequestOpponentMove()

		require.ErrorIs(t, err, ErrNotYourTurn)
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, before, e.Board())
	})

	t.Run("moves the computer side", func(t *testing.T) {
		e, err := NewGame(newRand(4))
		require.NoError(t, err)
		move := e.LegalMoves(game.SideA)[0]
		_, err = e.SubmitMove(move.From, move.To)
		require.NoError(t, err)
		if e.State() == GameOver {
			t.Skip("game ended on the first move")
		}

		out, err := e.RequestOpponentMove()

		require.NoError(t, err)
		require.Equal(t, game.SideB, out.Side)
		require.Equal(t, 2, e.Turns())
	})

	t.Run("policy without a move loses", func(t *testing.T) {
		b := game.NewBoard()
		place(t, b, 6, 5, game.Captain, game.SideA)
		place(t, b, 3, 5, game.Captain, game.SideB)
		e := newEngine(t, b, WithOpponent(noMoves{}), WithStartingSide(game.SideB))

		_, err := e.RequestOpponentMove()

		require.ErrorIs(t, err, ErrNoMove)
		require.Equal(t, Result{Status: Lost, Side: game.SideB}, e.Result())
	})
}

func TestSelection(t *testing.T) {
	b := game.NewBoard()
	place(t, b, 6, 5, game.Captain, game.SideA)
	place(t, b, 9, 9, game.Bomb, game.SideA)
	place(t, b, 5, 5, game.Sergeant, game.SideB)
	place(t, b, 0, 0, game.Sergeant, game.SideB)
	e := newEngine(t, b)

	_, ok := e.Selected()
	require.False(t, ok)
	_, err := e.MoveSelected(at(5, 5))
	require.ErrorIs(t, err, ErrNoSelection)

	require.ErrorIs(t, e.Select(at(9, 9)), game.ErrIllegalMove, "Bombs cannot be selected")
	require.ErrorIs(t, e.Select(at(5, 5)), ErrNoSelection, "Opponent pieces cannot be selected")

	require.NoError(t, e.Select(at(6, 5)))
	selected, ok := e.Selected()
	require.True(t, ok)
	require.Equal(t, at(6, 5), selected)
	require.ElementsMatch(t, []game.Coord{at(5, 5), at(6, 4), at(6, 6), at(7, 5)}, e.SelectedTargets())

	e.Deselect()
	require.Nil(t, e.SelectedTargets())
	require.NoError(t, e.Select(at(6, 5)))

	_, err = e.MoveSelected(at(8, 5))
	require.ErrorIs(t, err, game.ErrIllegalMove)
	_, ok = e.Selected()
	require.True(t, ok, "Rejected move keeps the selection")

	out, err := e.MoveSelected(at(5, 5))
	require.NoError(t, err)
	require.Equal(t, game.AttackerWins, out.Kind)
	_, ok = e.Selected()
	require.False(t, ok, "Completed move clears the selection")

	require.ErrorIs(t, e.Select(at(5, 5)), ErrNotYourTurn)
}

func TestRun(t *testing.T) {
	t.Run("random self-play reaches a consistent end", func(t *testing.T) {
		for seed := uint64(1); seed <= 3; seed++ {
			rng := newRand(seed)
			e, err := NewGame(rng)
			require.NoError(t, err)
			policies := map[game.Side]Policy{
				game.SideA: player.NewRandom(rng),
				game.SideB: player.NewRandom(rng),
			}

			m, err := e.Run(policies, 3000, metrics.NewCollector())

			require.NoError(t, err)
			require.Equal(t, e.ID(), m.GameID)
			require.Equal(t, e.Turns(), m.Turns)
			switch m.Reason {
			case metrics.ReasonTurnLimit:
				require.Equal(t, 3000, m.Turns)
				require.Equal(t, game.Neutral, m.Winner)
				require.NotEqual(t, GameOver, e.State())
			case metrics.ReasonFlagCaptured:
				require.Equal(t, 1, m.Outcomes[game.FlagCaptured])
				require.Equal(t, e.Result().Winner(), m.Winner)
			case metrics.ReasonNoMoves:
				require.Equal(t, Lost, e.Result().Status)
				require.Equal(t, e.Result().Winner(), m.Winner)
			default:
				t.Fatalf("unexpected reason %q", m.Reason)
			}
		}
	})

	t.Run("policy without a move ends the game", func(t *testing.T) {
		e, err := NewGame(newRand(8))
		require.NoError(t, err)

		m, err := e.Run(map[game.Side]Policy{game.SideA: noMoves{}, game.SideB: noMoves{}}, 10, nil)

		require.NoError(t, err)
		require.Equal(t, GameOver, e.State())
		require.Equal(t, game.SideB, e.Result().Winner())
		require.Equal(t, metrics.GameMetric{}, m, "Nil collector reports nothing")
	})

	t.Run("missing policy", func(t *testing.T) {
		e, err := NewGame(newRand(8))
		require.NoError(t, err)
		_, err = e.Run(map[game.Side]Policy{game.SideA: noMoves{}}, 10, nil)
		require.Error(t, err)
	})
}
