package game

import "github.com/pkg/errors"

type OutcomeKind int8

const (
	Moved OutcomeKind = iota
	AttackerWins
	DefenderWins
	MutualDestruction
	BombDefused
	AttackerDestroyedByBomb
	FlagCaptured
)

var outcomeNames = [...]string{
	Moved:                   "moved",
	AttackerWins:            "attacker_wins",
	DefenderWins:            "defender_wins",
	MutualDestruction:       "mutual_destruction",
	BombDefused:             "bomb_defused",
	AttackerDestroyedByBomb: "attacker_destroyed_by_bomb",
	FlagCaptured:            "flag_captured",
}

// OutcomeKinds lists every kind in declaration order.
var OutcomeKinds = []OutcomeKind{
	Moved, AttackerWins, DefenderWins, MutualDestruction,
	BombDefused, AttackerDestroyedByBomb, FlagCaptured,
}

func (k OutcomeKind) String() string {
	if k < 0 || int(k) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[k]
}

// Outcome describes what a legal move does to the board.
type Outcome struct {
	Kind     OutcomeKind
	Move     Move
	Side     Side // the moving side
	Attacker Rank
	Defender Rank // NoRank when the target was empty
	Winner   Side // set for FlagCaptured only
}

// Resolve computes the outcome of side moving from -> to. It does not touch
// the board; callers validate the move first and then Apply the outcome.
func Resolve(b *Board, from, to Coord, side Side) Outcome {
	out := Outcome{
		Move:     Move{From: from, To: to},
		Side:     side,
		Attacker: b.Occupant(from).Rank,
	}
	target := b.Occupant(to)
	if target.Kind != Piece {
		out.Kind = Moved
		return out
	}
	out.Defender = target.Rank

	switch target.Rank {
	case Bomb:
		if out.Attacker == Miner {
			out.Kind = BombDefused
		} else {
			out.Kind = AttackerDestroyedByBomb
		}
	case Flag:
		out.Kind = FlagCaptured
		out.Winner = side
	default:
		out.Kind = duel(out.Attacker, out.Defender)
	}
	return out
}

// duel compares two numeric ranks. The spy beats the marshal whichever of
// the two attacks; every other pairing is decided by rank order.
func duel(attacker, defender Rank) OutcomeKind {
	switch {
	case attacker == Spy && defender == Marshal:
		return AttackerWins
	case attacker == Marshal && defender == Spy:
		return DefenderWins
	case attacker > defender:
		return AttackerWins
	case attacker == defender:
		return MutualDestruction
	default:
		return DefenderWins
	}
}

// Survivor reports whether the attacking piece ends up on the target cell.
func (o Outcome) Survivor() bool {
	switch o.Kind {
	case Moved, AttackerWins, BombDefused, FlagCaptured:
		return true
	default:
		return false
	}
}

// Apply performs the mutation described by o. The source cell always ends
// empty; the target receives the attacker, is cleared, or keeps its defender.
func (b *Board) Apply(o Outcome) error {
	from, to := o.Move.From, o.Move.To
	if !from.InBounds() || !to.InBounds() || IsLake(to) {
		return errors.Wrapf(ErrIllegalMove, "apply %s", o.Move)
	}
	if b.Owner(from) != o.Side || b.Occupant(from) != PieceOf(o.Attacker) {
		return errors.Errorf("apply %s: board does not hold %s's %s at %s", o.Kind, o.Side, o.Attacker, from)
	}

	switch {
	case o.Survivor():
		if err := b.Set(to, PieceOf(o.Attacker), o.Side); err != nil {
			return err
		}
	case o.Kind == MutualDestruction:
		b.clear(to)
	}
	b.clear(from)
	return nil
}
