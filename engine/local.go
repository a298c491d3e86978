package engine

import (
	"stratego/experiments/metrics"
	"stratego/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Run plays the game out with one policy per side until it ends or
// maxTurns moves have been made, and reports it through collector.
func (e *Engine) Run(policies map[game.Side]Policy, maxTurns int, collector metrics.Collector) (metrics.GameMetric, error) {
	for _, side := range []game.Side{game.SideA, game.SideB} {
		if policies[side] == nil {
			return metrics.GameMetric{}, errors.Errorf("no policy for side %s", side)
		}
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}

	collector.Start(e.id, e.CurrentSide())
	for e.State() != GameOver && e.Turns() < maxTurns {
		outcome, err := e.Play(policies[e.CurrentSide()])
		if errors.Is(err, ErrNoMove) {
			break
		}
		if err != nil {
			return metrics.GameMetric{}, err
		}
		collector.AddOutcome(outcome)
	}

	result := e.Result()
	reason := metrics.ReasonTurnLimit
	switch result.Status {
	case Won:
		reason = metrics.ReasonFlagCaptured
	case Lost:
		reason = metrics.ReasonNoMoves
	default:
		log.Info().Msgf("game %s stopped after %d moves (no winner yet)", e.id, e.Turns())
	}
	return collector.Complete(result.Winner(), reason), nil
}
