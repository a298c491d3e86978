package experiments

import (
	"stratego/config"
	"stratego/engine"
	"stratego/experiments/metrics"
	"stratego/game"
	"stratego/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Summary tallies the results of a self-play experiment.
type Summary struct {
	Games      int
	Wins       map[game.Side]int
	Unfinished int
	TotalTurns int
	Dir        string
}

// RunSelfPlay plays cfg.Games random-vs-random games, game i seeded with
// cfg.Seed+i, and writes the records under cfg.OutputDir.
func RunSelfPlay(cfg config.Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, errors.WithMessage(err, "invalid config")
	}
	starting, _, err := cfg.Sides()
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Wins: make(map[game.Side]int)}
	records := []metrics.GameRecord{}

	log.Info().Msgf("starting self-play experiment with %d games...", cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		gameMetric, err := runGame(seed, starting, cfg.MaxTurns)
		if err != nil {
			return summary, errors.WithMessagef(err, "game %d", i+1)
		}
		gameMetric.Seed = seed
		records = append(records, metrics.GameRecord{ID: i + 1, GameMetric: gameMetric})

		summary.Games++
		summary.TotalTurns += gameMetric.Turns
		if gameMetric.Winner.Playing() {
			summary.Wins[gameMetric.Winner]++
		} else {
			summary.Unfinished++
		}
		log.Info().Msgf("completed game %d of %d after %d moves: winner %s (%s)", i+1, cfg.Games, gameMetric.Turns, gameMetric.Winner, gameMetric.Reason)
	}

	log.Info().Msgf("completed self-play experiment: A=%d B=%d unfinished=%d", summary.Wins[game.SideA], summary.Wins[game.SideB], summary.Unfinished)

	writer, err := metrics.NewWriter(cfg.OutputDir, "selfplay")
	if err != nil {
		return summary, errors.WithMessage(err, "failed to create experiment writer")
	}
	summary.Dir = writer.Dir()

	err = writer.WriteGameRecords(records)
	if err != nil {
		return summary, errors.WithMessage(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	err = writer.WriteOutcomeCounts(records)
	if err != nil {
		return summary, errors.WithMessage(err, "failed to write outcome counts")
	}
	log.Info().Msg("stored outcome counts")

	return summary, nil
}

// runGame executes a single seeded game between two random players.
func runGame(seed uint64, starting game.Side, maxTurns int) (metrics.GameMetric, error) {
	rng := rand.New(rand.NewSource(seed))
	e, err := engine.NewGame(rng, engine.WithStartingSide(starting))
	if err != nil {
		return metrics.GameMetric{}, err
	}
	policies := map[game.Side]engine.Policy{
		game.SideA: player.NewRandom(rng),
		game.SideB: player.NewRandom(rng),
	}
	return e.Run(policies, maxTurns, metrics.NewCollector())
}
