package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"stratego/config"
	"stratego/engine"
	"stratego/experiments"
	"stratego/game"
	"stratego/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "play", "play (human vs computer) or selfplay")
	seed := flag.Uint64("seed", 0, "Seed for setup and computer moves (overrides config)")
	games := flag.Int("games", 0, "Number of self-play games (overrides config)")
	maxTurns := flag.Int("turns", 0, "Move cap per self-play game (overrides config)")
	outputDir := flag.String("out", "", "Directory for experiment records (overrides config)")
	logLevel := flag.String("log", "", "Log level (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *maxTurns > 0 {
		cfg.MaxTurns = *maxTurns
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	switch *mode {
	case "play":
		err = play(cfg, os.Stdin, os.Stdout)
	case "selfplay":
		_, err = experiments.RunSelfPlay(cfg)
	default:
		err = errors.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("stratego failed")
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newGame sets up the board from cfg: the human side uses the configured
// layout if there is one, everything else is random.
func newGame(cfg config.Config) (*engine.Engine, error) {
	starting, human, err := cfg.Sides()
	if err != nil {
		return nil, err
	}
	layout, err := cfg.ParseLayout()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	b := game.NewBoard()
	if layout != nil {
		err = game.PlaceSetup(b, human, layout)
	} else {
		err = game.RandomizeSetup(b, human, rng)
	}
	if err != nil {
		return nil, err
	}
	if err := game.RandomizeSetup(b, human.Opponent(), rng); err != nil {
		return nil, err
	}

	return engine.New(b,
		engine.WithStartingSide(starting),
		engine.WithHumanSide(human),
		engine.WithOpponent(player.NewRandom(rng)),
	)
}

const help = `commands:
  r c r c   move the piece on (r,c) to (r,c)
  s r c     select the piece on (r,c) and list its targets
  m r c     move the selected piece to (r,c)
  q         quit`

func play(cfg config.Config, in io.Reader, out io.Writer) error {
	e, err := newGame(cfg)
	if err != nil {
		return err
	}
	human := e.HumanSide()
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, help)

	for e.State() != engine.GameOver {
		if e.CurrentSide() != human {
			outcome, err := e.RequestOpponentMove()
			if err != nil && !errors.Is(err, engine.ErrNoMove) {
				return err
			}
			if err == nil {
				fmt.Fprintf(out, "opponent %s: %s\n", outcome.Move, outcome.Kind)
			}
			continue
		}

		board := e.Board()
		fmt.Fprint(out, board.Format(human))
		fmt.Fprintf(out, "side %s to move> ", human)
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 1 && fields[0] == "q" {
			return nil
		}
		if err := command(e, fields, out); err != nil {
			fmt.Fprintln(out, err)
		}
	}

	result := e.Result()
	fmt.Fprintf(out, "game over: %s, winner %s\n", result, result.Winner())
	return nil
}

func command(e *engine.Engine, fields []string, out io.Writer) error {
	var name string
	if len(fields) > 0 && (fields[0] == "s" || fields[0] == "m") {
		name, fields = fields[0], fields[1:]
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return errors.Errorf("not a number: %q", f)
		}
		nums[i] = n
	}

	switch {
	case name == "s" && len(nums) == 2:
		if err := e.Select(game.Coord{Row: nums[0], Col: nums[1]}); err != nil {
			return err
		}
		fmt.Fprintf(out, "targets: %v\n", e.SelectedTargets())
	case name == "m" && len(nums) == 2:
		outcome, err := e.MoveSelected(game.Coord{Row: nums[0], Col: nums[1]})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "you %s: %s\n", outcome.Move, outcome.Kind)
	case name == "" && len(nums) == 4:
		outcome, err := e.SubmitMove(game.Coord{Row: nums[0], Col: nums[1]}, game.Coord{Row: nums[2], Col: nums[3]})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "you %s: %s\n", outcome.Move, outcome.Kind)
	default:
		return errors.New(help)
	}
	return nil
}
