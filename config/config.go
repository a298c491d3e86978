package config

import (
	"os"
	"strings"

	"stratego/game"
	"stratego/meta"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Seed         uint64 `yaml:"seed"`
	StartingSide string `yaml:"starting_side"`
	HumanSide    string `yaml:"human_side"`
	MaxTurns     int    `yaml:"max_turns"`
	Games        int    `yaml:"games"`
	OutputDir    string `yaml:"output_dir"`
	LogLevel     string `yaml:"log_level"`
	// Layout is the human side's setup, front row first, one string of
	// space-separated ranks per row. Empty means a random setup.
	Layout []string `yaml:"layout"`
}

func Default() Config {
	return Config{
		Seed:         meta.SEED,
		StartingSide: "A",
		HumanSide:    "A",
		MaxTurns:     meta.MAX_TURNS,
		Games:        meta.GAMES,
		OutputDir:    meta.OUTPUT_DIR,
		LogLevel:     meta.LOG_LEVEL,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if _, err := game.ParseSide(c.StartingSide); err != nil {
		result = multierror.Append(result, errors.WithMessage(err, "starting_side"))
	}
	if _, err := game.ParseSide(c.HumanSide); err != nil {
		result = multierror.Append(result, errors.WithMessage(err, "human_side"))
	}
	if c.MaxTurns <= 0 {
		result = multierror.Append(result, errors.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if c.Games <= 0 {
		result = multierror.Append(result, errors.Errorf("games must be positive, got %d", c.Games))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, errors.WithMessage(err, "log_level"))
	}
	if _, err := c.ParseLayout(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Sides returns the parsed starting and human sides.
func (c Config) Sides() (starting, human game.Side, err error) {
	if starting, err = game.ParseSide(c.StartingSide); err != nil {
		return game.Neutral, game.Neutral, err
	}
	if human, err = game.ParseSide(c.HumanSide); err != nil {
		return game.Neutral, game.Neutral, err
	}
	return starting, human, nil
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// ParseLayout turns Layout into ranks. It returns nil when no layout is set.
// Shape and piece counts are checked when the layout is placed.
func (c Config) ParseLayout() ([][]game.Rank, error) {
	if len(c.Layout) == 0 {
		return nil, nil
	}
	layout := make([][]game.Rank, len(c.Layout))
	for i, line := range c.Layout {
		for _, token := range strings.Fields(line) {
			r, err := game.ParseRank(token)
			if err != nil {
				return nil, errors.WithMessagef(err, "layout row %d", i)
			}
			layout[i] = append(layout[i], r)
		}
	}
	return layout, nil
}
