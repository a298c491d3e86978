package config

import (
	"os"
	"path/filepath"
	"testing"

	"stratego/game"
	"stratego/meta"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, uint64(meta.SEED), cfg.Seed)
	require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns)

	starting, human, err := cfg.Sides()
	require.NoError(t, err)
	require.Equal(t, game.SideA, starting)
	require.Equal(t, game.SideA, human)
	require.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoad(t *testing.T) {
	t.Run("overlays the file on the defaults", func(t *testing.T) {
		path := writeFile(t, `
seed: 99
starting_side: b
games: 3
log_level: debug
layout:
  - "2 2 2 2 2 2 2 2 3 3"
  - "3 3 3 4 4 4 4 5 5 5"
  - "5 6 6 6 6 7 7 7 8 8"
  - "9 10 1 B B B B B B F"
`)
		cfg, err := Load(path)

		require.NoError(t, err)
		require.NoError(t, cfg.Validate())
		require.Equal(t, uint64(99), cfg.Seed)
		require.Equal(t, 3, cfg.Games)
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns, "Missing keys keep defaults")
		require.Equal(t, zerolog.DebugLevel, cfg.Level())

		starting, _, err := cfg.Sides()
		require.NoError(t, err)
		require.Equal(t, game.SideB, starting)

		layout, err := cfg.ParseLayout()
		require.NoError(t, err)
		require.Len(t, layout, game.HomeDepth)
		require.Equal(t, game.Marshal, layout[3][1])
		require.Equal(t, game.Flag, layout[3][9])
		require.NoError(t, game.PlaceSetup(game.NewBoard(), game.SideA, layout))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "seed: [not a number"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.StartingSide = "C"
	cfg.MaxTurns = 0
	cfg.Games = -1
	cfg.Layout = []string{"2 2 X"}

	err := cfg.Validate()

	require.Error(t, err)
	require.Contains(t, err.Error(), "starting_side")
	require.Contains(t, err.Error(), "max_turns")
	require.Contains(t, err.Error(), "games")
	require.Contains(t, err.Error(), "layout row 0")
}
