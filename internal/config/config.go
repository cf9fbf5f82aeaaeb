package config

import (
	"fmt"
	"os"
	"strconv"
)

// Game holds the fixed parameters of a round. It is built once at
// startup and passed by reference; nothing mutates it during play.
type Game struct {
	Columns   int
	Rows      int
	MineCount int
	TileSize  int // presentation only, pixels per tile edge
}

func Default() *Game {
	return &Game{
		Columns:   10,
		Rows:      10,
		MineCount: 10,
		TileSize:  32,
	}
}

// FromEnv returns the default configuration with any MINESWEEPER_*
// environment overrides applied.
func FromEnv() (*Game, error) {
	cfg := Default()
	overrides := []struct {
		name string
		dst  *int
	}{
		{"MINESWEEPER_COLUMNS", &cfg.Columns},
		{"MINESWEEPER_ROWS", &cfg.Rows},
		{"MINESWEEPER_MINE_COUNT", &cfg.MineCount},
		{"MINESWEEPER_TILE_SIZE", &cfg.TileSize},
	}
	for _, o := range overrides {
		raw, ok := os.LookupEnv(o.name)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", o.name, raw, err)
		}
		*o.dst = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations under which mine placement cannot
// terminate or the grid is degenerate.
func (c *Game) Validate() error {
	if c.Columns <= 0 || c.Rows <= 0 {
		return fmt.Errorf(
			"board dimensions must be positive, got %dx%d",
			c.Columns, c.Rows,
		)
	}
	if c.MineCount <= 0 {
		return fmt.Errorf("mine count must be positive, got %d", c.MineCount)
	}
	if c.MineCount >= c.Columns*c.Rows {
		return fmt.Errorf(
			"mine count %d must be less than total tiles %d (%dx%d)",
			c.MineCount, c.Columns*c.Rows, c.Columns, c.Rows,
		)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	return nil
}
