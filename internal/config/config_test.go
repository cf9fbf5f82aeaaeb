package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Game
		wantErr bool
	}{
		{
			name: "default",
			cfg:  *Default(),
		},
		{
			name:    "mine count equals total tiles",
			cfg:     Game{Columns: 3, Rows: 3, MineCount: 9, TileSize: 32},
			wantErr: true,
		},
		{
			name:    "mine count above total tiles",
			cfg:     Game{Columns: 3, Rows: 3, MineCount: 10, TileSize: 32},
			wantErr: true,
		},
		{
			name:    "zero mines",
			cfg:     Game{Columns: 3, Rows: 3, MineCount: 0, TileSize: 32},
			wantErr: true,
		},
		{
			name:    "non-positive dimensions",
			cfg:     Game{Columns: 0, Rows: 3, MineCount: 1, TileSize: 32},
			wantErr: true,
		},
		{
			name:    "non-positive tile size",
			cfg:     Game{Columns: 3, Rows: 3, MineCount: 1, TileSize: 0},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MINESWEEPER_COLUMNS", "16")
	t.Setenv("MINESWEEPER_ROWS", "16")
	t.Setenv("MINESWEEPER_MINE_COUNT", "40")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Columns)
	assert.Equal(t, 16, cfg.Rows)
	assert.Equal(t, 40, cfg.MineCount)
	assert.Equal(t, Default().TileSize, cfg.TileSize)
}

func TestFromEnvRejectsGarbage(t *testing.T) {
	t.Setenv("MINESWEEPER_COLUMNS", "lots")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvRejectsInvalidCombination(t *testing.T) {
	t.Setenv("MINESWEEPER_MINE_COUNT", "1000")

	_, err := FromEnv()
	assert.Error(t, err)
}
