package handlers

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
)

func testControllerForCommands(t *testing.T) *game.Controller {
	t.Helper()
	c, err := game.NewController(
		config.Default(), rand.New(rand.NewPCG(1, 2)),
	)
	require.NoError(t, err)
	require.NoError(t, c.StartRound())
	return c
}

func TestExecuteCommand(t *testing.T) {
	t.Parallel()

	c := testControllerForCommands(t)

	require.NoError(t, executeCommand(c, "g"))

	require.NoError(t, executeCommand(c, "f 0 0"))
	assert.Equal(t, game.StateFlagged, c.TileState(0, 0))
	require.NoError(t, executeCommand(c, "f 0 0"))
	assert.Equal(t, game.StateHidden, c.TileState(0, 0))

	require.NoError(t, executeCommand(c, "o 4 4"))
}

func TestExecuteCommandErrors(t *testing.T) {
	t.Parallel()

	c := testControllerForCommands(t)

	tests := []struct {
		name    string
		command string
	}{
		{name: "unknown command", command: "x"},
		{name: "missing arguments", command: "o 1"},
		{name: "extra arguments", command: "g 1"},
		{name: "non-numeric x", command: "o one 2"},
		{name: "non-numeric y", command: "o 1 two"},
		{name: "restart mid-round", command: "r"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Error(t, executeCommand(c, test.command))
		})
	}
}
