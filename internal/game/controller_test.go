package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testController(t *testing.T, columns, rows int, mines []Point) *Controller {
	t.Helper()
	cfg := testConfig(columns, rows, len(mines))
	c, err := NewController(cfg, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	board, err := NewBoardWithMines(cfg, mines)
	require.NoError(t, err)
	c.startRoundWith(board)
	return c
}

func TestStartRoundResetsState(t *testing.T) {
	t.Parallel()

	cfg := testConfig(9, 9, 10)
	c, err := NewController(cfg, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	require.NoError(t, c.StartRound())
	assert.True(t, c.Playing())
	assert.Equal(t, OutcomeUndetermined, c.Outcome())

	first := c.Board()
	c.HandleReveal(4, 4)

	require.NoError(t, c.StartRound())
	assert.True(t, c.Playing())
	assert.Equal(t, OutcomeUndetermined, c.Outcome())
	assert.NotSame(t, first, c.Board())
}

func TestWinAutoFlagsMines(t *testing.T) {
	t.Parallel()

	c := testController(t, 3, 3, []Point{{0, 0}})

	// Everything except the corner mine is one connected safe region.
	c.HandleReveal(2, 2)

	assert.False(t, c.Playing())
	assert.Equal(t, OutcomeWon, c.Outcome())

	mine := c.Board().TileAt(0, 0)
	assert.True(t, mine.Flagged)
	assert.False(t, mine.Revealed)
	assert.Equal(t, StateFlagged, c.TileState(0, 0))
}

func TestLossSweep(t *testing.T) {
	t.Parallel()

	c := testController(t, 5, 1, []Point{{0, 0}, {2, 0}, {4, 0}})

	c.HandleFlagToggle(2, 0) // correct flag
	c.HandleFlagToggle(3, 0) // wrong flag
	c.HandleReveal(0, 0)     // detonate

	assert.False(t, c.Playing())
	assert.Equal(t, OutcomeLost, c.Outcome())

	// Every mine is revealed afterwards, in three distinct states.
	board := c.Board()
	assert.True(t, board.TileAt(0, 0).Revealed)
	assert.True(t, board.TileAt(2, 0).Revealed)
	assert.True(t, board.TileAt(4, 0).Revealed)

	assert.Equal(t, StateMineExploded, c.TileState(0, 0))
	assert.Equal(t, StateMineFlagged, c.TileState(2, 0))
	assert.Equal(t, StateMineSwept, c.TileState(4, 0))

	// The wrong flag is cleared, revealed and marked.
	wrong := board.TileAt(3, 0)
	assert.False(t, wrong.Flagged)
	assert.True(t, wrong.Revealed)
	assert.Equal(t, StateWrongFlag, c.TileState(3, 0))
}

func TestRevealFlaggedTileIsRejected(t *testing.T) {
	t.Parallel()

	c := testController(t, 3, 3, []Point{{0, 0}})

	c.HandleFlagToggle(2, 2)
	c.HandleReveal(2, 2)

	tile := c.Board().TileAt(2, 2)
	assert.False(t, tile.Revealed)
	assert.True(t, tile.Flagged)
	assert.True(t, c.Playing())
}

func TestFlagToggle(t *testing.T) {
	t.Parallel()

	c := testController(t, 3, 3, []Point{{0, 0}})

	c.HandleFlagToggle(1, 2)
	assert.Equal(t, StateFlagged, c.TileState(1, 2))

	// Exactly one tile is flagged.
	flagged := 0
	c.Board().Tiles(func(tile *Tile) {
		if tile.Flagged {
			flagged++
		}
	})
	assert.Equal(t, 1, flagged)

	c.HandleFlagToggle(1, 2)
	assert.Equal(t, StateHidden, c.TileState(1, 2))
}

func TestFlagToggleOnRevealedTileIsNoop(t *testing.T) {
	t.Parallel()

	c := testController(t, 3, 3, []Point{{0, 0}})

	c.HandleReveal(1, 0) // clue tile next to the mine
	require.True(t, c.Board().TileAt(1, 0).Revealed)

	c.HandleFlagToggle(1, 0)
	assert.False(t, c.Board().TileAt(1, 0).Flagged)
}

func TestMovesAfterRoundEndAreIgnored(t *testing.T) {
	t.Parallel()

	c := testController(t, 3, 3, []Point{{0, 0}})

	c.HandleReveal(0, 0)
	require.Equal(t, OutcomeLost, c.Outcome())

	c.HandleReveal(2, 2)
	assert.Equal(t, OutcomeLost, c.Outcome())
	c.HandleFlagToggle(2, 2)
	assert.False(t, c.Board().TileAt(2, 2).Flagged)
}

func TestOutOfBoundsMovesAreIgnored(t *testing.T) {
	t.Parallel()

	c := testController(t, 3, 3, []Point{{0, 0}})

	c.HandleReveal(-1, -1)
	c.HandleReveal(3, 3)
	c.HandleFlagToggle(-1, 0)
	c.HandleFlagToggle(0, 3)

	assert.True(t, c.Playing())
	hidden := 0
	c.Board().Tiles(func(tile *Tile) {
		if !tile.Revealed && !tile.Flagged {
			hidden++
		}
	})
	assert.Equal(t, 9, hidden)
}
