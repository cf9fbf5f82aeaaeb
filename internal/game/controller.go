package game

import (
	"math/rand/v2"

	"github.com/vancomm/minesweeper/internal/config"
)

// Outcome of the current round.
type Outcome int

const (
	OutcomeUndetermined Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "undetermined"
	}
}

// Controller drives a session: it owns the current board, translates
// player actions into board operations and tracks win/loss. It
// persists across rounds; the board is replaced on every StartRound.
type Controller struct {
	cfg *config.Game
	rnd *rand.Rand

	board   *Board
	playing bool
	outcome Outcome
}

func NewController(cfg *config.Game, rnd *rand.Rand) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{cfg: cfg, rnd: rnd}, nil
}

// StartRound replaces the board with a freshly generated one and
// resets the round state. Called for both the first round and every
// restart.
func (c *Controller) StartRound() error {
	board, err := NewBoard(c.cfg, c.rnd)
	if err != nil {
		return err
	}
	c.board = board
	c.playing = true
	c.outcome = OutcomeUndetermined
	return nil
}

// startRoundWith injects a fixed board, bypassing generation. Used by
// tests that need known mine positions.
func (c *Controller) startRoundWith(board *Board) {
	c.board = board
	c.playing = true
	c.outcome = OutcomeUndetermined
}

func (c *Controller) Board() *Board    { return c.board }
func (c *Controller) Playing() bool    { return c.playing }
func (c *Controller) Outcome() Outcome { return c.outcome }

// TileState returns the visual state for the tile at (x, y), or
// StateHidden when out of bounds.
func (c *Controller) TileState(x, y int) TileState {
	if c.board == nil {
		return StateHidden
	}
	t := c.board.TileAt(x, y)
	if t == nil {
		return StateHidden
	}
	return t.State()
}

// HandleReveal processes a primary click on (x, y). Flagged tiles are
// left alone. A detonation ends the round in a loss; otherwise the win
// condition is checked and may end the round in a win.
func (c *Controller) HandleReveal(x, y int) {
	if !c.playing || !c.board.InBounds(x, y) {
		return
	}
	if c.board.TileAt(x, y).Flagged {
		return
	}
	if c.board.Reveal(x, y) == RevealExploded {
		c.loseRound()
		return
	}
	c.checkWin()
}

// HandleFlagToggle processes a secondary click on (x, y): flips the
// flag on a hidden tile, no-op on a revealed one.
func (c *Controller) HandleFlagToggle(x, y int) {
	if !c.playing || !c.board.InBounds(x, y) {
		return
	}
	t := c.board.TileAt(x, y)
	if t.Revealed {
		return
	}
	t.Flagged = !t.Flagged
	c.checkWin()
}

func (c *Controller) checkWin() {
	if !c.board.AllSafeRevealed() {
		return
	}
	// Every hidden tile left is a mine; flag them all.
	c.board.Tiles(func(t *Tile) {
		if !t.Revealed {
			t.Flagged = true
		}
	})
	c.playing = false
	c.outcome = OutcomeWon
}

// loseRound sweeps the board for the end screen. Every mine ends up
// revealed: the detonated one keeps its exploded mark, correctly
// flagged mines keep their flag, the rest show as plain mines. Flags
// on non-mine tiles are cleared and the tiles marked wrongly flagged.
func (c *Controller) loseRound() {
	c.board.Tiles(func(t *Tile) {
		if t.Kind == KindMine {
			t.Revealed = true
			return
		}
		if t.Flagged {
			t.Flagged = false
			t.Revealed = true
			t.WrongFlag = true
		}
	})
	c.playing = false
	c.outcome = OutcomeLost
}
