package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
)

// app is the presentation shell around the game controller: it turns
// mouse events into reveal/flag calls and draws the board every frame.
type app struct {
	cfg  *config.Game
	ctrl *game.Controller
}

func newApp(cfg *config.Game, ctrl *game.Controller) *app {
	return &app{cfg: cfg, ctrl: ctrl}
}

func (a *app) Layout(_, _ int) (int, int) {
	return a.cfg.Columns * a.cfg.TileSize, a.cfg.Rows * a.cfg.TileSize
}

// boardPos resolves the cursor to grid coordinates.
func (a *app) boardPos(mx, my int) (int, int, bool) {
	x := mx / a.cfg.TileSize
	y := my / a.cfg.TileSize
	inside := 0 <= x && x < a.cfg.Columns && 0 <= y && y < a.cfg.Rows
	return x, y, inside
}

func (a *app) Update() error {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !a.ctrl.Playing() {
			// End screen: a click starts the next round.
			return a.ctrl.StartRound()
		}
		if x, y, ok := a.boardPos(mx, my); ok {
			a.ctrl.HandleReveal(x, y)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && a.ctrl.Playing() {
		if x, y, ok := a.boardPos(mx, my); ok {
			a.ctrl.HandleFlagToggle(x, y)
		}
	}

	return nil
}
