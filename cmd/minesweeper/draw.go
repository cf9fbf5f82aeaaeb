package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vancomm/minesweeper/internal/game"
)

var (
	fontMain font.Face = basicfont.Face7x13

	colorHidden   = rgb(189, 189, 189)
	colorBorder   = rgb(123, 123, 123)
	colorRevealed = rgb(222, 222, 222)
	colorFlag     = rgb(200, 40, 40)
	colorMine     = rgb(30, 30, 30)
	colorExploded = rgb(210, 40, 40)
	colorWrong    = rgb(180, 30, 30)
	colorBanner   = color.RGBA{0, 0, 0, 170}

	// Classic clue palette, indexed by clue value.
	clueColors = []color.Color{
		nil,
		rgb(25, 60, 210),
		rgb(20, 120, 20),
		rgb(200, 30, 30),
		rgb(25, 25, 120),
		rgb(120, 25, 25),
		rgb(25, 120, 120),
		rgb(30, 30, 30),
		rgb(120, 120, 120),
	}
)

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{r, g, b, 255}
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(colorBorder)

	for y := range a.cfg.Rows {
		for x := range a.cfg.Columns {
			a.drawTile(screen, x, y)
		}
	}

	switch a.ctrl.Outcome() {
	case game.OutcomeWon:
		a.drawBanner(screen, "YOU WIN! Click to play again")
	case game.OutcomeLost:
		a.drawBanner(screen, "BOOM! Click to play again")
	}
}

func (a *app) drawTile(screen *ebiten.Image, x, y int) {
	size := a.cfg.TileSize
	px := float64(x * size)
	py := float64(y * size)
	state := a.ctrl.TileState(x, y)

	base := colorRevealed
	if state == game.StateHidden || state == game.StateFlagged {
		base = colorHidden
	}
	ebitenutil.DrawRect(screen, px+1, py+1, float64(size-2), float64(size-2), base)

	cx := float32(px) + float32(size)/2
	cy := float32(py) + float32(size)/2

	switch {
	case state == game.StateHidden:
		// covered tile, nothing on top
	case state == game.StateFlagged:
		a.drawFlag(screen, px, py)
	case state == game.StateEmpty:
		// open floor
	case state.Clue() > 0:
		clue := state.Clue()
		a.drawCenteredText(screen, fmt.Sprintf("%d", clue), px, py, clueColors[clue])
	case state == game.StateMineExploded:
		ebitenutil.DrawRect(screen, px+1, py+1, float64(size-2), float64(size-2), colorExploded)
		vector.DrawFilledCircle(screen, cx, cy, float32(size)/4, colorMine, false)
	case state == game.StateMineFlagged:
		vector.DrawFilledCircle(screen, cx, cy, float32(size)/4, colorMine, false)
		a.drawFlag(screen, px, py)
	case state == game.StateMineSwept:
		vector.DrawFilledCircle(screen, cx, cy, float32(size)/4, colorMine, false)
	case state == game.StateWrongFlag:
		vector.DrawFilledCircle(screen, cx, cy, float32(size)/4, colorMine, false)
		s := float32(size)
		vector.StrokeLine(screen, float32(px)+4, float32(py)+4, float32(px)+s-4, float32(py)+s-4, 2, colorWrong, false)
		vector.StrokeLine(screen, float32(px)+s-4, float32(py)+4, float32(px)+4, float32(py)+s-4, 2, colorWrong, false)
	}
}

func (a *app) drawFlag(screen *ebiten.Image, px, py float64) {
	size := float32(a.cfg.TileSize)
	x := float32(px)
	y := float32(py)
	// pole
	vector.DrawFilledRect(screen, x+size/2, y+size/4, 2, size/2, colorMine, false)
	// pennant
	vector.DrawFilledRect(screen, x+size/4, y+size/4, size/4, size/4, colorFlag, false)
	// base
	vector.DrawFilledRect(screen, x+size/4, y+size*3/4-2, size/2, 2, colorMine, false)
}

func (a *app) drawCenteredText(screen *ebiten.Image, s string, px, py float64, clr color.Color) {
	size := a.cfg.TileSize
	bounds, _ := font.BoundString(fontMain, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	x := int(px) + (size-w)/2
	y := int(py) + size/2 + fontMain.Metrics().Ascent.Ceil()/2
	text.Draw(screen, s, fontMain, x, y, clr)
}

func (a *app) drawBanner(screen *ebiten.Image, label string) {
	w, h := a.Layout(0, 0)
	bannerH := 40.0
	y := float64(h)/2 - bannerH/2
	ebitenutil.DrawRect(screen, 0, y, float64(w), bannerH, colorBanner)

	bounds, _ := font.BoundString(fontMain, label)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	text.Draw(screen, label, fontMain, (w-tw)/2, int(y)+25, color.White)
}
