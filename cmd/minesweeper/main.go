package main

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
)

var log = logrus.New()

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	rnd := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
	ctrl, err := game.NewController(cfg, rnd)
	if err != nil {
		log.Fatal("unable to create game: ", err)
	}
	if err := ctrl.StartRound(); err != nil {
		log.Fatal("unable to start round: ", err)
	}

	a := newApp(cfg, ctrl)
	ebiten.SetWindowSize(a.Layout(0, 0))
	ebiten.SetWindowTitle("Minesweeper")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
