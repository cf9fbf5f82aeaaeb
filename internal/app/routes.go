package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/minesweeper/internal/handlers"
	"github.com/vancomm/minesweeper/internal/session"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	sessions := session.NewStore(a.cfg, createRand())
	game := handlers.NewGameHandler(a.log, sessions)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/reveal", game.Reveal)
	a.router.HandleFunc("POST /game/{id}/flag", game.Flag)
	a.router.HandleFunc("POST /game/{id}/restart", game.Restart)
	a.router.HandleFunc("DELETE /game/{id}", game.Delete)
	a.router.HandleFunc("/game/{id}/connect", game.ConnectWS)
}
