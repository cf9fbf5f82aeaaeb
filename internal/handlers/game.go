package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/session"
)

// Position carries grid coordinates decoded from a request query.
type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

type GameHandler struct {
	log      *logrus.Logger
	sessions *session.Store
	ws       *wsConfig
	decoder  *schema.Decoder
}

func NewGameHandler(log *logrus.Logger, sessions *session.Store) *GameHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &GameHandler{
		log:      log,
		sessions: sessions,
		ws:       newWSConfig(),
		decoder:  decoder,
	}
}

// NewGame starts a new session with a fresh round.
func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	sess, err := g.sessions.Create()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to create session")
		return
	}
	sendJSONOrLog(w, g.log, sess)
}

// Fetch returns the current state of a session.
func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, sess)
}

// Reveal applies a primary click at the query coordinates.
func (g *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	g.applyMove(w, r, func(c *game.Controller, p Position) {
		c.HandleReveal(p.X, p.Y)
	})
}

// Flag applies a secondary click at the query coordinates.
func (g *GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	g.applyMove(w, r, func(c *game.Controller, p Position) {
		c.HandleFlagToggle(p.X, p.Y)
	})
}

// Restart begins a new round on an existing session after the previous
// round has ended.
func (g *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	var roundErr error
	sess.Do(func(c *game.Controller) {
		if c.Playing() {
			roundErr = errors.New("round still in progress")
			return
		}
		roundErr = c.StartRound()
	})
	if roundErr != nil {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.log, wrapError(roundErr))
		return
	}
	sendJSONOrLog(w, g.log, sess)
}

// Delete forgets a session.
func (g *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	g.sessions.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (g *GameHandler) applyMove(
	w http.ResponseWriter,
	r *http.Request,
	move func(c *game.Controller, p Position),
) {
	sess, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	var pos Position
	if err := g.decoder.Decode(&pos, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	sess.Do(func(c *game.Controller) {
		move(c, pos)
	})
	sendJSONOrLog(w, g.log, sess)
}

func (g *GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*session.Session, bool) {
	sess, err := g.sessions.Get(r.PathValue("id"))
	if errors.Is(err, session.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to fetch session")
		return nil, false
	}
	return sess, true
}
