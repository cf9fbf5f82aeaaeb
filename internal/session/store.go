package session

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
)

var ErrNotFound = errors.New("session not found")

// Store is an in-memory session registry keyed by UUID.
type Store struct {
	cfg *config.Game
	rnd *rand.Rand

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(cfg *config.Game, rnd *rand.Rand) *Store {
	return &Store{
		cfg:      cfg,
		rnd:      rnd,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new round under a fresh session id.
func (s *Store) Create() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Each session gets its own generator so restarts on different
	// sessions never share rand state.
	rnd := rand.New(rand.NewPCG(s.rnd.Uint64(), s.rnd.Uint64()))
	g, err := game.NewController(s.cfg, rnd)
	if err != nil {
		return nil, err
	}
	if err := g.StartRound(); err != nil {
		return nil, err
	}
	sess := &Session{
		ID:        uuid.NewString(),
		Game:      g,
		StartedAt: time.Now().UTC(),
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
