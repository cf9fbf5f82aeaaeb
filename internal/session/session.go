package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/vancomm/minesweeper/internal/game"
)

// Session is one player's seat at the game. Sessions live in memory
// only and disappear when the server stops.
type Session struct {
	ID        string
	Game      *game.Controller
	StartedAt time.Time
	EndedAt   time.Time

	mu sync.Mutex
}

// Do runs fn with the session locked. All game access from handlers
// goes through here so concurrent requests against one session cannot
// interleave mid-flood-fill.
func (s *Session) Do(fn func(g *game.Controller)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Game)
	if !s.Game.Playing() && s.EndedAt.IsZero() {
		s.EndedAt = time.Now().UTC()
	}
	if s.Game.Playing() {
		s.EndedAt = time.Time{}
	}
}

type sessionJSON struct {
	ID        string `json:"session_id"`
	Columns   int    `json:"columns"`
	Rows      int    `json:"rows"`
	MineCount int    `json:"mine_count"`
	Grid      []int8 `json:"grid"`
	Playing   bool   `json:"playing"`
	Outcome   string `json:"outcome"`
	StartedAt int64  `json:"started_at"`
	EndedAt   *int64 `json:"ended_at,omitempty"`
}

// MarshalJSON renders the session for clients: board dimensions, the
// outcome and one visual-state code per tile in row-major order.
func (s *Session) MarshalJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.Game.Board()
	grid := make([]int8, 0, board.Columns*board.Rows)
	board.Tiles(func(t *game.Tile) {
		grid = append(grid, int8(t.State()))
	})

	var endedAt *int64
	if !s.EndedAt.IsZero() {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	return json.Marshal(sessionJSON{
		ID:        s.ID,
		Columns:   board.Columns,
		Rows:      board.Rows,
		MineCount: board.MineCount,
		Grid:      grid,
		Playing:   s.Game.Playing(),
		Outcome:   s.Game.Outcome().String(),
		StartedAt: s.StartedAt.UnixMilli(),
		EndedAt:   endedAt,
	})
}
