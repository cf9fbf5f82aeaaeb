package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/vancomm/minesweeper/internal/config"
)

// Point addresses a tile by grid coordinates, 0-indexed.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RevealResult reports whether a reveal may continue the round or has
// detonated a mine.
type RevealResult int

const (
	RevealContinue RevealResult = iota
	RevealExploded
)

// Board owns the grid of tiles. Tiles are stored row-major: the tile
// at (x, y) lives at index y*Columns + x.
type Board struct {
	Columns   int
	Rows      int
	MineCount int

	tiles []Tile
}

// NewBoard builds a board with MineCount mines placed uniformly at
// random, then computes every clue. The configuration must have been
// validated; an invalid mine count is rejected here as well so the
// placement loop below always terminates.
func NewBoard(cfg *config.Game, rnd *rand.Rand) (*Board, error) {
	b, err := newEmptyBoard(cfg)
	if err != nil {
		return nil, err
	}
	placed := 0
	for placed < b.MineCount {
		x := rnd.IntN(b.Columns)
		y := rnd.IntN(b.Rows)
		t := b.TileAt(x, y)
		if t.Kind != KindMine {
			t.Kind = KindMine
			placed++
		}
	}
	b.computeClues()
	return b, nil
}

// NewBoardWithMines builds a board with the given mine positions,
// bypassing randomness. Duplicate or out-of-bounds positions are
// rejected.
func NewBoardWithMines(cfg *config.Game, mines []Point) (*Board, error) {
	cfg = &config.Game{
		Columns:   cfg.Columns,
		Rows:      cfg.Rows,
		MineCount: len(mines),
		TileSize:  cfg.TileSize,
	}
	b, err := newEmptyBoard(cfg)
	if err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !b.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("mine position (%d, %d) out of bounds", p.X, p.Y)
		}
		t := b.TileAt(p.X, p.Y)
		if t.Kind == KindMine {
			return nil, fmt.Errorf("duplicate mine position (%d, %d)", p.X, p.Y)
		}
		t.Kind = KindMine
	}
	b.computeClues()
	return b, nil
}

func newEmptyBoard(cfg *config.Game) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		Columns:   cfg.Columns,
		Rows:      cfg.Rows,
		MineCount: cfg.MineCount,
		tiles:     make([]Tile, cfg.Columns*cfg.Rows),
	}
	for i := range b.tiles {
		b.tiles[i].X = i % b.Columns
		b.tiles[i].Y = i / b.Columns
	}
	return b, nil
}

func (b *Board) computeClues() {
	for i := range b.tiles {
		t := &b.tiles[i]
		if t.Kind == KindMine {
			continue
		}
		t.Kind = Kind(b.NeighborMineCount(t.X, t.Y))
	}
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.Columns && 0 <= y && y < b.Rows
}

func (b *Board) index(x, y int) int {
	return y*b.Columns + x
}

// TileAt returns the tile at (x, y), or nil when out of bounds.
func (b *Board) TileAt(x, y int) *Tile {
	if !b.InBounds(x, y) {
		return nil
	}
	return &b.tiles[b.index(x, y)]
}

// Tiles iterates over every tile in row-major order.
func (b *Board) Tiles(fn func(t *Tile)) {
	for i := range b.tiles {
		fn(&b.tiles[i])
	}
}

// NeighborMineCount counts the mines among the up-to-8 in-bounds
// neighbors of (x, y).
func (b *Board) NeighborMineCount(x, y int) int {
	count := 0
	for ny := max(0, y-1); ny <= min(b.Rows-1, y+1); ny++ {
		for nx := max(0, x-1); nx <= min(b.Columns-1, x+1); nx++ {
			if nx == x && ny == y {
				continue
			}
			if b.tiles[b.index(nx, ny)].Kind == KindMine {
				count++
			}
		}
	}
	return count
}

// Reveal opens the tile at (x, y). Revealing a mine marks it exploded
// and returns RevealExploded without touching its neighbors. Revealing
// a clue opens just that tile. Revealing an empty tile flood-fills its
// connected empty region plus the bordering clues, using an explicit
// work queue with an index-keyed visited set rather than recursion.
//
// Out-of-bounds, already-revealed and flagged coordinates are no-ops.
func (b *Board) Reveal(x, y int) RevealResult {
	t := b.TileAt(x, y)
	if t == nil || t.Revealed || t.Flagged {
		return RevealContinue
	}

	if t.Kind == KindMine {
		t.Revealed = true
		t.Flagged = false
		t.Exploded = true
		return RevealExploded
	}

	queue := []int{b.index(x, y)}
	visited := make(map[int]struct{})
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if _, seen := visited[i]; seen {
			continue
		}
		visited[i] = struct{}{}

		t := &b.tiles[i]
		t.Revealed = true
		t.Flagged = false
		if t.Kind != KindEmpty {
			continue
		}
		for ny := max(0, t.Y-1); ny <= min(b.Rows-1, t.Y+1); ny++ {
			for nx := max(0, t.X-1); nx <= min(b.Columns-1, t.X+1); nx++ {
				j := b.index(nx, ny)
				if _, seen := visited[j]; !seen && !b.tiles[j].Revealed {
					queue = append(queue, j)
				}
			}
		}
	}
	return RevealContinue
}

// AllSafeRevealed reports whether every non-mine tile is revealed, the
// win condition.
func (b *Board) AllSafeRevealed() bool {
	for i := range b.tiles {
		if b.tiles[i].Kind != KindMine && !b.tiles[i].Revealed {
			return false
		}
	}
	return true
}

// String dumps the full grid one character per tile, mines as '*',
// clues as digits, empty tiles as '.'. Diagnostic only.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Rows {
		for x := range b.Columns {
			sb.WriteString(b.tiles[b.index(x, y)].Kind.String())
			if x < b.Columns-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
