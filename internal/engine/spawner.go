package engine

import "math/rand"

// Spawn weights: one 4 for every six 2s.
const (
	spawnWeight2 = 6
	spawnWeight4 = 1
)

// Tile is a value placed at a position.
type Tile struct {
	Pos
	Value int
}

// Spawner places new tiles on random empty cells.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn adds one tile (2 or 4) to a uniformly chosen empty cell.
// Returns the placed tile, or false if the grid was full.
func (s *Spawner) Spawn(g *Grid) (Tile, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	pos := empty[s.rng.Intn(len(empty))]
	value := s.drawValue()
	g.Set(pos.Row, pos.Col, value)

	return Tile{Pos: pos, Value: value}, true
}

// drawValue returns 2 with probability 6/7 and 4 with probability 1/7.
func (s *Spawner) drawValue() int {
	if s.rng.Intn(spawnWeight2+spawnWeight4) < spawnWeight4 {
		return 4
	}
	return 2
}
