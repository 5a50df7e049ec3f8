package engine

import "math/rand"

// Config controls a Controller's randomness and rule variant.
type Config struct {
	// Seed feeds the spawner. Equal seeds with equal inputs replay the same game.
	Seed int64

	// SpawnOnUnchangedMove spawns a tile after every input, even one that left the
	// grid untouched, as the classic reference game does. Off by default, which
	// departs from that game: an unchanged move does not consume a turn.
	SpawnOnUnchangedMove bool
}

// Controller runs a single game at a time and keeps the best score across games.
// It is not safe for concurrent use; callers serialize NewGame and ApplyMove.
type Controller struct {
	cfg     Config
	spawner *Spawner

	grid      Grid
	score     int
	highScore int
	phase     Phase
	moves     int

	lastGain int
	changed  bool
	spawned  []Tile
}

// NewController creates a controller in the init phase. Call NewGame to start playing.
func NewController(cfg Config) *Controller {
	return &Controller{
		cfg:     cfg,
		spawner: NewSpawner(rand.New(rand.NewSource(cfg.Seed))),
		phase:   PhaseInit,
	}
}

// NewGame clears the grid, resets the score and spawns two tiles.
// Callable from any phase; the high score is kept.
func (c *Controller) NewGame() GameState {
	c.grid = Grid{}
	c.score = 0
	c.moves = 0
	c.lastGain = 0
	c.changed = false
	c.spawned = c.spawned[:0]

	c.spawn()
	c.spawn()

	c.phase = PhasePlaying
	return c.State()
}

// ApplyMove slides the grid in dir, scores merges, spawns and checks for game over.
// Outside the playing phase the call is ignored and the current state is returned.
func (c *Controller) ApplyMove(dir Direction) GameState {
	if c.phase != PhasePlaying || !dir.Valid() {
		return c.State()
	}

	next, gained, changed := Slide(c.grid, dir)
	c.spawned = c.spawned[:0]
	c.changed = changed
	c.lastGain = 0

	if changed {
		c.grid = next
		c.score += gained
		c.lastGain = gained
		c.moves++
		if c.score > c.highScore {
			c.highScore = c.score
		}
	}

	if changed || c.cfg.SpawnOnUnchangedMove {
		c.spawn()
	}

	if IsTerminal(c.grid) {
		c.phase = PhaseGameOver
	}

	return c.State()
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// HighScore returns the best score seen by this controller.
func (c *Controller) HighScore() int {
	return c.highScore
}

// spawn places one tile and records it for the next snapshot.
func (c *Controller) spawn() {
	if tile, ok := c.spawner.Spawn(&c.grid); ok {
		c.spawned = append(c.spawned, tile)
	}
}
