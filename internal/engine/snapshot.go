package engine

// Phase represents the controller's lifecycle state.
type Phase string

const (
	PhaseInit     Phase = "init"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// GameState is the observable snapshot handed to collaborators after every operation.
// It is a value copy; mutating it does not affect the controller.
type GameState struct {
	Grid      Grid
	Score     int
	HighScore int
	GameOver  bool

	Phase    Phase
	Moves    int    // Moves that changed the grid in the current game
	MaxTile  int    // Highest tile on the grid
	LastGain int    // Score gained by the last applied move
	Changed  bool   // Whether the last applied move changed the grid
	Spawned  []Tile // Tiles placed by the last operation
}

// State returns the current game snapshot.
func (c *Controller) State() GameState {
	var spawned []Tile
	if len(c.spawned) > 0 {
		spawned = make([]Tile, len(c.spawned))
		copy(spawned, c.spawned)
	}

	return GameState{
		Grid:      c.grid,
		Score:     c.score,
		HighScore: c.highScore,
		GameOver:  c.phase == PhaseGameOver,
		Phase:     c.phase,
		Moves:     c.moves,
		MaxTile:   c.grid.MaxTile(),
		LastGain:  c.lastGain,
		Changed:   c.changed,
		Spawned:   spawned,
	}
}
