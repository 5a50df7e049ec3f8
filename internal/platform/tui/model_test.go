package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/sim"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// dirKey maps a direction to its arrow key.
func dirKey(d engine.Direction) tea.KeyMsg {
	switch d {
	case engine.Up:
		return tea.KeyMsg{Type: tea.KeyUp}
	case engine.Down:
		return tea.KeyMsg{Type: tea.KeyDown}
	case engine.Right:
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// playOut presses greedy moves until the game ends.
func playOut(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 100000 && !m.State().GameOver; i++ {
		m, _ = send(t, m, dirKey(sim.BestMove(m.State().Grid)))
	}
	if !m.State().GameOver {
		t.Fatal("game did not finish")
	}
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKeyMapDirection(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg    tea.KeyMsg
		want   engine.Direction
		wantOK bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, engine.Up, true},
		{tea.KeyMsg{Type: tea.KeyDown}, engine.Down, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, engine.Left, true},
		{tea.KeyMsg{Type: tea.KeyRight}, engine.Right, true},
		{runeKey('w'), engine.Up, true},
		{runeKey('a'), engine.Left, true},
		{runeKey('j'), engine.Down, true},
		{runeKey('l'), engine.Right, true},
		{runeKey('n'), 0, false},
		{runeKey('x'), 0, false},
	}

	for _, tc := range tests {
		got, ok := keys.Direction(tc.msg)
		if ok != tc.wantOK || (ok && got != tc.want) {
			t.Errorf("Direction(%q) = %v, %v, want %v, %v", tc.msg.String(), got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNewModelStartsGame(t *testing.T) {
	m := NewModel(ModelConfig{Rules: engine.Config{Seed: 3}}, nil, nil)

	state := m.State()
	if state.Phase != engine.PhasePlaying {
		t.Errorf("Phase = %s, want %s", state.Phase, engine.PhasePlaying)
	}
	if state.Grid.Count() != 2 {
		t.Errorf("tiles = %d, want 2", state.Grid.Count())
	}

	view := m.View()
	for _, want := range []string{"2048", "Score 0", "Best 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestMoveKeyAppliesMove(t *testing.T) {
	m := NewModel(ModelConfig{Rules: engine.Config{Seed: 11}}, nil, nil)
	before := m.State()

	dir := sim.BestMove(before.Grid)
	m, _ = send(t, m, dirKey(dir))

	if m.State().Moves != 1 {
		t.Errorf("Moves = %d, want 1", m.State().Moves)
	}
	if m.State().Grid == before.Grid {
		t.Error("grid unchanged after a changing move")
	}
}

func TestGameOverRecordsScoreOnce(t *testing.T) {
	store := openStore(t)
	m := NewModel(ModelConfig{Rules: engine.Config{Seed: 42}, Player: "alice"}, store, nil)

	m = playOut(t, m)
	final := m.State()

	// Further moves are ignored and must not record again.
	for _, d := range engine.Directions {
		m, _ = send(t, m, dirKey(d))
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("scores = %d, want 1", len(scores))
	}
	if scores[0].Player != "alice" || scores[0].Score != final.Score || scores[0].MaxTile != final.MaxTile {
		t.Errorf("saved %+v, want score %d max tile %d", scores[0], final.Score, final.MaxTile)
	}

	view := m.View()
	if !strings.Contains(view, "GAME OVER") {
		t.Error("View() missing game over box")
	}
	if !strings.Contains(view, "alice") {
		t.Error("View() missing leaderboard entry")
	}
}

func TestNewGameKeyResets(t *testing.T) {
	store := openStore(t)
	m := NewModel(ModelConfig{Rules: engine.Config{Seed: 5}}, store, nil)
	m = playOut(t, m)
	best := m.State().Score

	m, _ = send(t, m, runeKey('n'))

	state := m.State()
	if state.GameOver || state.Score != 0 || state.Moves != 0 {
		t.Errorf("after new game: %+v", state)
	}
	if state.HighScore != best {
		t.Errorf("HighScore = %d, want %d", state.HighScore, best)
	}
	if strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() still shows game over")
	}

	// A second finished game is recorded too.
	m = playOut(t, m)
	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("scores = %d, want 2", len(scores))
	}
}

func TestHelpAndQuit(t *testing.T) {
	m := NewModel(ModelConfig{Rules: engine.Config{Seed: 1}}, nil, nil)

	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("help not expanded")
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.width, m.height)
	}

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("quit returned nil command")
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestGameOverWithoutStore(t *testing.T) {
	m := NewModel(ModelConfig{Rules: engine.Config{Seed: 8}}, nil, nil)
	m = playOut(t, m)

	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() missing game over box")
	}
}
