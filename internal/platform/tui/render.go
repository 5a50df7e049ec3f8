package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	tileWidth  = 8
	tileHeight = 3
)

// Classic tile palette.
var tileBackground = map[int]string{
	0:    "#f5f5f5",
	2:    "#eee4da",
	4:    "#ede0c8",
	8:    "#edc850",
	16:   "#edc53f",
	32:   "#f67c5f",
	64:   "#f65e3b",
	128:  "#edcf72",
	256:  "#edcc61",
	512:  "#f2b179",
	1024: "#f59563",
	2048: "#edc22e",
}

const (
	darkText   = "#776e65"
	lightText  = "#f9f6f2"
	otherTile  = "#cdc1b4" // Background for values missing from the palette
	boardColor = "#bbada0"
)

// Styles holds the lipgloss styles bound to one renderer.
// SSH sessions each get their own renderer so color detection follows the client.
type Styles struct {
	renderer *lipgloss.Renderer
	Title    lipgloss.Style
	Score    lipgloss.Style
	Board    lipgloss.Style
	Overlay  lipgloss.Style
	Muted    lipgloss.Style
	Fresh    lipgloss.Style
}

// NewStyles builds the style set for a renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		renderer: r,
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color(darkText)),
		Score: r.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(lightText)).
			Background(lipgloss.Color(boardColor)),
		Board: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(boardColor)),
		Overlay: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 2).
			Align(lipgloss.Center),
		Muted: r.NewStyle().Foreground(lipgloss.Color("245")),
		Fresh: r.NewStyle().Underline(true),
	}
}

// tile returns the style for a tile value.
func (s Styles) tile(value int) lipgloss.Style {
	bg, fg := tileColors(value)
	return s.renderer.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
}

// tileColors returns background and text colors. Values missing from the
// palette get dark text on the fallback background.
func tileColors(value int) (bg, fg string) {
	bg, ok := tileBackground[value]
	switch {
	case !ok:
		return otherTile, darkText
	case value <= 4:
		return bg, darkText
	}
	return bg, lightText
}

// renderHUD draws the title and score boxes.
func (s Styles) renderHUD(state engine.GameState) string {
	title := s.Title.Render("2048")
	score := s.Score.Render(fmt.Sprintf("Score %d", state.Score))
	best := s.Score.Render(fmt.Sprintf("Best %d", state.HighScore))
	gain := ""
	if state.LastGain > 0 {
		gain = s.Muted.Render(fmt.Sprintf(" +%d", state.LastGain))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", score, " ", best, gain)
}

// renderBoard draws the 4x4 grid. Tiles spawned by the last operation are underlined.
func (s Styles) renderBoard(state engine.GameState) string {
	fresh := make(map[engine.Pos]bool, len(state.Spawned))
	for _, t := range state.Spawned {
		fresh[t.Pos] = true
	}

	rows := make([]string, 0, engine.Size)
	for row := range engine.Size {
		cells := make([]string, 0, engine.Size)
		for col := range engine.Size {
			val := state.Grid.At(row, col)
			label := ""
			if val != 0 {
				label = strconv.Itoa(val)
				if fresh[engine.Pos{Row: row, Col: col}] {
					label = s.Fresh.Render(label)
				}
			}
			cells = append(cells, s.tile(val).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return s.Board.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderGameOver draws the game over box with the leaderboard.
func (s Styles) renderGameOver(state engine.GameState, leaders []storage.ScoreEntry, current int64) string {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Max tile: %d", state.MaxTile),
		"Press N for a new game",
	}

	if len(leaders) > 0 {
		lines = append(lines, "", "Leaderboard", s.renderLeaderboard(leaders, current))
	}

	return s.Overlay.Render(strings.Join(lines, "\n"))
}
