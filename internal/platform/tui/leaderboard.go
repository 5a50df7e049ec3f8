package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// renderLeaderboard draws the top scores as a table.
// The row whose ID equals current is highlighted; pass 0 to highlight nothing.
func (s Styles) renderLeaderboard(entries []storage.ScoreEntry, current int64) string {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
	}

	cursor := -1
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Player,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.MaxTile),
		}
		if e.ID == current {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // Header and its border
	)

	st := table.Styles{
		Header: s.renderer.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		Cell:     s.renderer.NewStyle().Padding(0, 1),
		Selected: s.renderer.NewStyle(),
	}
	if cursor >= 0 {
		st.Selected = st.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
		t.SetCursor(cursor)
	}
	t.SetStyles(st)

	return t.View()
}
