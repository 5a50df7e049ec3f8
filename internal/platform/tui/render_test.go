package tui

import "testing"

func TestTileColors(t *testing.T) {
	tests := []struct {
		value  int
		wantBg string
		wantFg string
	}{
		{0, "#f5f5f5", darkText},
		{2, "#eee4da", darkText},
		{4, "#ede0c8", darkText},
		{8, "#edc850", lightText},
		{2048, "#edc22e", lightText},
		{4096, otherTile, darkText},
		{131072, otherTile, darkText},
	}

	for _, tc := range tests {
		bg, fg := tileColors(tc.value)
		if bg != tc.wantBg || fg != tc.wantFg {
			t.Errorf("tileColors(%d) = %s, %s, want %s, %s", tc.value, bg, fg, tc.wantBg, tc.wantFg)
		}
	}
}
