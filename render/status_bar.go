package render

import (
	"fmt"

	"github.com/lixenwraith/saucer/constants"
)

// Stats is the status line content
type Stats struct {
	Score     int
	Ammo      int
	Escaped   int
	MaxEscape int
}

// StatusLine formats stats for the bottom row
func StatusLine(st Stats) string {
	return fmt.Sprintf(constants.StatusFormat, st.Score, st.Ammo, st.Escaped, st.MaxEscape)
}

// DrawStatus paints the status line on the last row
func DrawStatus(s Surface, st Stats) {
	_, h := s.Size()
	s.Paint(h-1, 0, StatusLine(st), StyleStatus)
}

// DrawLaunchSite paints the launch pad with its left edge at col
func DrawLaunchSite(s Surface, row, col int) {
	s.Paint(row, col, constants.LaunchSiteGlyph, StyleLaunchSite)
}

// DrawPause shows or hides the two-line pause banner starting at row
func DrawPause(s Surface, row int, visible bool) {
	w, _ := s.Size()
	lines := []string{constants.PauseText, constants.PausePrompt}
	for i, line := range lines {
		col := (w - len(line)) / 2
		if visible {
			s.Paint(row+i, col, line, StyleHeadline)
		} else {
			s.Erase(row+i, col, len(line))
		}
	}
}
