package render

import (
	"fmt"

	"github.com/lixenwraith/saucer/constants"
)

// EndScreen is the content of the game over block
type EndScreen struct {
	Headline string
	Escaped  int
	Ammo     int
	Score    int
}

// Lines returns the block's text, one entry per row
func (e EndScreen) Lines() []string {
	return []string{
		e.Headline,
		fmt.Sprintf("Escaped saucers: %d", e.Escaped),
		fmt.Sprintf("Rockets left: %d", e.Ammo),
		fmt.Sprintf("Final score: %d", e.Score),
		constants.EndThanks,
		constants.EndPrompt,
	}
}

// DrawEndScreen clears the surface and paints the centred game over block
func DrawEndScreen(s Surface, e EndScreen) {
	w, h := s.Size()
	row := h/2 - h/4
	col := w/2 - w/3

	s.Clear()
	for i, line := range e.Lines() {
		style := StyleStatus
		if i == 0 {
			style = StyleHeadline
		}
		s.Paint(row+i, col, line, style)
	}
	s.Flush()
}
