package render

import "github.com/gdamore/tcell/v2"

// Surface is a character-cell drawing target
// Callers serialize access; implementations are not safe for concurrent use
type Surface interface {
	// Size returns the extent discovered at startup
	Size() (width, height int)

	// Paint writes text starting at (row, col), clipped to the surface
	Paint(row, col int, text string, style tcell.Style)

	// Erase blanks n cells starting at (row, col)
	Erase(row, col, n int)

	// Clear blanks the whole surface
	Clear()

	// Flush makes pending changes visible
	Flush()

	// Colors returns the number of colours the terminal supports
	Colors() int
}
