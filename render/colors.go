package render

import "github.com/gdamore/tcell/v2"

// Saucer palette, cycled per spawn
var saucerColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorDarkCyan,
	tcell.ColorPurple,
	tcell.ColorYellow,
}

var (
	StyleDefault    = tcell.StyleDefault
	StyleShot       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleLaunchSite = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleHeadline   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// MinColors is the smallest palette that can show distinct saucers
const MinColors = 8

// PaletteSize returns the number of distinct saucer colours
func PaletteSize() int {
	return len(saucerColors)
}

// SaucerStyle returns the style for palette index idx, monochrome when colour is off
func SaucerStyle(idx int, colour bool) tcell.Style {
	if !colour || idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(saucerColors[idx%len(saucerColors)])
}
