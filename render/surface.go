package render

import "github.com/gdamore/tcell/v2"

// TcellSurface adapts a tcell.Screen to Surface
type TcellSurface struct {
	screen        tcell.Screen
	width, height int
}

// NewTcellSurface wraps an initialized screen, freezing its current size
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	w, h := screen.Size()
	return &TcellSurface{
		screen: screen,
		width:  w,
		height: h,
	}
}

// Screen returns the underlying tcell screen
func (s *TcellSurface) Screen() tcell.Screen {
	return s.screen
}

func (s *TcellSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *TcellSurface) Paint(row, col int, text string, style tcell.Style) {
	if row < 0 || row >= s.height {
		return
	}
	x := col
	for _, r := range text {
		if x >= s.width {
			return
		}
		if x >= 0 {
			s.screen.SetContent(x, row, r, nil, style)
		}
		x++
	}
}

func (s *TcellSurface) Erase(row, col, n int) {
	if row < 0 || row >= s.height {
		return
	}
	for x := col; x < col+n && x < s.width; x++ {
		if x >= 0 {
			s.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
		}
	}
}

func (s *TcellSurface) Clear() {
	s.screen.Clear()
}

func (s *TcellSurface) Flush() {
	s.screen.Show()
}

func (s *TcellSurface) Colors() int {
	return s.screen.Colors()
}
