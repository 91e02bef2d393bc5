package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type OverlayState int

const (
	OverlayClosed OverlayState = iota
	OverlayOpen
)

// Overlay is the open/closed state of one floating picker. Each picker owns its own
// Overlay; opening or closing one never affects another.
type Overlay struct {
	state OverlayState
}

func (o Overlay) IsOpen() bool { return o.state == OverlayOpen }

func (o *Overlay) Toggle() {
	if o.IsOpen() {
		o.state = OverlayClosed
		return
	}

	o.state = OverlayOpen
}

func (o *Overlay) Open() { o.state = OverlayOpen }
func (o *Overlay) Close() { o.state = OverlayClosed }

// Region is a rectangle of terminal cells.
type Region struct {
	X, Y, Width, Height int
}

// regionOf measures rendered content placed with its top-left corner at (x, y).
func regionOf(x, y int, content string) Region {
	return Region{X: x, Y: y, Width: lipgloss.Width(content), Height: lipgloss.Height(content)}
}

func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// isPress reports whether msg is a left button press, the only mouse event that can
// toggle or dismiss overlays.
func isPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
