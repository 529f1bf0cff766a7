package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowTitle  = "Typing app"
	WindowWidth  = 1100
	WindowHeight = 800
)

// Spacing between keys and between rows
const (
	KeyGap = 4
	RowGap = 4
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
