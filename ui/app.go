package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"typing-app/internal/keyboard"
	"typing-app/internal/style"
)

// Message is sent to App.Update when a key is tapped.
type Message struct {
	Key string
}

// App holds the keyboard shown in the main window.
type App struct {
	layout keyboard.Layout
	style  style.Config
}

// NewApp creates an app showing the QWERTY layout drawn with cfg.
func NewApp(cfg style.Config) *App {
	return &App{
		layout: keyboard.QWERTY(),
		style:  cfg,
	}
}

// Layout returns the keyboard layout the app displays.
func (a *App) Layout() keyboard.Layout {
	return a.layout
}

// Update handles a message from the view. Key presses are not acted on yet.
func (a *App) Update(msg Message) {}

// View builds the window content from the current layout.
func (a *App) View() fyne.CanvasObject {
	kb := NewKeyboardView(keyboard.Build(a.layout, a.style), func(label string) {
		a.Update(Message{Key: label})
	})
	return container.NewCenter(kb)
}

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(fa fyne.App, a *App) fyne.Window {
	win := fa.NewWindow(WindowTitle)
	win.Resize(NewWindowSize())
	win.SetContent(a.View())
	return win
}
