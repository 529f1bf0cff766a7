package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"typing-app/internal/keyboard"
)

// NewKeyboardView lays tree out as a column of rows of key buttons. Each tap
// reports the key's label to onTap, which may be nil.
func NewKeyboardView(tree keyboard.Tree, onTap func(label string)) *fyne.Container {
	rows := make([]fyne.CanvasObject, 0, len(tree))
	for _, keys := range tree {
		row := container.New(layout.NewCustomPaddedHBoxLayout(KeyGap))
		for _, k := range keys {
			row.Add(NewKeyButton(k, tapHandler(onTap, k.Label)))
		}
		rows = append(rows, row)
	}
	return container.New(layout.NewCustomPaddedVBoxLayout(RowGap), rows...)
}

func tapHandler(onTap func(string), label string) func() {
	if onTap == nil {
		return nil
	}
	return func() { onTap(label) }
}
