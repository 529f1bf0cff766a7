package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typing-app/internal/keyboard"
	"typing-app/internal/style"
)

func keyFor(label string) keyboard.VisualKey {
	return keyboard.VisualKey{
		Label:  label,
		Width:  style.KeyWidth,
		Height: style.KeyHeight,
		Fill:   style.DefaultKeyColor,
		Text:   style.DefaultTextColor,
	}
}

func TestKeyRenderer_LongLabelShrinks(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	btn := NewKeyButton(keyFor("BACKSPACE"), nil)
	r, ok := test.WidgetRenderer(btn).(*keyRenderer)
	require.True(t, ok)

	r.Layout(btn.KeySize())

	assert.Less(t, r.label.TextSize, theme.CaptionTextSize())
	assert.GreaterOrEqual(t, r.label.TextSize, float32(minLabelSize))
	assert.Equal(t, btn.KeySize(), r.bg.Size())
}

func TestKeyRenderer_ShortLabelKeepsSize(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	btn := NewKeyButton(keyFor("Q"), nil)
	r, ok := test.WidgetRenderer(btn).(*keyRenderer)
	require.True(t, ok)

	r.Layout(btn.KeySize())
	assert.Equal(t, theme.CaptionTextSize(), r.label.TextSize)

	// a wide key restores the full size after a narrow layout
	r.Layout(fyne.NewSize(2, style.KeyHeight))
	r.Layout(btn.KeySize())
	assert.Equal(t, theme.CaptionTextSize(), r.label.TextSize)
}
