package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"typing-app/internal/keyboard"
)

// minLabelSize is the smallest text size a key label is shrunk to.
const minLabelSize = 6

// KeyButton is a fixed-size button drawn for one keyboard key.
type KeyButton struct {
	widget.Button
	size     fyne.Size
	bgColor  color.Color
	txtColor color.Color
}

// NewKeyButton creates a button sized and coloured from k.
func NewKeyButton(k keyboard.VisualKey, tapped func()) *KeyButton {
	btn := &KeyButton{
		size:     fyne.NewSize(k.Width, k.Height),
		bgColor:  k.Fill,
		txtColor: k.Text,
	}
	btn.Text = k.Label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// KeySize returns the size the key was built with.
func (b *KeyButton) KeySize() fyne.Size {
	return b.size
}

// FillColor returns the key's background colour.
func (b *KeyButton) FillColor() color.Color {
	return b.bgColor
}

// CreateRenderer returns a custom renderer.
func (b *KeyButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(b.bgColor)
	bg.CornerRadius = theme.InputRadiusSize()

	label := canvas.NewText(b.Text, b.txtColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = theme.CaptionTextSize()

	return &keyRenderer{
		btn:     b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
}

type keyRenderer struct {
	btn     *KeyButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

// Layout scales the label text down when it is wider than the key.
func (r *keyRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	r.label.TextSize = theme.CaptionTextSize()
	labelMin := r.label.MinSize()
	if labelMin.Width > size.Width && labelMin.Width > 0 && size.Width > 0 {
		r.label.TextSize = max(r.label.TextSize*size.Width/labelMin.Width, minLabelSize)
		labelMin = r.label.MinSize()
	}
	r.label.Move(fyne.NewPos(
		(size.Width-labelMin.Width)/2,
		(size.Height-labelMin.Height)/2,
	))
	r.label.Resize(labelMin)
}

// MinSize is the key size; long labels overflow rather than stretch the key.
func (r *keyRenderer) MinSize() fyne.Size {
	return r.btn.size
}

func (r *keyRenderer) Refresh() {
	r.label.Text = r.btn.Text
	r.bg.FillColor = r.btn.bgColor
	r.label.Color = r.btn.txtColor

	r.bg.Refresh()
	r.label.Refresh()
}

func (r *keyRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *keyRenderer) Destroy()                     {}
