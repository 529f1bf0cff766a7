package keyboard

import (
	"image/color"

	"typing-app/internal/style"
)

// VisualKey is a key resolved against a style config, ready to draw.
type VisualKey struct {
	Label  string
	Width  float32
	Height float32
	Fill   color.Color
	Text   color.Color
}

// Tree is the rendered keyboard: rows top to bottom, keys left to right.
type Tree [][]VisualKey

// KeyCount returns the total number of keys in the tree.
func (t Tree) KeyCount() int {
	n := 0
	for _, row := range t {
		n += len(row)
	}
	return n
}

// Build resolves every key of l against cfg. It has no side effects; equal
// inputs always produce equal trees.
func Build(l Layout, cfg style.Config) Tree {
	tree := make(Tree, 0, rowCount)
	for _, r := range Rows() {
		row := make([]VisualKey, 0, len(l.rows[r]))
		for _, k := range l.rows[r] {
			row = append(row, buildKey(k, style.Standard, cfg))
		}
		tree = append(tree, row)
	}
	return tree
}

func buildKey(k Key, role style.Role, cfg style.Config) VisualKey {
	text := cfg.TextColor
	if text == nil {
		text = style.DefaultTextColor
	}
	return VisualKey{
		Label:  k.Label,
		Width:  cfg.KeyWidth + k.ExtraWidth,
		Height: cfg.KeyHeight,
		Fill:   cfg.Palette.Resolve(role),
		Text:   text,
	}
}
