package format

import (
	"fmt"
	"strings"

	"typing-app/internal/keyboard"
)

// maxPad caps the padding of a single key.
const maxPad = 40

// FormatKey renders a single key as "[LABEL]", padded with spaces for every
// extra key width the key spans beyond base.
func FormatKey(k keyboard.VisualKey, base float32) string {
	pad := 0
	if base > 0 && k.Width > base {
		f := float64((k.Width - base) / base * 2)
		switch {
		case f > maxPad:
			pad = maxPad
		case f > 0:
			pad = int(f)
		}
	}
	half := pad / 2
	return "[" + strings.Repeat(" ", half) + k.Label + strings.Repeat(" ", pad-half) + "]"
}

// FormatTree produces a human-readable drawing of a built keyboard.
func FormatTree(name string, tree keyboard.Tree, base float32) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s ===\n", name))
	for _, row := range tree {
		cells := make([]string, len(row))
		for i, k := range row {
			cells[i] = FormatKey(k, base)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%d rows, %d keys", len(tree), tree.KeyCount()))
	return b.String()
}
