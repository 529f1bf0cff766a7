package style

import (
	"fmt"
	"image/color"
	"math"
)

// Key dimensions
const (
	KeyWidth  = 30
	KeyHeight = 30
)

// Config holds the styling applied when a layout is built.
type Config struct {
	KeyWidth  float32
	KeyHeight float32
	Palette   Palette
	TextColor color.Color
}

// DefaultConfig returns the standard key geometry and colours.
func DefaultConfig() Config {
	return Config{
		KeyWidth:  KeyWidth,
		KeyHeight: KeyHeight,
		Palette:   Palette{Key: DefaultKeyColor},
		TextColor: DefaultTextColor,
	}
}

// MinKeySize is the smallest accepted key width or height.
const MinKeySize = 1

// Validate checks the key geometry.
func (c Config) Validate() error {
	if err := checkSize("key width", c.KeyWidth); err != nil {
		return err
	}
	return checkSize("key height", c.KeyHeight)
}

func checkSize(name string, v float32) error {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%s must be a finite number, got %g", name, v)
	}
	if v < MinKeySize {
		return fmt.Errorf("%s must be at least %d, got %g", name, MinKeySize, v)
	}
	return nil
}
