package style

// RGB is an opaque colour with normalized channels in [0, 1].
type RGB struct {
	R, G, B float32
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return channel(c.R), channel(c.G), channel(c.B), 0xffff
}

func channel(v float32) uint32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}

// Default colours
var (
	DefaultKeyColor  = RGB{R: 0.8352941176, G: 0.8352941176, B: 0.8352941176} // gray
	DefaultTextColor = RGB{R: 0.1568627451, G: 0.1725490196, B: 0.2039215686} // dark gray
)
