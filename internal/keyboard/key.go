package keyboard

// Key describes one physical key: the label printed on it and how much wider
// it is than a standard key.
type Key struct {
	Label      string
	ExtraWidth float32
}

// NewKey returns a standard-width key.
func NewKey(label string) Key {
	return Key{Label: label}
}

// NewWideKey returns a key that is extra units wider than a standard key.
func NewWideKey(label string, extra float32) Key {
	return Key{Label: label, ExtraWidth: extra}
}

func keys(labels ...string) []Key {
	out := make([]Key, len(labels))
	for i, l := range labels {
		out[i] = NewKey(l)
	}
	return out
}
