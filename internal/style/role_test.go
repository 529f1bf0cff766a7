package style

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_NamedRolesUseKeyColor(t *testing.T) {
	p := DefaultConfig().Palette

	for _, role := range []Role{Standard, IndexFinger, MiddleFinger, RingFinger, Pinky} {
		t.Run(role.String(), func(t *testing.T) {
			assert.False(t, role.IsCustom())
			assert.Equal(t, DefaultKeyColor, p.Resolve(role))
			assert.Equal(t, p.Resolve(role), p.Resolve(role))
		})
	}
}

func TestResolve_CustomPassthrough(t *testing.T) {
	p := DefaultConfig().Palette
	tests := []color.Color{
		color.NRGBA{R: 255, A: 255},
		color.Black,
		RGB{R: 0.1, G: 0.2, B: 0.3},
	}

	for _, c := range tests {
		assert.True(t, Custom(c).IsCustom())
		assert.Equal(t, c, p.Resolve(Custom(c)))
		assert.Equal(t, p.Resolve(Custom(c)), p.Resolve(Custom(c)))
	}
}

func TestResolve_ZeroValues(t *testing.T) {
	var p Palette
	var r Role

	assert.Equal(t, "standard", r.String())
	assert.Equal(t, DefaultKeyColor, p.Resolve(r))
	assert.Equal(t, DefaultKeyColor, p.Resolve(Custom(nil)))
}

func TestRGB_RGBA(t *testing.T) {
	r, g, b, a := DefaultKeyColor.RGBA()
	assert.Equal(t, uint32(0xd5d5), r)
	assert.Equal(t, r, g)
	assert.Equal(t, r, b)
	assert.Equal(t, uint32(0xffff), a)

	r, _, _, _ = RGB{R: -1}.RGBA()
	assert.Equal(t, uint32(0), r)
	r, _, _, _ = RGB{R: 2}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		width   float32
		height  float32
		wantErr bool
	}{
		{"default", KeyWidth, KeyHeight, false},
		{"zero width", 0, KeyHeight, true},
		{"negative height", KeyWidth, -1, true},
		{"minimum", MinKeySize, MinKeySize, false},
		{"below minimum", 0.5, KeyHeight, true},
		{"denormal width", 1e-40, KeyHeight, true},
		{"NaN width", float32(math.NaN()), KeyHeight, true},
		{"infinite height", KeyWidth, float32(math.Inf(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.KeyWidth = tt.width
			cfg.KeyHeight = tt.height
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
