package style

import "image/color"

type roleKind int

const (
	kindStandard roleKind = iota
	kindIndexFinger
	kindMiddleFinger
	kindRingFinger
	kindPinky
	kindCustom
)

// Role selects the fill colour of a key. The zero value is Standard.
type Role struct {
	kind   roleKind
	custom color.Color
}

// Named roles. The finger roles are declared but have no colours of their own.
var (
	Standard     = Role{kind: kindStandard}
	IndexFinger  = Role{kind: kindIndexFinger}
	MiddleFinger = Role{kind: kindMiddleFinger}
	RingFinger   = Role{kind: kindRingFinger}
	Pinky        = Role{kind: kindPinky}
)

// Custom returns a role that always resolves to c.
func Custom(c color.Color) Role {
	return Role{kind: kindCustom, custom: c}
}

// IsCustom reports whether r carries its own colour.
func (r Role) IsCustom() bool {
	return r.kind == kindCustom
}

func (r Role) String() string {
	switch r.kind {
	case kindIndexFinger:
		return "index"
	case kindMiddleFinger:
		return "middle"
	case kindRingFinger:
		return "ring"
	case kindPinky:
		return "pinky"
	case kindCustom:
		return "custom"
	}
	return "standard"
}

// Palette maps roles to concrete colours.
type Palette struct {
	Key color.Color
}

// Resolve returns the fill colour for role. Custom roles return their colour
// unchanged; every other role falls back to the palette's key colour.
func (p Palette) Resolve(role Role) color.Color {
	if role.IsCustom() && role.custom != nil {
		return role.custom
	}
	if p.Key == nil {
		return DefaultKeyColor
	}
	return p.Key
}
