package request

import (
	"fmt"
	"strings"

	"honnef.co/go/spiro"
)

// ShapeKind names one of the built-in shapes. The zero value is invalid.
type ShapeKind uint8

const (
	Circle ShapeKind = iota + 1
	Rod
)

// Kinds lists every valid shape kind.
var Kinds = []ShapeKind{Circle, Rod}

func ParseShapeKind(s string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return Circle, nil
	case "rod":
		return Rod, nil
	default:
		return 0, newError(ErrMalformed, fmt.Sprintf("unknown shape %q, expected Circle or Rod", s))
	}
}

func (k ShapeKind) String() string {
	switch k {
	case Circle:
		return "Circle"
	case Rod:
		return "Rod"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

func (k ShapeKind) Valid() bool {
	return k == Circle || k == Rod
}

// NeedsParam reports whether shapes of this kind require a shape parameter.
func (k ShapeKind) NeedsParam() bool {
	return k == Rod
}

// Shape constructs a shape of this kind. param is the rod's aspect ratio and
// is ignored for circles. Arguments aren't validated.
func (k ShapeKind) Shape(radius, param float64) spiro.ParametricShape {
	switch k {
	case Rod:
		return spiro.NewRod(radius, param)
	default:
		return spiro.NewCircle(radius)
	}
}

// Next returns the kind following k, wrapping around.
func (k ShapeKind) Next() ShapeKind {
	if k == Rod {
		return Circle
	}
	return Rod
}

func (k ShapeKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid shape kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *ShapeKind) UnmarshalText(b []byte) error {
	kind, err := ParseShapeKind(string(b))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
