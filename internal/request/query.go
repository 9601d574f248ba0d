// Package request turns client queries into validated patterns.
//
// The spiro package doesn't validate its inputs; every query arriving over
// HTTP, WebSocket, a job file or the terminal preview goes through
// [Query.Pattern] first.
package request

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"honnef.co/go/spiro"
)

// defaultParam stands in for a missing shape parameter. Only circles may
// omit theirs, and circles ignore it.
const defaultParam = 1.0

// Query holds the parameters of a pattern.
type Query struct {
	Guide       ShapeKind `json:"guide" yaml:"guide"`
	Wheel       ShapeKind `json:"wheel" yaml:"wheel"`
	GuideRadius float64   `json:"guide_radius" yaml:"guide_radius"`
	WheelRadius float64   `json:"wheel_radius" yaml:"wheel_radius"`
	PenRadius   float64   `json:"pen_radius" yaml:"pen_radius"`
	PenTheta    float64   `json:"pen_theta" yaml:"pen_theta"`
	GuideParam  *float64  `json:"guide_param,omitempty" yaml:"guide_param,omitempty"`
	WheelParam  *float64  `json:"wheel_param,omitempty" yaml:"wheel_param,omitempty"`
	Inside      *bool     `json:"inside,omitempty" yaml:"inside,omitempty"`
}

// Float returns a pointer to f, for the optional fields of [Query].
func Float(f float64) *float64 { return &f }

// Bool returns a pointer to b, for the optional fields of [Query].
func Bool(b bool) *bool { return &b }

// ParseQuery reads a query from URL parameters. Unknown parameters are
// ignored. It checks only that required parameters are present and
// well-formed; see [Query.Pattern] for validation.
func ParseQuery(v url.Values) (Query, error) {
	var q Query
	var err error

	kind := func(name string) ShapeKind {
		if err != nil {
			return 0
		}
		s, ok := lookup(v, name)
		if !ok {
			err = missing(name)
			return 0
		}
		var k ShapeKind
		k, err = ParseShapeKind(s)
		return k
	}
	number := func(name string) float64 {
		if err != nil {
			return 0
		}
		s, ok := lookup(v, name)
		if !ok {
			err = missing(name)
			return 0
		}
		var f float64
		f, err = parseFloat(name, s)
		return f
	}
	optional := func(name string) *float64 {
		if err != nil {
			return nil
		}
		s, ok := lookup(v, name)
		if !ok {
			return nil
		}
		var f float64
		f, err = parseFloat(name, s)
		return &f
	}

	q.Guide = kind("guide")
	q.Wheel = kind("wheel")
	q.GuideRadius = number("guide_radius")
	q.WheelRadius = number("wheel_radius")
	q.PenRadius = number("pen_radius")
	q.PenTheta = number("pen_theta")
	q.GuideParam = optional("guide_param")
	q.WheelParam = optional("wheel_param")
	if err != nil {
		return Query{}, err
	}

	if s, ok := lookup(v, "inside"); ok {
		b, perr := strconv.ParseBool(s)
		if perr != nil {
			return Query{}, newError(ErrMalformed, fmt.Sprintf("invalid value for inside: %q is not a boolean", s))
		}
		q.Inside = &b
	}
	return q, nil
}

func lookup(v url.Values, name string) (string, bool) {
	vs, ok := v[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func missing(name string) error {
	return newError(ErrMalformed, fmt.Sprintf("missing field %s", name))
}

func parseFloat(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, newError(ErrMalformed, fmt.Sprintf("invalid value for %s: %q is not a finite number", name, s))
	}
	return f, nil
}

// IsInside reports whether the wheel rolls on the inside of the guide.
func (q Query) IsInside() bool {
	return q.Inside != nil && *q.Inside
}

func (q Query) guideParam() float64 {
	if q.GuideParam == nil {
		return defaultParam
	}
	return *q.GuideParam
}

func (q Query) wheelParam() float64 {
	if q.WheelParam == nil {
		return defaultParam
	}
	return *q.WheelParam
}

// Pattern validates the query and builds the pattern it describes. The
// first violated rule determines the returned *Error.
func (q Query) Pattern() (spiro.Pattern, error) {
	for _, k := range []ShapeKind{q.Guide, q.Wheel} {
		if !k.Valid() {
			return spiro.Pattern{}, newError(ErrMalformed, "unknown shape kind, expected Circle or Rod")
		}
	}
	for _, f := range []float64{q.GuideRadius, q.WheelRadius, q.PenRadius, q.PenTheta, q.guideParam(), q.wheelParam()} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return spiro.Pattern{}, newError(ErrMalformed, "non-finite number supplied")
		}
	}

	if q.GuideParam == nil && q.Guide.NeedsParam() {
		return spiro.Pattern{}, newError(ErrMissingParam, fmt.Sprintf("guide type %s requires guide_param", q.Guide))
	}
	if q.WheelParam == nil && q.Wheel.NeedsParam() {
		return spiro.Pattern{}, newError(ErrMissingParam, fmt.Sprintf("wheel type %s requires wheel_param", q.Wheel))
	}

	if q.GuideRadius <= 0 || q.WheelRadius <= 0 {
		return spiro.Pattern{}, newError(ErrInvalidParam, "non-positive radius supplied")
	}
	if q.guideParam() <= 0 || q.wheelParam() <= 0 {
		return spiro.Pattern{}, newError(ErrInvalidParam, "non-positive shape parameter supplied")
	}
	if (q.Guide == Rod && q.guideParam() >= 1) || (q.Wheel == Rod && q.wheelParam() >= 1) {
		return spiro.Pattern{}, newError(ErrInvalidParam, "rod shape parameter must be less than 1")
	}

	if q.PenRadius < 0 || q.PenRadius > 1 {
		return spiro.Pattern{}, newError(ErrPenRange, "pen_radius is outside the range [0, 1]")
	}
	if q.PenTheta < 0 || q.PenTheta > 2*math.Pi {
		return spiro.Pattern{}, newError(ErrPenRange, "pen_theta is outside the range [0, 2PI]")
	}

	p := spiro.Pattern{
		Guide:  q.Guide.Shape(q.GuideRadius, q.guideParam()),
		Wheel:  q.Wheel.Shape(q.WheelRadius, q.wheelParam()),
		Inside: q.IsInside(),
		Pen: spiro.Pen{
			Theta:  q.PenTheta,
			Radius: q.PenRadius,
		},
	}
	if p.Inside && !p.Fits() {
		return spiro.Pattern{}, newError(ErrInfeasibleFit, "wheel does not fit inside guide")
	}
	return p, nil
}

// Key returns a canonical encoding of the query. Queries describing the same
// pattern have the same key.
func (q Query) Key() string {
	var sb strings.Builder
	shape := func(k ShapeKind, radius, param float64) {
		sb.WriteString(k.String())
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(radius, 'g', -1, 64))
		if k.NeedsParam() {
			sb.WriteByte(':')
			sb.WriteString(strconv.FormatFloat(param, 'g', -1, 64))
		}
	}
	shape(q.Guide, q.GuideRadius, q.guideParam())
	sb.WriteByte('/')
	shape(q.Wheel, q.WheelRadius, q.wheelParam())
	if q.IsInside() {
		sb.WriteString("/in/")
	} else {
		sb.WriteString("/out/")
	}
	sb.WriteString(strconv.FormatFloat(q.PenRadius, 'g', -1, 64))
	sb.WriteByte('@')
	sb.WriteString(strconv.FormatFloat(q.PenTheta, 'g', -1, 64))
	return sb.String()
}
