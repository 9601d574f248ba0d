package request

import (
	"fmt"
	"net/url"
	"strconv"

	"honnef.co/go/spiro"
)

const (
	DefaultResolution = 100
	MaxResolution     = 10_000
)

// ShapeQuery describes a single shape to rasterise.
type ShapeQuery struct {
	Kind       ShapeKind
	Radius     float64
	Param      *float64
	Resolution int
}

// ParseShapeQuery reads a shape query from the URL parameters kind, radius,
// param and resolution. Only resolution is optional.
func ParseShapeQuery(v url.Values) (ShapeQuery, error) {
	q := ShapeQuery{Resolution: DefaultResolution}

	s, ok := lookup(v, "kind")
	if !ok {
		return ShapeQuery{}, missing("kind")
	}
	kind, err := ParseShapeKind(s)
	if err != nil {
		return ShapeQuery{}, err
	}
	q.Kind = kind

	if s, ok = lookup(v, "radius"); !ok {
		return ShapeQuery{}, missing("radius")
	}
	if q.Radius, err = parseFloat("radius", s); err != nil {
		return ShapeQuery{}, err
	}

	if s, ok = lookup(v, "param"); ok {
		f, err := parseFloat("param", s)
		if err != nil {
			return ShapeQuery{}, err
		}
		q.Param = &f
	}

	if s, ok = lookup(v, "resolution"); ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return ShapeQuery{}, newError(ErrMalformed, fmt.Sprintf("invalid value for resolution: %q is not an integer", s))
		}
		q.Resolution = n
	}
	return q, nil
}

// Shape validates the query and builds the shape, following the same rules
// as [Query.Pattern].
func (q ShapeQuery) Shape() (spiro.ParametricShape, error) {
	if !q.Kind.Valid() {
		return nil, newError(ErrMalformed, "unknown shape kind, expected Circle or Rod")
	}
	if q.Param == nil && q.Kind.NeedsParam() {
		return nil, newError(ErrMissingParam, fmt.Sprintf("shape type %s requires param", q.Kind))
	}
	param := defaultParam
	if q.Param != nil {
		param = *q.Param
	}
	if q.Radius <= 0 {
		return nil, newError(ErrInvalidParam, "non-positive radius supplied")
	}
	if param <= 0 {
		return nil, newError(ErrInvalidParam, "non-positive shape parameter supplied")
	}
	if q.Kind == Rod && param >= 1 {
		return nil, newError(ErrInvalidParam, "rod shape parameter must be less than 1")
	}
	if q.Resolution < 1 || q.Resolution > MaxResolution {
		return nil, newError(ErrInvalidParam, fmt.Sprintf("resolution is outside the range [1, %d]", MaxResolution))
	}
	return q.Kind.Shape(q.Radius, param), nil
}
