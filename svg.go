package spiro

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [PolylineSVG] and
// [WritePolylineSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// PolylineSVG converts a sequence of points to SVG path data connecting
// them with straight lines.
//
// See [WritePolylineSVG] for a version that writes to an [io.Writer] instead
// of returning a string.
func PolylineSVG(pts []Point, opts SVGOptions) string {
	sb := &strings.Builder{}
	WritePolylineSVG(sb, pts, opts)
	return sb.String()
}

// WritePolylineSVG converts a sequence of points to SVG path data and writes
// it to w. The first point is a move, all following points are lines. An
// empty sequence writes nothing.
func WritePolylineSVG(w io.Writer, pts []Point, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	for i, pt := range pts {
		switch i {
		case 0:
			writef("M%s,%s", opts.format(pt.X), opts.format(pt.Y))
		default:
			writef(" L%s,%s", opts.format(pt.X), opts.format(pt.Y))
		}
	}
	return err
}

// SVGDocumentOptions specifies settings for [WriteSVGDocument].
type SVGDocumentOptions struct {
	SVGOptions

	// Stroke is the colour of the pattern. Defaults to black.
	Stroke string
	// StrokeWidth is the width of the pattern's line in pattern units.
	// Defaults to 0.5% of the larger side of the pattern's bounding box.
	StrokeWidth float64
	// Margin is added around the bounding box, as a fraction of its larger
	// side. Defaults to 5%.
	Margin float64
	// Guide optionally holds the guide's outline, see [Pattern.Outline],
	// which is drawn in grey beneath the pattern.
	Guide []Point
}

// WriteSVGDocument writes a standalone SVG document showing the pattern pts
// to w. Pattern coordinates are y-up; the document flips them so that the
// picture isn't mirrored.
func WriteSVGDocument(w io.Writer, pts []Point, opts SVGDocumentOptions) error {
	bbox := BoundingBox(pts)
	if len(opts.Guide) > 0 {
		bbox = bbox.Union(BoundingBox(opts.Guide))
	}
	side := max(bbox.Width(), bbox.Height())
	if side == 0 {
		side = 1
	}
	margin := opts.Margin
	if margin <= 0 {
		margin = 0.05
	}
	strokeWidth := opts.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 0.005 * side
	}
	stroke := opts.Stroke
	if stroke == "" {
		stroke = "black"
	}
	view := bbox.Square().Inflate(margin*side, margin*side)
	f := opts.format

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	writePath := func(pts []Point, color string, closed bool) {
		writef(`<path fill="none" stroke="%s" stroke-width="%s" d="`, color, f(strokeWidth))
		if err == nil {
			err = WritePolylineSVG(w, pts, opts.SVGOptions)
		}
		if closed {
			writef(" Z")
		}
		writef("\" />\n")
	}

	// Flipping y turns the view's y range into [-Y1, -Y0].
	writef(`<svg viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		f(view.X0), f(-view.Y1), f(view.Width()), f(view.Height()))
	writef(`<g transform="scale(1 -1)">` + "\n")
	if len(opts.Guide) > 0 {
		writePath(opts.Guide, "#bbb", true)
	}
	writePath(pts, stroke, false)
	writef("</g>\n</svg>\n")
	return err
}
