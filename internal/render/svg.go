package render

import (
	"io"

	"honnef.co/go/spiro"
)

// SVGOptions specifies settings for [SVG].
type SVGOptions struct {
	// StrokeWidth is the width of lines as a fraction of the drawing's
	// larger side. Defaults to 0.5%.
	StrokeWidth float64
	Guide       []spiro.Point
}

// SVG writes the pattern pts to w as a standalone SVG document.
func SVG(w io.Writer, pts []spiro.Point, opts SVGOptions) error {
	bbox := spiro.BoundingBox(pts)
	if len(opts.Guide) > 0 {
		bbox = bbox.Union(spiro.BoundingBox(opts.Guide))
	}
	return spiro.WriteSVGDocument(w, pts, spiro.SVGDocumentOptions{
		SVGOptions:  spiro.SVGOptions{MaxPrecision: 4},
		StrokeWidth: opts.StrokeWidth * max(bbox.Width(), bbox.Height()),
		Guide:       opts.Guide,
	})
}
