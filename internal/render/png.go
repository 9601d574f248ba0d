// Package render draws patterns to image files, alone or in batches
// described by a job file.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"honnef.co/go/spiro"
)

var (
	guideColor = color.RGBA{0xbb, 0xbb, 0xbb, 0xff}
	background = color.White
)

// PNGOptions specifies settings for [PNG] and [Rasterise].
type PNGOptions struct {
	Width, Height int
	// StrokeWidth is the width of lines in pixels. Defaults to 2.
	StrokeWidth float64
	// Stroke is the colour of the pattern. Defaults to black.
	Stroke color.Color
	// Margin is the empty space around the drawing, as a fraction of the
	// image's smaller side. Defaults to 5%.
	Margin float64
	// Guide optionally holds the guide's outline, drawn beneath the
	// pattern.
	Guide []spiro.Point
}

// PNG rasterises the pattern pts and writes it to w as a PNG image.
func PNG(w io.Writer, pts []spiro.Point, opts PNGOptions) error {
	img, err := Rasterise(pts, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Rasterise draws the pattern pts, scaled to fit the image and centred in
// it, as connected line segments on a white background.
func Rasterise(pts []spiro.Point, opts PNGOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}
	if len(pts) == 0 {
		return nil, errors.New("empty pattern")
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = 2
	}
	if opts.Stroke == nil {
		opts.Stroke = color.Black
	}
	if opts.Margin <= 0 {
		opts.Margin = 0.05
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	bbox := spiro.BoundingBox(pts)
	if len(opts.Guide) > 0 {
		bbox = bbox.Union(spiro.BoundingBox(opts.Guide))
	}
	toPixels := fit(bbox, opts.Width, opts.Height, opts.Margin)

	if len(opts.Guide) > 0 {
		closed := append(opts.Guide[:len(opts.Guide):len(opts.Guide)], opts.Guide[0])
		stroke(img, spiro.TransformPoints(closed, toPixels), opts.StrokeWidth, guideColor)
	}
	stroke(img, spiro.TransformPoints(pts, toPixels), opts.StrokeWidth, opts.Stroke)
	return img, nil
}

// fit maps pattern coordinates, which are y-up, to pixel coordinates, which
// are y-down, so that bbox is centred in a w×h image.
func fit(bbox spiro.Rect, w, h int, margin float64) spiro.Affine {
	side := float64(min(w, h))
	usable := side * (1 - 2*margin)
	extent := max(bbox.Width(), bbox.Height())
	scale := 1.0
	if extent > 0 {
		scale = usable / extent
	}
	centre := bbox.Center()

	toOrigin := spiro.Translate(spiro.Vec(-centre.X, -centre.Y))
	flip := spiro.Affine{M: [3][3]float64{
		{scale, 0, 0},
		{0, -scale, 0},
		{0, 0, 1},
	}}
	toImage := spiro.Translate(spiro.Vec(float64(w)/2, float64(h)/2))
	return toImage.Mul(flip).Mul(toOrigin)
}

// stroke draws the polyline pts with the given width. Each segment becomes a
// quadrilateral, extended by half the width at both ends so that joints are
// covered. All quadrilaterals wind the same way so overlaps don't cancel
// out.
func stroke(dst draw.Image, pts []spiro.Point, width float64, c color.Color) {
	b := dst.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	hw := width / 2

	if len(pts) == 1 {
		square(ras, pts[0], hw)
	}
	for i := 1; i < len(pts); i++ {
		a, z := pts[i-1], pts[i]
		d := z.Sub(a)
		if d.Hypot() == 0 {
			continue
		}
		along := d.Normalize().Mul(hw)
		across := spiro.Vec(-along.Y, along.X)
		a = a.Translate(along.Negate())
		z = z.Translate(along)

		moveTo(ras, a.Translate(across))
		lineTo(ras, z.Translate(across))
		lineTo(ras, z.Translate(across.Negate()))
		lineTo(ras, a.Translate(across.Negate()))
		ras.ClosePath()
	}
	ras.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func square(ras *vector.Rasterizer, p spiro.Point, hw float64) {
	moveTo(ras, spiro.Pt(p.X-hw, p.Y-hw))
	lineTo(ras, spiro.Pt(p.X+hw, p.Y-hw))
	lineTo(ras, spiro.Pt(p.X+hw, p.Y+hw))
	lineTo(ras, spiro.Pt(p.X-hw, p.Y+hw))
	ras.ClosePath()
}

func moveTo(ras *vector.Rasterizer, p spiro.Point) {
	ras.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(ras *vector.Rasterizer, p spiro.Point) {
	ras.LineTo(float32(p.X), float32(p.Y))
}
