package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"honnef.co/go/spiro"
)

func (m Model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("spirogen"),
		paramsStyle.Render(m.params()),
	)

	status := dimStyle.Render(m.status)
	if m.invalid {
		status = errorStyle.Render(m.status)
	}
	helpView := m.help.View(m.keys)

	rows := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(helpView)
	rows = max(rows, 1)
	cols := max(m.width, 1)

	canvas := m.canvas(cols, rows)
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, canvas, status, helpView))
}

func (m Model) params() string {
	q := m.query
	side := "outside"
	if q.IsInside() {
		side = "inside"
	}
	return fmt.Sprintf("%s %g %s %s %g · pen %.2f @ %.3f",
		q.Guide, q.GuideRadius, side, q.Wheel, q.WheelRadius, q.PenRadius, q.PenTheta)
}

// canvas draws the pattern over its guide on a cols×rows braille grid.
func (m Model) canvas(cols, rows int) string {
	fg := newBrailleBuf(cols, rows)
	bg := newBrailleBuf(cols, rows)
	proj := project(spiro.BoundingBox(m.pts).Union(spiro.BoundingBox(m.outline)), cols*2, rows*4)
	bg.drawPolyline(proj(m.outline), true)
	fg.drawPolyline(proj(m.pts), false)
	return overlay(fg, bg, penStyle, dimStyle)
}

// project returns a function mapping points inside bbox onto a w×h
// micro-pixel grid, preserving aspect ratio, centred, with y pointing up.
func project(bbox spiro.Rect, w, h int) func([]spiro.Point) [][2]int {
	bw, bh := bbox.Width(), bbox.Height()
	scale := math.Inf(1)
	if bw > 0 {
		scale = float64(w-1) / bw
	}
	if bh > 0 {
		scale = min(scale, float64(h-1)/bh)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}
	c := bbox.Center()
	ox, oy := float64(w-1)/2, float64(h-1)/2
	return func(pts []spiro.Point) [][2]int {
		out := make([][2]int, len(pts))
		for i, pt := range pts {
			out[i] = [2]int{
				int(math.Round(ox + (pt.X-c.X)*scale)),
				int(math.Round(oy - (pt.Y-c.Y)*scale)),
			}
		}
		return out
	}
}
