package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a canvas of braille cells, each holding 2×4 micro-pixels.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bits of a braille cell, indexed by [column][row] within the cell
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawPolyline connects consecutive micro-pixel points.
func (b *brailleBuf) drawPolyline(pts [][2]int, closed bool) {
	for i := 1; i < len(pts); i++ {
		b.drawLineMicro(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
	}
	if closed && len(pts) > 2 {
		last := pts[len(pts)-1]
		b.drawLineMicro(last[0], last[1], pts[0][0], pts[0][1])
	}
}

func cellRune(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

// overlay renders fg on top of bg. Cells set in fg are drawn with fgStyle,
// cells only set in bg with bgStyle. Both buffers must be the same size.
func overlay(fg, bg *brailleBuf, fgStyle, bgStyle lipgloss.Style) string {
	var sb strings.Builder
	var run []rune
	runStyle := -1
	flush := func() {
		if len(run) == 0 {
			return
		}
		switch runStyle {
		case 1:
			sb.WriteString(fgStyle.Render(string(run)))
		case 2:
			sb.WriteString(bgStyle.Render(string(run)))
		default:
			sb.WriteString(string(run))
		}
		run = run[:0]
	}

	for y := 0; y < fg.h; y++ {
		for x := 0; x < fg.w; x++ {
			style, r := 0, ' '
			switch {
			case fg.m[y][x] != 0:
				style, r = 1, cellRune(fg.m[y][x])
			case bg.m[y][x] != 0:
				style, r = 2, cellRune(bg.m[y][x])
			}
			if style != runStyle {
				flush()
				runStyle = style
			}
			run = append(run, r)
		}
		flush()
		runStyle = -1
		if y < fg.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
