package render

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Braille patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// litThreshold is the intensity above which a sub-pixel renders as a dot.
const litThreshold = 0.06

// Canvas is a terminal Surface: a float intensity buffer at 2x4 sub-pixel
// resolution rendered to braille characters. Fade decays the buffer each
// tick, which is what turns particle motion into short trails.
type Canvas struct {
	Cols, Rows int // character cells
	w, h       int // sub-pixel resolution
	intensity  []float64
}

// NewCanvas allocates a canvas of cols x rows character cells.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Canvas{
		Cols:      cols,
		Rows:      rows,
		w:         cols * 2,
		h:         rows * 4,
		intensity: make([]float64, cols*2*rows*4),
	}
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Fade(keep float64) {
	if keep <= 0 {
		for i := range c.intensity {
			c.intensity[i] = 0
		}
		return
	}
	if keep > 1 {
		keep = 1
	}
	for i := range c.intensity {
		c.intensity[i] *= keep
	}
}

func (c *Canvas) add(x, y int, v float64) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := y*c.w + x
	c.intensity[i] += v
	if c.intensity[i] > 1 {
		c.intensity[i] = 1
	}
}

// Dot splats alpha intensity around (x, y). The color is ignored here; a
// braille cell is monochrome and the TUI applies the palette per frame.
func (c *Canvas) Dot(x, y, size float64, _ colorful.Color, alpha float64, gradient bool) {
	if alpha <= 0 {
		return
	}
	cx, cy := int(x), int(y)
	r := int(size)
	if r < 0 {
		r = 0
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d2 := dx*dx + dy*dy
			if d2 > r*r {
				continue
			}
			v := alpha
			if gradient && r > 0 {
				v = alpha * (1 - float64(d2)/float64(r*r+1))
			}
			c.add(cx+dx, cy+dy, v)
		}
	}
}

func (c *Canvas) Grid(spacing int, brightness float64) {
	if spacing < 2 || brightness <= 0 {
		return
	}
	for y := 0; y < c.h; y += spacing {
		for x := 0; x < c.w; x++ {
			c.add(x, y, brightness)
		}
	}
	for x := 0; x < c.w; x += spacing {
		for y := 0; y < c.h; y++ {
			c.add(x, y, brightness)
		}
	}
}

func (c *Canvas) Err() error { return nil }

// Intensity returns the buffer value at sub-pixel (x, y), 0 outside.
func (c *Canvas) Intensity(x, y int) float64 {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.intensity[y*c.w+x]
}

// String renders the buffer as braille rows.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			ch := rune(0x2800)
			for sy := 0; sy < 4; sy++ {
				for sx := 0; sx < 2; sx++ {
					if c.Intensity(col*2+sx, row*4+sy) >= litThreshold {
						ch |= pixelMap[sy][sx]
					}
				}
			}
			b.WriteRune(ch)
		}
		if row < c.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
