// Package export renders particle snapshots and formation layouts to SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/swarmfield/internal/formation"
	"github.com/san-kum/swarmfield/internal/particle"
	"github.com/san-kum/swarmfield/internal/render"
)

// SnapshotToSVG renders a particle snapshot as colored dots on a dark
// background. scale multiplies screen coordinates into SVG units.
func SnapshotToSVG(particles []particle.Particle, bounds particle.Bounds, pal render.Palette, scale float64) string {
	if scale <= 0 {
		scale = 1
	}
	width := bounds.W * scale
	height := bounds.H * scale

	var sb strings.Builder
	writeHeader(&sb, width, height)

	for _, p := range particles {
		if p.Alpha <= 0 {
			continue
		}
		c := pal.Shade(p.Hue, 0.85)
		r := p.Size * scale
		if r < 0.5 {
			r = 0.5
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f"/>
`, p.X*scale, p.Y*scale, r, c.Hex(), clamp01(p.Alpha)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// FormationToSVG renders the ideal target layout for a shape, without any
// simulation state. Useful for previewing formations from the CLI.
func FormationToSVG(shape formation.Shape, count int, size float64) string {
	if size <= 0 {
		size = 512
	}
	radius := size * 0.42
	pts := formation.Generate(shape, count, radius)
	pal := render.MoodPalette("neutral")
	center := size / 2

	var sb strings.Builder
	writeHeader(&sb, size, size)
	for i, pt := range pts {
		hue := float64(i) / float64(len(pts))
		c := pal.Shade(hue, 0.85)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1.6" fill="%s"/>
`, center+pt.X, center+pt.Y, c.Hex()))
	}
	sb.WriteString("</svg>")
	return sb.String()
}

func writeHeader(sb *strings.Builder, width, height float64) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a12"/>
`, width, height, width, height))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
