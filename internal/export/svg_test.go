package export

import (
	"strings"
	"testing"

	"github.com/san-kum/swarmfield/internal/formation"
	"github.com/san-kum/swarmfield/internal/particle"
	"github.com/san-kum/swarmfield/internal/render"
)

func TestSnapshotToSVG(t *testing.T) {
	particles := []particle.Particle{
		{X: 10, Y: 20, Hue: 0.3, Alpha: 1, Size: 1.2},
		{X: 30, Y: 40, Hue: 0.7, Alpha: 0.5, Size: 0.8},
		{X: 50, Y: 60, Hue: 0.1, Alpha: 0, Size: 1}, // invisible, skipped
	}
	svg := SnapshotToSVG(particles, particle.Bounds{W: 100, H: 80}, render.MoodPalette("calm"), 2)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, `width="200" height="160"`) {
		t.Errorf("scaled dimensions missing:\n%s", svg[:200])
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("circle count = %d, want 2 (alpha 0 skipped)", got)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated SVG document")
	}
}

func TestSnapshotToSVGBadScale(t *testing.T) {
	svg := SnapshotToSVG(nil, particle.Bounds{W: 64, H: 48}, render.MoodPalette("neutral"), 0)
	if !strings.Contains(svg, `width="64" height="48"`) {
		t.Error("zero scale should fall back to 1")
	}
}

func TestFormationToSVG(t *testing.T) {
	for _, shape := range formation.Shapes() {
		svg := FormationToSVG(shape, 48, 256)
		if got := strings.Count(svg, "<circle"); got != 48 {
			t.Errorf("%s: circle count = %d, want 48", shape, got)
		}
		if !strings.Contains(svg, `viewBox="0 0 256 256"`) {
			t.Errorf("%s: viewBox missing", shape)
		}
	}
}
