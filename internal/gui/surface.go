package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

var colBg = rl.NewColor(10, 10, 18, 255)

// Surface renders engine frames through raylib. All calls must land
// between BeginDrawing and EndDrawing, which the run loop guarantees by
// ticking the engine inside the frame.
type Surface struct{}

func (Surface) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// Fade draws a translucent background rectangle instead of clearing, so
// the previous frame bleeds through as a motion trail.
func (Surface) Fade(keep float64) {
	if keep <= 0 {
		rl.ClearBackground(colBg)
		return
	}
	if keep > 1 {
		keep = 1
	}
	overlay := colBg
	overlay.A = uint8((1 - keep) * 255)
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), overlay)
}

func (Surface) Dot(x, y, size float64, c colorful.Color, alpha float64, gradient bool) {
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b := c.RGB255()
	col := rl.NewColor(r, g, b, uint8(alpha*255))
	px, py := float32(x), float32(y)
	radius := float32(size) * 2.2
	if radius < 1 {
		radius = 1
	}
	if gradient {
		inner := col
		outer := col
		outer.A = 0
		rl.DrawCircleGradient(int32(px), int32(py), radius*2, inner, outer)
	} else {
		rl.DrawCircleV(rl.NewVector2(px, py), radius, col)
	}
}

func (Surface) Grid(spacing int, brightness float64) {
	if spacing < 1 {
		return
	}
	if brightness > 1 {
		brightness = 1
	}
	col := rl.NewColor(90, 110, 140, uint8(brightness*70))
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	for x := 0; x < w; x += spacing {
		rl.DrawLine(int32(x), 0, int32(x), int32(h), col)
	}
	for y := 0; y < h; y += spacing {
		rl.DrawLine(0, int32(y), int32(w), int32(y), col)
	}
}

func (Surface) Err() error { return nil }
