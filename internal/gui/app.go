// Package gui is the raylib front-end: a 60fps window driving the engine
// with real frame times, with the same key bindings as the terminal UI.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/swarmfield/internal/config"
	"github.com/san-kum/swarmfield/internal/engine"
	"github.com/san-kum/swarmfield/internal/formation"
	"github.com/san-kum/swarmfield/internal/render"
)

var (
	colText    = rl.NewColor(150, 160, 175, 255)
	colTextDim = rl.NewColor(70, 76, 88, 255)
	colAccent  = rl.NewColor(120, 200, 220, 255)
	colWarn    = rl.NewColor(230, 200, 90, 255)
)

type App struct {
	eng     *engine.Engine
	paused  bool
	moodIdx int
}

// Run opens the window and blocks until it closes.
func Run(cfg *config.Config, seed int64) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "swarmfield")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	eng, err := engine.New(Surface{}, engine.Options{Config: cfg, Seed: seed})
	if err != nil {
		return err
	}
	app := &App{eng: eng}

	for !rl.WindowShouldClose() {
		if app.handleKeys() {
			return nil
		}
		if rl.IsWindowResized() {
			eng.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}

		rl.BeginDrawing()
		if app.paused {
			rl.ClearBackground(colBg)
		} else {
			if err := eng.Tick(float64(rl.GetFrameTime())); err != nil {
				rl.EndDrawing()
				return err
			}
		}
		app.drawHUD()
		rl.EndDrawing()
	}
	return nil
}

var guiShapeKeys = []struct {
	key   int32
	shape formation.Shape
}{
	{rl.KeyS, formation.Sphere},
	{rl.KeyC, formation.Cube},
	{rl.KeyT, formation.Torus},
	{rl.KeyW, formation.Whirlpool},
	{rl.KeyG, formation.Galaxy},
	{rl.KeyR, formation.Ring},
	{rl.KeyN, formation.Panel},
}

func (a *App) handleKeys() (quit bool) {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return true
	}
	for _, sk := range guiShapeKeys {
		if rl.IsKeyPressed(sk.key) {
			a.eng.Morph(sk.shape)
		}
	}
	if rl.IsKeyPressed(rl.KeyX) {
		a.eng.DissolveToSwarm()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.eng.TriggerPulse(1.0)
	}
	if rl.IsKeyPressed(rl.KeyM) {
		moods := render.Moods()
		a.moodIdx = (a.moodIdx + 1) % len(moods)
		a.eng.UpdateFieldMode(moods[a.moodIdx])
	}
	if rl.IsKeyPressed(rl.KeyZ) {
		a.eng.SetReducedMotion(!a.eng.ReducedMotion())
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.paused = !a.paused
	}
	return false
}

func (a *App) drawHUD() {
	e := a.eng
	y := int32(12)
	line := func(s string, col rl.Color) {
		rl.DrawText(s, 14, y, 18, col)
		y += 22
	}

	line("swarmfield", colAccent)
	line(fmt.Sprintf("%s  %s  %.0f%%", e.Shape(), e.State(), e.Progress()*100), colText)
	line(fmt.Sprintf("tier %d  %d particles", e.TierIndex(), e.ParticleCount()), colText)
	line(fmt.Sprintf("%.0f fps  pulse %.2f  %s", float64(rl.GetFPS()), e.Pulse(), e.Mood()), colTextDim)
	if a.paused {
		line("paused", colWarn)
	}
	if e.ReducedMotion() {
		line("reduced motion", colWarn)
	}

	help := "s/c/t/w/g/r/n shape  x dissolve  space pulse  m mood  z motion  p pause  q quit"
	rl.DrawText(help, 14, int32(rl.GetScreenHeight())-26, 16, colTextDim)
}
