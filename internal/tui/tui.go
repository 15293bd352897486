// Package tui is the terminal front-end: a bubbletea program that drives
// the engine at ~60Hz and renders the swarm to a braille canvas with a
// lipgloss status panel alongside.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/swarmfield/internal/config"
	"github.com/san-kum/swarmfield/internal/engine"
	"github.com/san-kum/swarmfield/internal/formation"
	"github.com/san-kum/swarmfield/internal/render"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

const (
	panelWidth  = 28
	frameWindow = 120
)

var shapeKeys = map[string]formation.Shape{
	"s": formation.Sphere,
	"c": formation.Cube,
	"t": formation.Torus,
	"w": formation.Whirlpool,
	"g": formation.Galaxy,
	"r": formation.Ring,
	"n": formation.Panel,
}

type Model struct {
	eng    *engine.Engine
	cfg    *config.Config
	canvas *render.Canvas

	paused    bool
	lastFrame time.Time
	frameHist []float64 // ms
	fps       float64
	moodIdx   int
	err       error

	width  int
	height int
}

// New builds the TUI model and its engine against an initial canvas.
func New(cfg *config.Config, seed int64) (*Model, error) {
	canvas := render.NewCanvas(80, 24)
	eng, err := engine.New(canvas, engine.Options{Config: cfg, Seed: seed})
	if err != nil {
		return nil, err
	}
	return &Model{
		eng:       eng,
		cfg:       cfg,
		canvas:    canvas,
		frameHist: make([]float64, 0, frameWindow),
		width:     80,
		height:    24,
	}, nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeCanvas()
		return m, nil
	case tickMsg:
		if m.paused {
			m.lastFrame = time.Time{}
			return m, tick()
		}
		now := time.Now()
		dt := 1.0 / 60
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame).Seconds()
		}
		m.lastFrame = now
		if dt > 0 {
			m.fps = 1.0 / dt
		}
		if err := m.eng.Tick(dt); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.frameHist = append(m.frameHist, dt*1000)
		if len(m.frameHist) > frameWindow {
			m.frameHist = m.frameHist[1:]
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if shape, ok := shapeKeys[key]; ok {
		m.eng.Morph(shape)
		return m, nil
	}
	switch key {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case "x":
		m.eng.DissolveToSwarm()
	case " ":
		m.eng.TriggerPulse(1.0)
	case "m":
		moods := render.Moods()
		m.moodIdx = (m.moodIdx + 1) % len(moods)
		m.eng.UpdateFieldMode(moods[m.moodIdx])
	case "z":
		m.eng.SetReducedMotion(!m.eng.ReducedMotion())
	case "o":
		m.eng.SetProcessing(true)
	case "O":
		m.eng.SetProcessing(false)
	case "p":
		m.paused = !m.paused
	}
	return m, nil
}

// resizeCanvas swaps in a canvas fitted to the terminal minus the panel.
func (m *Model) resizeCanvas() {
	cols := m.width - panelWidth - 3
	rows := m.height - 2
	if cols < 20 {
		cols = 20
	}
	if rows < 8 {
		rows = 8
	}
	m.canvas = render.NewCanvas(cols, rows)
	if err := m.eng.Resume(m.canvas); err != nil {
		m.err = err
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return red.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}
	field := m.canvas.String()
	panel := m.viewPanel()
	body := lipgloss.JoinHorizontal(lipgloss.Top, field, "  ", panel)
	help := dim.Render(" s/c/t/w/g/r/n shape  x dissolve  space pulse  m mood  z motion  p pause  q quit")
	return body + "\n" + help
}

func (m *Model) viewPanel() string {
	var b strings.Builder

	b.WriteString(cyan.Render("swarmfield") + "\n")
	b.WriteString(dimmer.Render(strings.Repeat("─", panelWidth-4)) + "\n\n")

	status := green.Render("● live")
	if m.paused {
		status = yellow.Render("○ paused")
	}
	b.WriteString(status + "\n\n")

	b.WriteString(row("shape", white.Render(string(m.eng.Shape()))))
	b.WriteString(row("state", white.Render(m.eng.State().String())))
	b.WriteString(row("morph", m.progressBar()))
	b.WriteString(row("mood", white.Render(m.eng.Mood())))
	b.WriteString("\n")

	tier := m.eng.Tier()
	b.WriteString(row("tier", white.Render(fmt.Sprintf("%d", m.eng.TierIndex()))))
	b.WriteString(row("particles", white.Render(fmt.Sprintf("%d", m.eng.ParticleCount()))))
	b.WriteString(row("trails", onOff(tier.Trails && !m.eng.ReducedMotion())))
	b.WriteString(row("fps", white.Render(fmt.Sprintf("%.0f", m.fps))))
	b.WriteString(row("pulse", m.pulseBar()))
	if m.eng.ReducedMotion() {
		b.WriteString(yellow.Render("  reduced motion") + "\n")
	}

	if len(m.frameHist) > 8 {
		chart := asciigraph.Plot(m.frameHist,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-8),
			asciigraph.Caption("frame ms"))
		b.WriteString("\n" + dim.Render(chart) + "\n")
	}

	return b.String()
}

func row(label, value string) string {
	return fmt.Sprintf("  %s %s\n", dim.Render(fmt.Sprintf("%-10s", label)), value)
}

func onOff(on bool) string {
	if on {
		return green.Render("on")
	}
	return dimmer.Render("off")
}

func (m *Model) progressBar() string {
	const w = 10
	filled := int(m.eng.Progress() * w)
	if filled > w {
		filled = w
	}
	return cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", w-filled))
}

func (m *Model) pulseBar() string {
	const w = 10
	filled := int(m.eng.Pulse() * w)
	if filled > w {
		filled = w
	}
	return yellow.Render(strings.Repeat("█", filled)) + dimmer.Render(strings.Repeat("░", w-filled))
}

// Run starts the interactive terminal session.
func Run(cfg *config.Config, seed int64) error {
	m, err := New(cfg, seed)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	if err != nil {
		return err
	}
	return m.err
}
