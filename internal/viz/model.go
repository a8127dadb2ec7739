package viz

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/toothsim/internal/driver"
	"github.com/san-kum/toothsim/internal/export"
	"github.com/san-kum/toothsim/internal/params"
	"go.uber.org/zap"
)

const (
	canvasCols      = 72
	canvasRows      = 14
	historyCapacity = 240
)

type (
	startMsg time.Time
	tickMsg  time.Time
)

type Options struct {
	Ticker       *driver.Ticker
	FPS          int
	StartupDelay time.Duration
	ExportDir    string
	Logger       *zap.Logger
}

// Model is the interactive jaw view.
type Model struct {
	ticker    *driver.Ticker
	staged    params.State
	selected  int
	started   bool
	paused    bool
	interval  time.Duration
	startup   time.Duration
	frame     driver.Frame
	history   []float64
	gauge     forceGauge
	gaugeVal  float64
	canvas    *Canvas
	keys      keyMap
	help      help.Model
	exportDir string
	status    string
	termW     int
	termH     int
	log       *zap.Logger
}

func NewModel(opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		ticker:    opts.Ticker,
		interval:  time.Second / time.Duration(fps),
		startup:   opts.StartupDelay,
		history:   make([]float64, 0, historyCapacity),
		gauge:     newForceGauge(fps),
		canvas:    NewCanvas(canvasCols, canvasRows),
		keys:      defaultKeyMap(),
		help:      help.New(),
		exportDir: opts.ExportDir,
		log:       log.Named("viz"),
	}
	if m.ticker != nil {
		m.staged = m.ticker.Params()
		m.frame = m.ticker.Advance(0)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.ticker == nil {
		return nil
	}
	return tea.Tick(m.startup, func(t time.Time) tea.Msg { return startMsg(t) })
}

func (m Model) nextTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The row keeps its layout; only the help width follows the terminal.
		m.termW, m.termH = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case startMsg:
		if m.ticker == nil {
			return m, nil
		}
		m.ticker.Start(time.Time(msg))
		m.started = true
		return m, m.nextTick()
	case tickMsg:
		if m.ticker == nil {
			return m, nil
		}
		now := time.Time(msg)
		if m.paused {
			m.ticker.Start(now)
		} else {
			m.advance(m.ticker.Tick(now))
		}
		return m, m.nextTick()
	}
	return m, nil
}

func (m *Model) advance(f driver.Frame) {
	m.frame = f
	if n := len(f.Positions); n > 0 {
		b, err := m.ticker.Simulation().Body(n / 2)
		if err == nil {
			m.history = append(m.history, f.Positions[n/2].X-b.Base.X)
		}
		if len(m.history) > historyCapacity {
			m.history = m.history[len(m.history)-historyCapacity:]
		}
	}
	r := params.Ranges["force"]
	m.gaugeVal = m.gauge.step(m.ticker.Params().ForceN / r.Max)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case m.ticker == nil:
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.selected = (m.selected + len(params.Names) - 1) % len(params.Names)
	case key.Matches(msg, m.keys.Down):
		m.selected = (m.selected + 1) % len(params.Names)
	case key.Matches(msg, m.keys.Left):
		m.nudge(-1)
	case key.Matches(msg, m.keys.Right):
		m.nudge(1)
	case key.Matches(msg, m.keys.Commit):
		m.ticker.Apply(driver.Input{Raw: m.staged.Raw(), Commit: true})
		m.history = m.history[:0]
		m.frame = m.ticker.Advance(0)
		m.status = fmt.Sprintf("%d teeth", m.frame.Teeth)
	case key.Matches(msg, m.keys.Reset):
		m.ticker.Reset()
		m.history = m.history[:0]
		m.frame = m.ticker.Advance(0)
		m.status = "reset"
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Export):
		m.status = m.export()
	}
	return m, nil
}

// nudge edits the selected parameter. Continuous parameters take effect
// immediately; the tooth count is staged until committed.
func (m *Model) nudge(steps int) {
	name := params.Names[m.selected]
	if _, err := m.staged.Nudge(name, steps); err != nil {
		m.log.Warn("nudge failed", zap.String("param", name), zap.Error(err))
		return
	}
	if name == "teeth" {
		return
	}
	raw := m.staged.Raw()
	raw.TeethCount = m.ticker.Simulation().Len()
	m.ticker.Apply(driver.Input{Raw: raw})
}

func (m Model) export() string {
	name := fmt.Sprintf("toothsim_%s.svg", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.exportDir, name)
	w, h := m.ticker.Layout()
	if err := export.WriteFrame(path, m.frame.Positions, w, h); err != nil {
		m.log.Error("export failed", zap.String("path", path), zap.Error(err))
		return "export failed: " + err.Error()
	}
	m.log.Info("frame exported", zap.String("path", path))
	return "saved " + path
}

func (m Model) View() string {
	if m.ticker == nil {
		return ""
	}
	var b strings.Builder

	state := runningStyle.Render("● running")
	if m.paused {
		state = pausedStyle.Render("❚❚ paused")
	} else if !m.started {
		state = subtleStyle.Render("… starting")
	}
	b.WriteString(titleStyle.Render("TOOTHSIM") + "  " + state + "\n")
	b.WriteString(subtleStyle.Render("force on a row of teeth") + "\n\n")

	b.WriteString(canvasStyle.Render(m.drawRow()) + "\n")
	b.WriteString(infoStyle.Render(m.frame.Info) + "\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewParams(), "   ", m.viewGraph()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(subtleStyle.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) drawRow() string {
	m.canvas.Clear()
	w, h := m.ticker.Layout()
	proj := NewProjection(m.canvas, w, h)
	sim := m.ticker.Simulation()
	m.canvas.DrawJaw(proj, sim.Positions(0))
	for _, pos := range m.frame.Positions {
		m.canvas.DrawTooth(proj, pos)
	}
	return m.canvas.String()
}

func (m Model) viewParams() string {
	var b strings.Builder
	staged := m.staged.Params()
	for i, name := range params.Names {
		val := formatParam(name, staged[name])
		if name == "teeth" && int(staged[name]) != m.frame.Teeth {
			val += stagedStyle.Render(" (enter)")
		}
		label := labelStyle.Render(name)
		if i == m.selected {
			b.WriteString(activeParamStyle.Render("▸ ") + label + activeParamStyle.Render(val))
		} else {
			b.WriteString("  " + label + valueStyle.Render(val))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n  " + labelStyle.Render("force") + GaugeBar(m.gaugeVal, 20))
	return b.String()
}

func formatParam(name string, v float64) string {
	switch name {
	case "force":
		return fmt.Sprintf("%.1f N", v)
	case "angle":
		return fmt.Sprintf("%.0f°", v)
	case "damping":
		return fmt.Sprintf("%.2f", v)
	case "teeth":
		return fmt.Sprintf("%d", int(v))
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

func (m Model) viewGraph() string {
	if len(m.history) < 2 {
		return subtleStyle.Render("waiting for motion…")
	}
	graph := asciigraph.Plot(m.history,
		asciigraph.Height(6),
		asciigraph.Width(40),
		asciigraph.Caption("centre tooth x offset"),
	)
	return graphStyle.Render(graph)
}

// Run starts the interactive view in the alternate screen.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}
