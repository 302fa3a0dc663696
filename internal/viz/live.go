package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mcmclab/internal/driver"
	"github.com/san-kum/mcmclab/internal/mcmc"
)

const (
	canvasWidth     = 72
	canvasHeight    = 26
	historyCapacity = 300
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

var samplerKeys = map[string]string{
	"1": "rwmh",
	"2": "hmc",
	"3": "nuts",
	"4": "mala",
	"5": "gibbs",
}

// Model drives the live sampling view: one driver step per tick while
// playing, with the folded snapshot rendered each frame.
type Model struct {
	registry    *driver.Registry
	drv         *driver.Driver
	samplerName string
	targetName  string
	targetNames []string
	start       mcmc.Point
	trailCap    int
	fps         int

	paramKeys []string
	selected  int

	logHistory []float64
	steps      int
}

func NewModel(reg *driver.Registry, drv *driver.Driver, samplerName, targetName string, start mcmc.Point, trailCap, fps int) Model {
	if fps <= 0 {
		fps = 15
	}
	m := Model{
		registry:    reg,
		drv:         drv,
		samplerName: samplerName,
		targetName:  targetName,
		targetNames: reg.ListTargets(),
		start:       start,
		trailCap:    trailCap,
		fps:         fps,
		logHistory:  make([]float64, 0, historyCapacity),
	}
	m.refreshParams()
	drv.Play()
	return m
}

func (m *Model) refreshParams() {
	m.paramKeys = nil
	m.selected = 0
	if t, ok := m.drv.Sampler().(mcmc.Configurable); ok {
		for k := range t.Params() {
			m.paramKeys = append(m.paramKeys, k)
		}
		sort.Strings(m.paramKeys)
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.drv.Toggle()
		case "s":
			if !m.drv.Playing() {
				m.step()
			}
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "t":
			m.cycleTarget()
		default:
			if name, ok := samplerKeys[key]; ok && name != m.samplerName {
				m.switchSampler(name)
			}
		}
	case TickMsg:
		if m.drv.Playing() {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.drv.Step()
	m.steps++

	cur := m.drv.Snapshot().Current
	m.logHistory = append(m.logHistory, m.drv.Target().LogDensity(cur))
	if len(m.logHistory) > historyCapacity {
		m.logHistory = m.logHistory[1:]
	}
}

func (m *Model) reset() {
	m.drv.Reset(m.start)
	m.logHistory = m.logHistory[:0]
	m.steps = 0
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	t, ok := m.drv.Sampler().(mcmc.Configurable)
	if !ok {
		return
	}
	key := m.paramKeys[m.selected]
	val := t.Params()[key]
	if val == 0 {
		val = 1e-6
	}
	t.SetParam(key, val*factor)
}

func (m *Model) cycleTarget() {
	if len(m.targetNames) == 0 {
		return
	}
	idx := 0
	for i, name := range m.targetNames {
		if name == m.targetName {
			idx = (i + 1) % len(m.targetNames)
			break
		}
	}
	m.targetName = m.targetNames[idx]
	if t, err := m.registry.GetTarget(m.targetName); err == nil {
		m.drv.SetTarget(t)
		m.logHistory = m.logHistory[:0]
		m.steps = 0
	}
}

func (m *Model) switchSampler(name string) {
	s, err := m.registry.GetSampler(name)
	if err != nil {
		return
	}
	m.samplerName = name
	m.drv.SetSampler(s)
	m.refreshParams()
	m.logHistory = m.logHistory[:0]
	m.steps = 0
}

// View renders the canvas plus a stats panel.
func (m Model) View() string {
	t := m.drv.Target()
	snap := m.drv.Snapshot()

	canvas := NewCanvas(canvasWidth, canvasHeight, t.Bounds())
	peak := densityPeak(t)
	canvas.Shade(func(p mcmc.Point) float64 {
		if peak == 0 {
			return 0
		}
		return math.Sqrt(t.Density(p) / peak)
	})

	for _, p := range snap.Trail {
		canvas.Plot(p, 'o')
	}
	if len(snap.Trajectory) > 1 {
		canvas.Path(snap.Trajectory, '·')
	}
	if snap.HasLangevin {
		canvas.Segment(snap.Current, snap.LangevinDrift, '>')
	}
	if snap.HasProposal {
		canvas.Plot(snap.Proposal, '?')
	}
	canvas.Plot(snap.Current, '@')

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.samplerName)+" on "+m.targetName) + "\n")

	status := "RUNNING"
	if !m.drv.Playing() {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(row("steps", fmt.Sprintf("%d", m.steps)))
	s.WriteString(row("chain", fmt.Sprintf("%d", len(m.drv.Chain()))))
	s.WriteString(row("samples", fmt.Sprintf("%d", len(snap.Samples))))
	if tr, ok := m.drv.Sampler().(mcmc.AcceptanceTracker); ok {
		s.WriteString(row("accept", fmt.Sprintf("%.1f%%", 100*tr.AcceptanceRate())))
	}
	s.WriteString(row("pos", fmt.Sprintf("(%.2f, %.2f)", snap.Current.X, snap.Current.Y)))
	if snap.AcceptFlash {
		s.WriteString(row("last", "ACCEPT"))
	} else if snap.RejectFlash {
		s.WriteString(row("last", "REJECT"))
	}
	s.WriteString("\n")

	if t, ok := m.drv.Sampler().(mcmc.Configurable); ok {
		params := t.Params()
		for i, key := range m.paramKeys {
			line := fmt.Sprintf("%-10s %.4f", key, params[key])
			if i == m.selected {
				s.WriteString(activeStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString(valueStyle.Render("  "+line) + "\n")
			}
		}
	}

	if len(m.logHistory) > 2 {
		chart := asciigraph.Plot(m.logHistory,
			asciigraph.Height(4), asciigraph.Width(32), asciigraph.Caption("log density"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("space play · s step · r reset · tab/↑↓ tune · 1-5 sampler · t target · q quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(canvas.String()),
		statsStyle.Render(s.String()),
	)
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

// densityPeak samples the density on a coarse grid to normalize the
// background shading.
func densityPeak(t mcmc.Target) float64 {
	b := t.Bounds()
	peak := 0.0
	for i := 0; i < 24; i++ {
		for j := 0; j < 24; j++ {
			p := mcmc.Point{
				X: b.XMin + (float64(i)+0.5)/24*b.Width(),
				Y: b.YMin + (float64(j)+0.5)/24*b.Height(),
			}
			if d := t.Density(p); d > peak {
				peak = d
			}
		}
	}
	return peak
}
