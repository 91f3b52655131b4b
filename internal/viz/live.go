package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/simone/internal/analysis"
	"github.com/san-kum/simone/internal/curve"
	"github.com/san-kum/simone/internal/simone"
)

const (
	canvasWidth  = 60
	canvasHeight = 22
	paramStep    = 0.1
)

type TickMsg time.Time

// Model animates a curve evolution frame by frame. The whole sequence
// is recomputed whenever a parameter changes; runs are small enough
// that this stays well under a frame budget.
type Model struct {
	shape      curve.Shape
	nPoints    int
	par        simone.Params
	iterations int
	fps        int

	seq     [][]simone.Point
	bounds  analysis.Bounds
	spreads []float64
	frame   int
	playing bool
	err     error

	canvas *Canvas
}

// NewModel computes the initial curve evolution and returns the
// animation model.
func NewModel(shape curve.Shape, nPoints int, par simone.Params, iterations, fps int) (Model, error) {
	m := Model{
		shape:      shape,
		nPoints:    nPoints,
		par:        par,
		iterations: iterations,
		fps:        fps,
		playing:    true,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
	}
	if err := m.recompute(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// recompute rebuilds the sequence, frame bounds, and per-frame spread.
func (m *Model) recompute() error {
	seq, err := curve.EvolveShape(m.shape, m.nPoints, m.par, m.iterations)
	if err != nil {
		return err
	}
	m.seq = seq
	m.frame = 0

	// Stable axes across the whole run: union of all frame bounds.
	all := make([]simone.Point, 0, len(seq)*m.nPoints)
	for _, snap := range seq {
		all = append(all, snap...)
	}
	m.bounds = analysis.BoundsOf(all)

	m.spreads = m.spreads[:0]
	for _, snap := range seq {
		b := analysis.BoundsOf(snap)
		m.spreads = append(m.spreads, b.RangeX()+b.RangeY())
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	fps := m.fps
	if fps <= 0 {
		fps = 4
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "right", "l":
			m.playing = false
			m.frame = (m.frame + 1) % len(m.seq)
		case "left", "h":
			m.playing = false
			m.frame = (m.frame + len(m.seq) - 1) % len(m.seq)
		case "r":
			m.frame = 0
		case "a":
			m.adjust(-paramStep, 0)
		case "A":
			m.adjust(paramStep, 0)
		case "b":
			m.adjust(0, -paramStep)
		case "B":
			m.adjust(0, paramStep)
		}
	case TickMsg:
		if m.playing && len(m.seq) > 1 {
			m.frame = (m.frame + 1) % len(m.seq)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) adjust(da, db float64) {
	m.par.A += da
	m.par.B += db
	m.err = m.recompute()
}

func (m Model) View() string {
	m.canvas.Clear()
	if m.frame < len(m.seq) {
		m.canvas.PlotPoints(m.seq[m.frame], m.bounds)
	}
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("CURVE EVOLUTION") + "\n")

	status := "PLAYING"
	if !m.playing {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Shape") + valueStyle.Render(m.shape.Name()) + "\n")
	s.WriteString(labelStyle.Render("Points") + valueStyle.Render(fmt.Sprintf("%d", m.nPoints)) + "\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d / %d", m.frame, len(m.seq)-1)) + "\n")
	s.WriteString(labelStyle.Render("a") + valueStyle.Render(fmt.Sprintf("%.2f", m.par.A)) + "\n")
	s.WriteString(labelStyle.Render("b") + valueStyle.Render(fmt.Sprintf("%.2f", m.par.B)) + "\n")

	if len(m.spreads) > 1 {
		chart := asciigraph.Plot(m.spreads,
			asciigraph.Height(4),
			asciigraph.Width(28),
			asciigraph.Caption("spread per frame"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause ←→:Step R:Rewind\na/A b/B:Tune params Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}
