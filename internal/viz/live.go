package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wirecube/internal/anim"
)

const historyCapacity = 120

var (
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the cube renderer under Bubble Tea: the render loop's
// clear/emit cycle is replaced by the tick/View pair, everything else
// is the same pipeline.
type Model struct {
	loop       *anim.Loop
	frame      string
	running    bool
	showHelp   bool
	frameTimes []float64
	frames     int
}

func NewModel(loop *anim.Loop) Model {
	return Model{
		loop:       loop,
		frame:      loop.Frame(),
		running:    true,
		frameTimes: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.loop.Delay(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.loop.SetAngle(0)
			m.frame = m.loop.Frame()
		case "+", "=":
			m.loop.SetIncrement(m.loop.Increment() * 1.25)
		case "-", "_":
			m.loop.SetIncrement(m.loop.Increment() * 0.8)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			start := time.Now()
			m.frame = m.loop.Frame()
			m.loop.Advance()
			m.frames++

			ms := float64(time.Since(start).Microseconds()) / 1000
			m.frameTimes = append(m.frameTimes, ms)
			if len(m.frameTimes) > historyCapacity {
				m.frameTimes = m.frameTimes[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder

	status := ""
	if !m.running {
		status = "  " + pausedStyle.Render("PAUSED")
	}
	s.WriteString(headerStyle.Render("WIRECUBE") + status + "\n")

	s.WriteString(canvasStyle.Render(strings.TrimSuffix(m.frame, "\n")) + "\n")

	s.WriteString(labelStyle.Render("Angle") + valueStyle.Render(fmt.Sprintf("%.3f rad", m.loop.Angle())) + "\n")
	s.WriteString(labelStyle.Render("Spin") + valueStyle.Render(fmt.Sprintf("%.4f rad/frame", m.loop.Increment())) + "\n")
	s.WriteString(labelStyle.Render("Frames") + valueStyle.Render(fmt.Sprintf("%d", m.frames)) + "\n")

	if len(m.frameTimes) > 1 {
		chart := asciigraph.Plot(m.frameTimes,
			asciigraph.Height(4),
			asciigraph.Width(40),
			asciigraph.Caption("render time (ms)"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.showHelp {
		s.WriteString(helpStyle.Render("space pause · r reset · +/- spin speed · ? help · q quit") + "\n")
	} else {
		s.WriteString(helpStyle.Render("? for help") + "\n")
	}

	return s.String()
}
