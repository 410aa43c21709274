package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sakshamxt/fringe/internal/config"
	"github.com/sakshamxt/fringe/internal/field"
	"github.com/sakshamxt/fringe/internal/grid"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// TickMsg carries the generation it was scheduled under; a tick from a
// stale generation is dropped without rescheduling.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

const helpOverlay = `
  space  pause / resume
  r      reset the clock
  t      cycle themes
  g      toggle gif recording
  ?      close this help
  q      quit
`

// WaveModel is the Bubble Tea program for the interference animation. All
// grid state derives from the last window size; a resize replaces it
// wholesale and restarts the clock.
type WaveModel struct {
	cfg      *config.Config
	theme    int
	geo      grid.Geometry
	model    *field.Model
	clock    float64
	gen      uint64
	running  bool
	showHelp bool
	renderer *Renderer
	rec      *Recorder
}

// NewWave builds the program model; the grid stays empty until the first
// WindowSizeMsg arrives.
func NewWave(cfg *config.Config) WaveModel {
	return WaveModel{
		cfg:      cfg,
		theme:    ThemeIndex(cfg.Theme),
		running:  true,
		renderer: NewRenderer(),
	}
}

func (m WaveModel) Init() tea.Cmd { return nil }

func (m WaveModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

func (m WaveModel) themedParams() field.Params {
	p := m.cfg.FieldParams()
	th := Themes[m.theme]
	p.HuePositive = th.HuePositive
	p.HueNegative = th.HueNegative
	return p
}

// rebuild replaces every geometry-derived structure and resets the clock.
// Bumping the generation first orphans any tick still in flight.
func (m WaveModel) rebuild(cols, rows int) (WaveModel, tea.Cmd) {
	m.gen++
	m.clock = 0
	m.geo = grid.FromCells(cols, rows)
	m.model = field.New(m.geo, m.themedParams())
	if m.geo.Empty() {
		return m, nil
	}
	return m, m.tick()
}

func (m WaveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.rebuild(msg.Width, msg.Height-1) // one row reserved for status
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.clock = 0
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			// same geometry, so caches are rebuilt identically; keep the clock
			m.model = field.New(m.geo, m.themedParams())
		case "g":
			if m.rec != nil {
				m.rec.Save("fringe.gif")
				m.rec = nil
			} else {
				m.rec = NewRecorder(m.cfg.FPS)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if m.running {
			m.clock += m.cfg.TickIncrement
		}
		if m.rec != nil && !m.geo.Empty() {
			m.rec.AddWave(m.model, m.clock)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m WaveModel) status() string {
	th := Themes[m.theme]
	state := "running"
	if !m.running {
		state = "paused"
	}
	if m.rec != nil {
		state += " · rec"
	}
	left := lipgloss.NewStyle().Foreground(th.Accent).Render("fringe · wave · " + m.model.Orientation.String())
	right := statusStyle.Render(fmt.Sprintf("%s · t=%.1f · %s · ? help", state, m.clock, th.Name))
	return left + "  " + right
}

func (m WaveModel) View() string {
	if m.geo.Empty() {
		return ""
	}
	if m.showHelp {
		return helpStyle.Render(helpOverlay)
	}
	return m.renderer.Wave(m.model, m.clock) + "\n" + m.status()
}
