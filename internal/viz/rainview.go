package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sakshamxt/fringe/internal/config"
	"github.com/sakshamxt/fringe/internal/grid"
	"github.com/sakshamxt/fringe/internal/rain"
)

// RainModel is the Bubble Tea program for the digital-rain animation. The
// cell grid is owned here and passed through Step explicitly; resize
// replaces it with a fresh one seeded identically.
type RainModel struct {
	cfg      *config.Config
	theme    int
	geo      grid.Geometry
	cells    *rain.Grid
	gen      uint64
	running  bool
	showHelp bool
	renderer *Renderer
	rec      *Recorder
}

func NewRain(cfg *config.Config) RainModel {
	return RainModel{
		cfg:      cfg,
		theme:    ThemeIndex(cfg.Theme),
		running:  true,
		renderer: NewRenderer(),
	}
}

func (m RainModel) Init() tea.Cmd { return nil }

func (m RainModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

func (m RainModel) themedParams() rain.Params {
	p := m.cfg.RainParams()
	p.Hue = Themes[m.theme].RainHue
	return p
}

func (m RainModel) rebuild(cols, rows int) (RainModel, tea.Cmd) {
	m.gen++
	m.geo = grid.FromCells(cols, rows)
	m.cells = rain.New(m.geo, m.themedParams(), m.cfg.Seed)
	if m.geo.Empty() {
		return m, nil
	}
	return m, m.tick()
}

func (m RainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.rebuild(msg.Width, msg.Height-1)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.cells = rain.New(m.geo, m.themedParams(), m.cfg.Seed)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			m.cells = rain.New(m.geo, m.themedParams(), m.cfg.Seed)
		case "g":
			if m.rec != nil {
				m.rec.Save("fringe-rain.gif")
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
			m.cells.Step()
		}
		if m.rec != nil && !m.geo.Empty() {
			m.rec.AddRain(m.cells)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m RainModel) View() string {
	if m.geo.Empty() {
		return ""
	}
	if m.showHelp {
		return helpStyle.Render(helpOverlay)
	}
	th := Themes[m.theme]
	state := "running"
	if !m.running {
		state = "paused"
	}
	if m.rec != nil {
		state += " · rec"
	}
	left := lipgloss.NewStyle().Foreground(th.Accent).Render("fringe · rain")
	right := statusStyle.Render(fmt.Sprintf("%s · %s · ? help", state, th.Name))
	return m.renderer.Rain(m.cells) + "\n" + left + "  " + right
}
