// Package replay plays a recorded run back in the terminal, stepping a
// continuous query time across the recorded span and coloring agents by the
// selected quantity.
package replay

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/crowdviz/internal/gradient"
	"github.com/san-kum/crowdviz/internal/trajectory"
	"github.com/san-kum/crowdviz/internal/viz"
)

type tickMsg time.Time

// Player is the bubbletea model for run playback.
type Player struct {
	store    *trajectory.Store
	mapper   *gradient.Mapper
	quantity gradient.Quantity
	view     trajectory.Rect
	fps      int

	t, t0, t1 float64
	playing   bool
	width     int
	height    int
}

// New builds a player over st. The view rectangle seeds the world-to-canvas
// projection; fps is the playback frame rate in simulation seconds per
// wall-clock second.
func New(st *trajectory.Store, m *gradient.Mapper, q gradient.Quantity, view trajectory.Rect, fps int) (*Player, error) {
	if err := m.Select(q); err != nil {
		return nil, err
	}
	if _, err := ValuesAt(st, q, firstTime(st)); err != nil {
		return nil, err
	}
	if fps <= 0 {
		fps = 30
	}
	t0, t1 := st.TimeSpan()
	return &Player{
		store:    st,
		mapper:   m,
		quantity: q,
		view:     view,
		fps:      fps,
		t:        t0,
		t0:       t0,
		t1:       t1,
		playing:  true,
		width:    80,
		height:   24,
	}, nil
}

func firstTime(st *trajectory.Store) float64 {
	t0, _ := st.TimeSpan()
	return t0
}

// Run starts the playback program and blocks until it exits.
func Run(p *Player) error {
	_, err := tea.NewProgram(p, tea.WithAltScreen()).Run()
	return err
}

func (p *Player) Init() tea.Cmd {
	return p.tick()
}

func (p *Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ", "space":
			p.playing = !p.playing
		case "r":
			p.t = p.t0
		case "left":
			p.scrub(-1)
		case "right":
			p.scrub(1)
		}
		return p, nil

	case tickMsg:
		if p.playing {
			p.t += 1.0 / float64(p.fps)
			if p.t > p.t1 {
				p.t = p.t0
			}
		}
		return p, p.tick()
	}
	return p, nil
}

// scrub jumps by 1% of the recorded span, clamped to it.
func (p *Player) scrub(dir int) {
	step := (p.t1 - p.t0) / 100
	p.t += float64(dir) * step
	if p.t < p.t0 {
		p.t = p.t0
	}
	if p.t > p.t1 {
		p.t = p.t1
	}
}

func (p *Player) View() string {
	canvasW := p.width - 4
	canvasH := p.height - 7
	if canvasW < 10 {
		canvasW = 10
	}
	if canvasH < 5 {
		canvasH = 5
	}
	canvas := viz.NewCanvas(canvasW, canvasH)

	pos, err := p.store.PositionsAt(p.t)
	if err != nil {
		return fmt.Sprintf("query failed: %v\n", err)
	}
	values, err := ValuesAt(p.store, p.quantity, p.t)
	if err != nil {
		return fmt.Sprintf("query failed: %v\n", err)
	}
	colors, err := p.mapper.ColorsFor(p.quantity, values)
	if err != nil {
		return fmt.Sprintf("color mapping failed: %v\n", err)
	}

	for i, pt := range pos {
		canvas.Plot(p.view, pt, colors[i].Hex())
	}

	legend, err := viz.Legend(p.mapper, p.quantity, min(canvasW, 48))
	if err != nil {
		return fmt.Sprintf("legend failed: %v\n", err)
	}

	status := viz.StatusRunning.Render("playing")
	if !p.playing {
		status = viz.StatusPaused.Render("paused")
	}

	header := viz.TitleStyle.Render(fmt.Sprintf("crowdviz · %s", p.quantity))
	footer := fmt.Sprintf("%s  t=%.2f / %.2f  %s",
		status, p.t, p.t1,
		viz.KeyHint.Render("space pause · ←/→ scrub · r restart · q quit"))

	return header + "\n" + viz.PanelStyle.Render(canvas.String()) + "\n" + legend + "\n" + footer + "\n"
}
