package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/crowdviz/internal/gradient"
)

// Legend renders a horizontal colorbar for q with its tick labels beneath,
// width cells wide.
func Legend(m *gradient.Mapper, q gradient.Quantity, width int) (string, error) {
	if width < 2 {
		width = 2
	}
	cm, err := m.Colormap(q, width)
	if err != nil {
		return "", err
	}
	ticks, err := m.LegendTicks(q)
	if err != nil {
		return "", err
	}
	g, err := m.Gradient(q)
	if err != nil {
		return "", err
	}

	var bar strings.Builder
	for _, c := range cm {
		bar.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"))
	}

	// Place each label at its tick's proportional column.
	span := g.Hi - g.Lo
	labels := make([]rune, width)
	for i := range labels {
		labels[i] = ' '
	}
	for _, tick := range ticks {
		col := 0
		if span > 0 {
			col = int((tick.Value - g.Lo) / span * float64(width-1))
		}
		for i, r := range tick.Label {
			at := col + i
			if at >= width {
				break
			}
			labels[at] = r
		}
	}

	return bar.String() + "\n" + Subtle.Render(strings.TrimRight(string(labels), " ")), nil
}
