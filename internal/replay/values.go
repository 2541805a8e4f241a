package replay

import (
	"errors"
	"fmt"

	"github.com/san-kum/crowdviz/internal/gradient"
	"github.com/san-kum/crowdviz/internal/trajectory"
)

// ErrNotDerivable indicates a quantity whose per-agent values cannot be
// reconstructed from the recorded series alone. Informed-state quantities
// live inside the engine's opaque information payloads; their values must
// be colored upstream.
var ErrNotDerivable = errors.New("replay: quantity not derivable from recorded series")

// ValuesAt returns the per-agent scalar field for q at time t.
func ValuesAt(st *trajectory.Store, q gradient.Quantity, t float64) ([]float64, error) {
	switch q {
	case gradient.None:
		return make([]float64, st.AgentCount()), nil
	case gradient.Pressure:
		return st.PressureAt(t)
	case gradient.Speed:
		return st.SpeedAt(t)
	case gradient.Neighbors:
		adj, err := st.AdjacencyNear(t)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(adj))
		for i, row := range adj {
			for _, w := range row {
				if w != 0 {
					out[i]++
				}
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: %w", q, ErrNotDerivable)
	}
}
