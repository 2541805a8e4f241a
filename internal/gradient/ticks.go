package gradient

import "strconv"

// continuousTickCount is the fixed number of legend ticks for continuous
// quantities.
const continuousTickCount = 5

// Tick is one legend mark: a position in the quantity's value range and its
// label.
type Tick struct {
	Value float64
	Label string
}

// LegendTicks derives colorbar ticks for q. Discrete-category gradients get
// one tick at the center of each unit band (lo+0.5, lo+1.5, ...), labeled
// with the configured category name or the category value. Continuous
// gradients get evenly spaced numeric ticks across the range.
func (m *Mapper) LegendTicks(q Quantity) ([]Tick, error) {
	g, err := m.Gradient(q)
	if err != nil {
		return nil, err
	}

	if g.Discrete {
		bands := int(g.Hi - g.Lo)
		ticks := make([]Tick, 0, bands)
		for k := 0; k < bands; k++ {
			label := strconv.Itoa(int(g.Lo) + k)
			if k < len(g.Labels) {
				label = g.Labels[k]
			}
			ticks = append(ticks, Tick{Value: g.Lo + float64(k) + 0.5, Label: label})
		}
		return ticks, nil
	}

	ticks := make([]Tick, continuousTickCount)
	for i := range ticks {
		v := g.Lo + (g.Hi-g.Lo)*float64(i)/float64(continuousTickCount-1)
		ticks[i] = Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 4, 64)}
	}
	return ticks, nil
}
