// Package gradient maps scalar simulation quantities to colors through
// configurable HSV gradients, with optional quantization into discrete
// bands and legend-tick derivation for colorbars.
package gradient

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Domain errors for gradient configuration and mapping.
var (
	// ErrUnknownQuantity indicates a quantity with no configured gradient.
	ErrUnknownQuantity = errors.New("gradient: no gradient configured for quantity")

	// ErrNonFinite indicates a NaN or Inf among the values to map.
	ErrNonFinite = errors.New("gradient: non-finite value (NaN or Inf detected)")

	// ErrBadSpec indicates a gradient spec that fails validation.
	ErrBadSpec = errors.New("gradient: invalid gradient spec")
)

// Quantity names a scalar simulation quantity that can be rendered in color.
type Quantity string

// The closed set of renderable quantities.
const (
	None              Quantity = "none"
	Informed          Quantity = "informed"
	Neighbors         Quantity = "neighbors"
	InformedNeighbors Quantity = "informed_neighbors"
	Pressure          Quantity = "pressure"
	Speed             Quantity = "speed"
)

// Quantities lists every known quantity in display order.
var Quantities = []Quantity{None, Informed, Neighbors, InformedNeighbors, Pressure, Speed}

// HSV is a color in hue-saturation-value space. H is in degrees [0, 360),
// S and V in [0, 1].
type HSV struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	V float64 `yaml:"v"`
}

// Color converts to an RGB color.
func (c HSV) Color() colorful.Color {
	return colorful.Hsv(c.H, c.S, c.V)
}

// Continuous marks a gradient with unbounded interpolation resolution.
const Continuous = 0

// Gradient is a bottom→top HSV color ramp over [Lo, Hi]. Steps is either
// Continuous or a band count ≥ 2; with k bands the ramp produces exactly k
// distinct colors, evenly spaced in normalized space and including both
// endpoints. Discrete selects the legend-tick policy: ticks at unit-band
// centers with category labels instead of evenly spaced numeric ticks.
type Gradient struct {
	Bottom   HSV
	Top      HSV
	Steps    int
	Lo       float64
	Hi       float64
	Discrete bool
	Labels   []string // optional category names, Discrete only
}

func (g Gradient) validate() error {
	if g.Steps != Continuous && g.Steps < 2 {
		return fmt.Errorf("%w: steps must be %d (continuous) or >= 2, got %d", ErrBadSpec, Continuous, g.Steps)
	}
	if g.Lo > g.Hi {
		return fmt.Errorf("%w: range lo %g > hi %g", ErrBadSpec, g.Lo, g.Hi)
	}
	for _, v := range []float64{g.Bottom.H, g.Bottom.S, g.Bottom.V, g.Top.H, g.Top.S, g.Top.V, g.Lo, g.Hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite component", ErrBadSpec)
		}
	}
	return nil
}

// colorAt maps one value: clamp to [Lo, Hi], normalize, quantize if banded,
// then interpolate each HSV channel linearly. A degenerate range (Lo == Hi)
// collapses every value to the bottom color.
func (g Gradient) colorAt(v float64) colorful.Color {
	span := g.Hi - g.Lo
	if span == 0 {
		span = 1
	}
	x := (clamp(v, g.Lo, g.Hi) - g.Lo) / span

	if g.Steps >= 2 {
		band := int(math.Floor(x * float64(g.Steps)))
		if band > g.Steps-1 {
			band = g.Steps - 1
		}
		x = float64(band) / float64(g.Steps-1)
	}

	return HSV{
		H: g.Bottom.H + (g.Top.H-g.Bottom.H)*x,
		S: g.Bottom.S + (g.Top.S-g.Bottom.S)*x,
		V: g.Bottom.V + (g.Top.V-g.Bottom.V)*x,
	}.Color()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mapper holds one gradient per configured quantity plus the active
// selection. Configuration is single-writer; concurrent reads are safe once
// configured.
type Mapper struct {
	gradients map[Quantity]Gradient
	active    Quantity
}

// NewMapper returns an empty mapper with no gradients configured.
func NewMapper() *Mapper {
	return &Mapper{gradients: make(map[Quantity]Gradient), active: None}
}

// Set installs or replaces the gradient for q after validating it.
func (m *Mapper) Set(q Quantity, g Gradient) error {
	if err := g.validate(); err != nil {
		return fmt.Errorf("%s: %w", q, err)
	}
	m.gradients[q] = g
	return nil
}

// Select makes q the active quantity.
func (m *Mapper) Select(q Quantity) error {
	if _, ok := m.gradients[q]; !ok {
		return fmt.Errorf("%s: %w", q, ErrUnknownQuantity)
	}
	m.active = q
	return nil
}

// Active returns the currently selected quantity.
func (m *Mapper) Active() Quantity { return m.active }

// Gradient returns the configured gradient for q.
func (m *Mapper) Gradient(q Quantity) (Gradient, error) {
	g, ok := m.gradients[q]
	if !ok {
		return Gradient{}, fmt.Errorf("%s: %w", q, ErrUnknownQuantity)
	}
	return g, nil
}

// ColorsFor maps each value under q's gradient.
func (m *Mapper) ColorsFor(q Quantity, values []float64) ([]colorful.Color, error) {
	g, err := m.Gradient(q)
	if err != nil {
		return nil, err
	}
	out := make([]colorful.Color, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("values[%d]: %w", i, ErrNonFinite)
		}
		out[i] = g.colorAt(v)
	}
	return out, nil
}

// Colormap samples q's gradient at resolution evenly spaced points across
// its range, for rendering a legend bar.
func (m *Mapper) Colormap(q Quantity, resolution int) ([]colorful.Color, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("%w: colormap resolution must be >= 2, got %d", ErrBadSpec, resolution)
	}
	g, err := m.Gradient(q)
	if err != nil {
		return nil, err
	}
	out := make([]colorful.Color, resolution)
	for i := range out {
		v := g.Lo + (g.Hi-g.Lo)*float64(i)/float64(resolution-1)
		out[i] = g.colorAt(v)
	}
	return out, nil
}
