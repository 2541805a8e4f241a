package trajectory

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// PositionsAt returns each agent's interpolated position at time t.
func (st *Store) PositionsAt(t float64) ([]Vec2, error) {
	return st.vecAt("positions", st.pos, t)
}

// VelocitiesAt returns each agent's interpolated velocity at time t.
func (st *Store) VelocitiesAt(t float64) ([]Vec2, error) {
	return st.vecAt("velocities", st.vel, t)
}

// AccelerationsAt returns each agent's interpolated acceleration at time t.
func (st *Store) AccelerationsAt(t float64) ([]Vec2, error) {
	return st.vecAt("accelerations", st.acc, t)
}

func (st *Store) vecAt(name string, series []vecSpline, t float64) ([]Vec2, error) {
	if err := checkQueryTime(t); err != nil {
		return nil, err
	}
	if st.n == 0 {
		return []Vec2{}, nil
	}
	if series == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrSeriesMissing)
	}
	out := make([]Vec2, st.n)
	for i, sp := range series {
		out[i] = sp.at(t)
	}
	return out, nil
}

// DirectionsAt returns each agent's interpolated facing direction at time t,
// renormalized to unit length. A direction that interpolates to the zero
// vector has no unit normalization and fails with ErrZeroDirection.
func (st *Store) DirectionsAt(t float64) ([]Vec2, error) {
	out, err := st.vecAt("directions", st.dir, t)
	if err != nil {
		return nil, err
	}
	for i, d := range out {
		norm := math.Hypot(d.X, d.Y)
		if norm == 0 {
			return nil, fmt.Errorf("agent %d at t=%g: %w", i, t, ErrZeroDirection)
		}
		out[i] = Vec2{X: d.X / norm, Y: d.Y / norm}
	}
	return out, nil
}

// PressureAt returns each agent's interpolated crowd pressure at time t.
func (st *Store) PressureAt(t float64) ([]float64, error) {
	if err := checkQueryTime(t); err != nil {
		return nil, err
	}
	if st.n == 0 {
		return []float64{}, nil
	}
	if st.press == nil {
		return nil, fmt.Errorf("pressure: %w", ErrSeriesMissing)
	}
	out := make([]float64, st.n)
	for i, sp := range st.press {
		out[i] = sp.at(t)
	}
	return out, nil
}

// SpeedAt returns the squared velocity magnitude per agent at time t
// (vx²+vy², not the Euclidean norm). Configured speed gradient ranges are
// calibrated against this quantity.
func (st *Store) SpeedAt(t float64) ([]float64, error) {
	vel, err := st.vecAt("velocities", st.vel, t)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vel))
	for i, v := range vel {
		out[i] = v.X*v.X + v.Y*v.Y
	}
	return out, nil
}

// DistancesAt returns the symmetric n×n matrix of pairwise Euclidean
// distances between interpolated positions at time t. Each unordered pair is
// computed once and mirrored, so symmetry holds exactly; the diagonal is zero.
func (st *Store) DistancesAt(t float64) ([][]float64, error) {
	pos, err := st.PositionsAt(t)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(pos))
	for i := range out {
		out[i] = make([]float64, len(pos))
	}
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			d := math.Hypot(pos[i].X-pos[j].X, pos[i].Y-pos[j].Y)
			out[i][j] = d
			out[j][i] = d
		}
	}
	return out, nil
}

// BoundsAt returns the tightest axis-aligned rectangle containing every
// agent's disk of the given radius at time t. radii must hold one entry per
// agent. With zero agents the zero Rect is returned.
func (st *Store) BoundsAt(radii []float64, t float64) (Rect, error) {
	if len(radii) != st.n {
		return Rect{}, &ShapeError{Field: "radii", Want: fmt.Sprintf("%d agents", st.n), Got: fmt.Sprintf("%d", len(radii))}
	}
	for i, r := range radii {
		if !isFinite(r) {
			return Rect{}, fmt.Errorf("radii[%d]: %w", i, ErrNonFinite)
		}
	}
	pos, err := st.PositionsAt(t)
	if err != nil {
		return Rect{}, err
	}
	if len(pos) == 0 {
		return Rect{}, nil
	}

	xmin := math.Inf(1)
	ymin := math.Inf(1)
	xmax := math.Inf(-1)
	ymax := math.Inf(-1)
	for i, p := range pos {
		xmin = math.Min(xmin, p.X-radii[i])
		ymin = math.Min(ymin, p.Y-radii[i])
		xmax = math.Max(xmax, p.X+radii[i])
		ymax = math.Max(ymax, p.Y+radii[i])
	}
	return Rect{X: xmin, Y: ymin, Width: xmax - xmin, Height: ymax - ymin}, nil
}

// AdjacencyNear returns the contact-graph snapshot recorded at the sample
// time nearest to t. Graph snapshots are discrete; they have no continuous
// reconstruction.
func (st *Store) AdjacencyNear(t float64) ([][]float64, error) {
	if err := checkQueryTime(t); err != nil {
		return nil, err
	}
	if st.adjacency == nil {
		return nil, fmt.Errorf("adjacency: %w", ErrSeriesMissing)
	}
	if st.s == 0 {
		return [][]float64{}, nil
	}
	return st.adjacency[st.nearestStep(t)], nil
}

// InformationNear returns the information-model snapshots recorded at the
// sample time nearest to t. The payloads are opaque to this layer.
func (st *Store) InformationNear(t float64) ([]json.RawMessage, error) {
	if err := checkQueryTime(t); err != nil {
		return nil, err
	}
	if st.information == nil {
		return nil, fmt.Errorf("information: %w", ErrSeriesMissing)
	}
	if st.s == 0 {
		return []json.RawMessage{}, nil
	}
	return st.information[st.nearestStep(t)], nil
}

func (st *Store) nearestStep(t float64) int {
	i := sort.SearchFloat64s(st.times, t)
	if i == 0 {
		return 0
	}
	if i >= st.s {
		return st.s - 1
	}
	if t-st.times[i-1] <= st.times[i]-t {
		return i - 1
	}
	return i
}

func checkQueryTime(t float64) error {
	if !isFinite(t) {
		return fmt.Errorf("query time: %w", ErrNonFinite)
	}
	return nil
}
