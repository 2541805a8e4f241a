package trajectory

import (
	"encoding/json"
	"fmt"
	"math"
)

// Vec2 is a 2D coordinate or vector.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle given by its lower-left corner and size.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Record is the raw output bundle of a completed simulation run, as handed
// over by the engine. Times and Positions are the backbone; every other
// series is optional and must agree with the agent and step counts derived
// from Positions.
type Record struct {
	Times         []float64           `json:"times"`
	Positions     [][]Vec2            `json:"positions"`      // [agent][step]
	Velocities    [][]Vec2            `json:"velocities,omitempty"`
	Accelerations [][]Vec2            `json:"accelerations,omitempty"`
	Directions    [][]Vec2            `json:"directions,omitempty"`
	Pressure      [][]float64         `json:"pressure,omitempty"`    // [agent][step]
	Adjacency     [][][]float64       `json:"adjacency,omitempty"`   // [step][n][n]
	Information   [][]json.RawMessage `json:"information,omitempty"` // [step][instance]
}

// vecSpline interpolates a 2D series, one spline per component.
type vecSpline struct {
	x, y *spline
}

func (v vecSpline) at(t float64) Vec2 {
	return Vec2{X: v.x.at(t), Y: v.y.at(t)}
}

// Store is an immutable view over a completed run. All queries are pure
// functions of (store, t) and safe to call concurrently.
//
// Continuous queries reconstruct each agent's series with a natural cubic
// spline fitted once at construction. A run with a single recorded step
// holds that sample constant for every query time. A record with neither
// times nor positions builds an empty store whose queries return empty,
// non-nil results.
type Store struct {
	times []float64
	n     int // agents
	s     int // steps

	pos   []vecSpline
	vel   []vecSpline
	acc   []vecSpline
	dir   []vecSpline
	press []*spline

	adjacency   [][][]float64
	information [][]json.RawMessage
}

// New validates rec and builds a Store. It fails fast on the first shape or
// value problem, identifying the offending field.
func New(rec Record) (*Store, error) {
	n := len(rec.Positions)
	s := len(rec.Times)

	if n > 0 && s == 0 {
		return nil, &ShapeError{Field: "times", Want: "len > 0 when positions are recorded", Got: "len 0"}
	}

	if err := checkTimes(rec.Times); err != nil {
		return nil, err
	}

	times := append([]float64(nil), rec.Times...)
	st := &Store{times: times, n: n, s: s}

	if err := checkVecSeries("positions", rec.Positions, s); err != nil {
		return nil, err
	}
	for _, opt := range []struct {
		name   string
		series [][]Vec2
	}{
		{"velocities", rec.Velocities},
		{"accelerations", rec.Accelerations},
		{"directions", rec.Directions},
	} {
		if opt.series == nil {
			continue
		}
		if len(opt.series) != n {
			return nil, &ShapeError{Field: opt.name, Want: fmt.Sprintf("%d agents", n), Got: fmt.Sprintf("%d", len(opt.series))}
		}
		if err := checkVecSeries(opt.name, opt.series, s); err != nil {
			return nil, err
		}
	}
	if rec.Pressure != nil {
		if len(rec.Pressure) != n {
			return nil, &ShapeError{Field: "pressure", Want: fmt.Sprintf("%d agents", n), Got: fmt.Sprintf("%d", len(rec.Pressure))}
		}
		for i, row := range rec.Pressure {
			if len(row) != s {
				return nil, &ShapeError{Field: "pressure", Want: fmt.Sprintf("%d steps", s), Got: fmt.Sprintf("%d for agent %d", len(row), i)}
			}
			for _, v := range row {
				if !isFinite(v) {
					return nil, fmt.Errorf("pressure agent %d: %w", i, ErrNonFinite)
				}
			}
		}
	}
	if rec.Adjacency != nil {
		if len(rec.Adjacency) != s {
			return nil, &ShapeError{Field: "adjacency", Want: fmt.Sprintf("%d snapshots", s), Got: fmt.Sprintf("%d", len(rec.Adjacency))}
		}
		for k, snap := range rec.Adjacency {
			if len(snap) != n {
				return nil, &ShapeError{Field: "adjacency", Want: fmt.Sprintf("%dx%d", n, n), Got: fmt.Sprintf("%d rows at step %d", len(snap), k)}
			}
			for _, row := range snap {
				if len(row) != n {
					return nil, &ShapeError{Field: "adjacency", Want: fmt.Sprintf("%dx%d", n, n), Got: fmt.Sprintf("%d cols at step %d", len(row), k)}
				}
			}
		}
	}
	if rec.Information != nil && len(rec.Information) != s {
		return nil, &ShapeError{Field: "information", Want: fmt.Sprintf("%d rows", s), Got: fmt.Sprintf("%d", len(rec.Information))}
	}

	st.pos = fitVecSeries(times, rec.Positions)
	st.vel = fitVecSeries(times, rec.Velocities)
	st.acc = fitVecSeries(times, rec.Accelerations)
	st.dir = fitVecSeries(times, rec.Directions)
	if rec.Pressure != nil {
		st.press = make([]*spline, n)
		for i, row := range rec.Pressure {
			st.press[i] = fitSpline(times, append([]float64(nil), row...))
		}
	}
	st.adjacency = rec.Adjacency
	st.information = rec.Information

	return st, nil
}

func checkTimes(times []float64) error {
	for i, t := range times {
		if !isFinite(t) {
			return fmt.Errorf("times[%d]: %w", i, ErrNonFinite)
		}
		if i > 0 && times[i-1] >= t {
			return fmt.Errorf("times[%d]: %w", i, ErrTimeNotAscending)
		}
	}
	return nil
}

func checkVecSeries(name string, series [][]Vec2, s int) error {
	for i, row := range series {
		if len(row) != s {
			return &ShapeError{Field: name, Want: fmt.Sprintf("%d steps", s), Got: fmt.Sprintf("%d for agent %d", len(row), i)}
		}
		for _, v := range row {
			if !isFinite(v.X) || !isFinite(v.Y) {
				return fmt.Errorf("%s agent %d: %w", name, i, ErrNonFinite)
			}
		}
	}
	return nil
}

// fitVecSeries builds per-agent component splines; nil in, nil out.
func fitVecSeries(times []float64, series [][]Vec2) []vecSpline {
	if series == nil {
		return nil
	}
	out := make([]vecSpline, len(series))
	for i, row := range series {
		xs := make([]float64, len(times))
		ys := make([]float64, len(times))
		for k, v := range row {
			xs[k] = v.X
			ys[k] = v.Y
		}
		out[i] = vecSpline{x: fitSpline(times, xs), y: fitSpline(times, ys)}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AgentCount returns the number of tracked agents.
func (st *Store) AgentCount() int { return st.n }

// StepCount returns the number of recorded time steps.
func (st *Store) StepCount() int { return st.s }

// Times returns a copy of the recorded time axis.
func (st *Store) Times() []float64 {
	out := make([]float64, len(st.times))
	copy(out, st.times)
	return out
}

// TimeSpan returns the first and last recorded times. Both are zero for an
// empty store.
func (st *Store) TimeSpan() (t0, t1 float64) {
	if st.s == 0 {
		return 0, 0
	}
	return st.times[0], st.times[st.s-1]
}

func (st *Store) HasVelocities() bool    { return st.vel != nil }
func (st *Store) HasAccelerations() bool { return st.acc != nil }
func (st *Store) HasDirections() bool    { return st.dir != nil }
func (st *Store) HasPressure() bool      { return st.press != nil }
func (st *Store) HasAdjacency() bool     { return st.adjacency != nil }
func (st *Store) HasInformation() bool   { return st.information != nil }
