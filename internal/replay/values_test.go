package replay

import (
	"errors"
	"testing"

	"github.com/san-kum/crowdviz/internal/gradient"
	"github.com/san-kum/crowdviz/internal/trajectory"
)

func testStore(t *testing.T) *trajectory.Store {
	t.Helper()
	st, err := trajectory.New(trajectory.Record{
		Times: []float64{0, 1},
		Positions: [][]trajectory.Vec2{
			{{X: 0, Y: 0}, {X: 1, Y: 0}},
			{{X: 1, Y: 1}, {X: 2, Y: 1}},
			{{X: 5, Y: 5}, {X: 5, Y: 5}},
		},
		Velocities: [][]trajectory.Vec2{
			{{X: 1, Y: 0}, {X: 1, Y: 0}},
			{{X: 0, Y: 2}, {X: 0, Y: 2}},
			{{X: 0, Y: 0}, {X: 0, Y: 0}},
		},
		Adjacency: [][][]float64{
			{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}},
			{{0, 1, 1}, {1, 0, 0}, {1, 0, 0}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func TestValuesAt_None(t *testing.T) {
	vals, err := ValuesAt(testStore(t), gradient.None, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 3 {
		t.Fatalf("got %d values, want 3", len(vals))
	}
	for i, v := range vals {
		if v != 0 {
			t.Errorf("vals[%d] = %v, want 0", i, v)
		}
	}
}

func TestValuesAt_Speed(t *testing.T) {
	vals, err := ValuesAt(testStore(t), gradient.Speed, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if vals[0] != 1 || vals[1] != 4 || vals[2] != 0 {
		t.Errorf("speed values = %v, want [1 4 0]", vals)
	}
}

func TestValuesAt_Neighbors(t *testing.T) {
	vals, err := ValuesAt(testStore(t), gradient.Neighbors, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	// Snapshot at step 1: agent 0 touches 1 and 2.
	if vals[0] != 2 || vals[1] != 1 || vals[2] != 1 {
		t.Errorf("neighbor counts = %v, want [2 1 1]", vals)
	}
}

func TestValuesAt_NotDerivable(t *testing.T) {
	if _, err := ValuesAt(testStore(t), gradient.Informed, 0); !errors.Is(err, ErrNotDerivable) {
		t.Errorf("expected ErrNotDerivable, got %v", err)
	}
}

func TestValuesAt_MissingSeries(t *testing.T) {
	st, err := trajectory.New(trajectory.Record{
		Times:     []float64{0, 1},
		Positions: [][]trajectory.Vec2{{{X: 0, Y: 0}, {X: 1, Y: 0}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValuesAt(st, gradient.Pressure, 0.5); !errors.Is(err, trajectory.ErrSeriesMissing) {
		t.Errorf("expected ErrSeriesMissing, got %v", err)
	}
}
