package gradient

import (
	"errors"
	"math"
	"testing"
)

func testMapper(t *testing.T, g Gradient) *Mapper {
	t.Helper()
	m := NewMapper()
	if err := m.Set(Neighbors, g); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestColorsFor_QuantizedBandCount(t *testing.T) {
	m := testMapper(t, Gradient{
		Bottom: HSV{H: 0, S: 1, V: 1},
		Top:    HSV{H: 240, S: 1, V: 1},
		Steps:  9,
		Lo:     0, Hi: 9,
	})

	values := make([]float64, 0, 901)
	for v := 0.0; v <= 9.0; v += 0.01 {
		values = append(values, v)
	}
	colors, err := m.ColorsFor(Neighbors, values)
	if err != nil {
		t.Fatal(err)
	}

	distinct := make(map[string]bool)
	for _, c := range colors {
		distinct[c.Hex()] = true
	}
	if len(distinct) > 9 {
		t.Errorf("got %d distinct colors, want at most 9", len(distinct))
	}

	bottom := HSV{H: 0, S: 1, V: 1}.Color()
	top := HSV{H: 240, S: 1, V: 1}.Color()
	if colors[0] != bottom {
		t.Errorf("lowest value maps to %v, want bottom %v", colors[0], bottom)
	}
	if colors[len(colors)-1] != top {
		t.Errorf("highest value maps to %v, want top %v", colors[len(colors)-1], top)
	}
}

func TestColorsFor_BandIndex(t *testing.T) {
	// range (0,9), 9 bands: 4.4 falls in band floor(4.4/9*9) = 4.
	g := Gradient{
		Bottom: HSV{H: 0, S: 0, V: 0},
		Top:    HSV{H: 0, S: 0, V: 1},
		Steps:  9,
		Lo:     0, Hi: 9,
	}
	m := testMapper(t, g)

	colors, err := m.ColorsFor(Neighbors, []float64{0, 4.4, 9})
	if err != nil {
		t.Fatal(err)
	}

	wantMid := HSV{H: 0, S: 0, V: 4.0 / 8.0}.Color()
	if colors[1] != wantMid {
		t.Errorf("mid value color = %v, want band 4 color %v", colors[1], wantMid)
	}
	if colors[0] != g.Bottom.Color() || colors[2] != g.Top.Color() {
		t.Error("endpoints must map to bottom/top colors")
	}
}

func TestColorsFor_Clamping(t *testing.T) {
	g := Gradient{
		Bottom: HSV{H: 100, S: 0.5, V: 0.5},
		Top:    HSV{H: 200, S: 1, V: 1},
		Steps:  Continuous,
		Lo:     0, Hi: 10,
	}
	m := testMapper(t, g)

	colors, err := m.ColorsFor(Neighbors, []float64{-100, 0, 10, 100})
	if err != nil {
		t.Fatal(err)
	}
	if colors[0] != colors[1] {
		t.Error("below-range value must clamp to bottom")
	}
	if colors[2] != colors[3] {
		t.Error("above-range value must clamp to top")
	}
}

func TestColorsFor_DegenerateRange(t *testing.T) {
	g := Gradient{
		Bottom: HSV{H: 30, S: 0.4, V: 0.6},
		Top:    HSV{H: 330, S: 1, V: 1},
		Steps:  Continuous,
		Lo:     5, Hi: 5,
	}
	m := testMapper(t, g)

	colors, err := m.ColorsFor(Neighbors, []float64{-1, 5, 123})
	if err != nil {
		t.Fatalf("degenerate range must not fail: %v", err)
	}
	for i, c := range colors {
		if c != g.Bottom.Color() {
			t.Errorf("colors[%d] = %v, want bottom for degenerate range", i, c)
		}
	}
}

func TestColorsFor_Errors(t *testing.T) {
	m := Default()

	if _, err := m.ColorsFor(Quantity("bogus"), []float64{1}); !errors.Is(err, ErrUnknownQuantity) {
		t.Errorf("expected ErrUnknownQuantity, got %v", err)
	}
	if _, err := m.ColorsFor(Pressure, []float64{1, math.NaN()}); !errors.Is(err, ErrNonFinite) {
		t.Errorf("expected ErrNonFinite, got %v", err)
	}
	if _, err := m.ColorsFor(Pressure, []float64{math.Inf(-1)}); !errors.Is(err, ErrNonFinite) {
		t.Errorf("expected ErrNonFinite for Inf, got %v", err)
	}
}

func TestSet_Validation(t *testing.T) {
	m := NewMapper()

	if err := m.Set(Speed, Gradient{Steps: 1, Lo: 0, Hi: 1}); !errors.Is(err, ErrBadSpec) {
		t.Errorf("steps=1 must be rejected, got %v", err)
	}
	if err := m.Set(Speed, Gradient{Steps: Continuous, Lo: 2, Hi: 1}); !errors.Is(err, ErrBadSpec) {
		t.Errorf("lo > hi must be rejected, got %v", err)
	}
}

func TestSelect(t *testing.T) {
	m := Default()

	if err := m.Select(Pressure); err != nil {
		t.Fatal(err)
	}
	if m.Active() != Pressure {
		t.Errorf("Active = %v, want pressure", m.Active())
	}
	if err := m.Select(Quantity("bogus")); !errors.Is(err, ErrUnknownQuantity) {
		t.Errorf("expected ErrUnknownQuantity, got %v", err)
	}
}

func TestLegendTicks_Discrete(t *testing.T) {
	m := Default()

	ticks, err := m.LegendTicks(Informed)
	if err != nil {
		t.Fatal(err)
	}
	if len(ticks) != 2 {
		t.Fatalf("got %d ticks, want 2", len(ticks))
	}
	if ticks[0].Value != 0.5 || ticks[1].Value != 1.5 {
		t.Errorf("tick positions = %v, %v, want unit-band centers 0.5, 1.5", ticks[0].Value, ticks[1].Value)
	}
	if ticks[0].Label != "uninformed" || ticks[1].Label != "informed" {
		t.Errorf("tick labels = %q, %q", ticks[0].Label, ticks[1].Label)
	}
}

func TestLegendTicks_DiscreteNumericLabels(t *testing.T) {
	m := Default()

	ticks, err := m.LegendTicks(Neighbors)
	if err != nil {
		t.Fatal(err)
	}
	if len(ticks) != 10 {
		t.Fatalf("got %d ticks, want 10", len(ticks))
	}
	if ticks[3].Label != "3" || ticks[3].Value != 3.5 {
		t.Errorf("tick 3 = %+v, want value 3.5 label \"3\"", ticks[3])
	}
}

func TestLegendTicks_Continuous(t *testing.T) {
	m := Default()

	ticks, err := m.LegendTicks(Pressure)
	if err != nil {
		t.Fatal(err)
	}
	if len(ticks) != continuousTickCount {
		t.Fatalf("got %d ticks, want %d", len(ticks), continuousTickCount)
	}
	if ticks[0].Value != 0 || ticks[len(ticks)-1].Value != 2 {
		t.Errorf("tick span = [%v, %v], want [0, 2]", ticks[0].Value, ticks[len(ticks)-1].Value)
	}
}
