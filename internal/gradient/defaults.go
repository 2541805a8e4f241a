package gradient

// Default returns a mapper with the stock gradient for every known quantity.
func Default() *Mapper {
	m := NewMapper()

	m.Set(None, Gradient{
		Bottom: HSV{H: 0, S: 0, V: 0.55},
		Top:    HSV{H: 0, S: 0, V: 0.55},
		Steps:  Continuous,
		Lo:     0, Hi: 1,
	})
	m.Set(Informed, Gradient{
		Bottom: HSV{H: 220, S: 0.75, V: 0.85},
		Top:    HSV{H: 0, S: 0.85, V: 0.95},
		Steps:  2,
		Lo:     0, Hi: 2,
		Discrete: true,
		Labels:   []string{"uninformed", "informed"},
	})
	m.Set(Neighbors, Gradient{
		Bottom: HSV{H: 120, S: 0.7, V: 0.8},
		Top:    HSV{H: 0, S: 0.9, V: 0.9},
		Steps:  10,
		Lo:     0, Hi: 10,
		Discrete: true,
	})
	m.Set(InformedNeighbors, Gradient{
		Bottom: HSV{H: 180, S: 0.7, V: 0.8},
		Top:    HSV{H: 300, S: 0.9, V: 0.9},
		Steps:  10,
		Lo:     0, Hi: 10,
		Discrete: true,
	})
	m.Set(Pressure, Gradient{
		Bottom: HSV{H: 240, S: 0.9, V: 0.9},
		Top:    HSV{H: 0, S: 0.9, V: 0.9},
		Steps:  Continuous,
		Lo:     0, Hi: 2,
	})
	m.Set(Speed, Gradient{
		Bottom: HSV{H: 60, S: 0.2, V: 0.95},
		Top:    HSV{H: 270, S: 0.9, V: 0.85},
		Steps:  Continuous,
		Lo:     0, Hi: 4,
	})

	return m
}
