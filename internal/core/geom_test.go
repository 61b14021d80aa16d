package core

import "testing"

func TestFieldContains(t *testing.T) {
	f := Field{W: 20, H: 15}

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"inside", Point{10, 7}, true},
		{"last cell", Point{19, 14}, true},
		{"right edge (exclusive)", Point{20, 5}, false},
		{"bottom edge (exclusive)", Point{5, 15}, false},
		{"negative x", Point{-1, 5}, false},
		{"negative y", Point{5, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestFieldArea(t *testing.T) {
	if got := (Field{W: 20, H: 15}).Area(); got != 300 {
		t.Errorf("Area() = %d, expected 300", got)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 4, Y: 6}.Add(2, -1)
	if p != (Point{X: 6, Y: 5}) {
		t.Errorf("Add(2, -1) = %v, expected {6 5}", p)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
