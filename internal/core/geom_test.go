package core

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
		ok       bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: NewRect(5, 5, 5, 5),
			ok:       true,
		},
		{
			name: "non-overlapping horizontal",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(15, 0, 10, 10),
		},
		{
			name: "non-overlapping vertical",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(0, 15, 10, 10),
		},
		{
			name: "adjacent horizontal (no overlap)",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
		},
		{
			name: "adjacent vertical (no overlap)",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(0, 10, 10, 10),
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: NewRect(5, 5, 5, 5),
			ok:       true,
		},
		{
			name:     "shallow vertical overlap",
			a:        NewRect(0, 0, 50, 50),
			b:        NewRect(-10, 45, 120, 40),
			expected: NewRect(0, 45, 50, 5),
			ok:       true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Intersect(tc.b)
			if ok != tc.ok {
				t.Fatalf("Intersect() ok = %v, expected %v", ok, tc.ok)
			}
			if got != tc.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.expected)
			}
			// Also test symmetry
			gotReverse, okReverse := tc.b.Intersect(tc.a)
			if okReverse != tc.ok || gotReverse != tc.expected {
				t.Errorf("Intersect() (reversed) = %+v/%v, expected %+v/%v", gotReverse, okReverse, tc.expected, tc.ok)
			}
			if tc.a.Intersects(tc.b) != tc.ok {
				t.Errorf("Intersects() = %v, expected %v", !tc.ok, tc.ok)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if c := r.Center(); c != (Vec2{X: 15, Y: 17.5}) {
		t.Errorf("Center() = %+v, expected (15, 17.5)", c)
	}
	if p := r.Point(); p != (Vec2{X: 5, Y: 10}) {
		t.Errorf("Point() = %+v, expected (5, 10)", p)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}

	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	n := v.Normalize()
	if n != (Vec2{X: 0.6, Y: 0.8}) {
		t.Errorf("Normalize() = %+v, expected (0.6, 0.8)", n)
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("Normalize() of zero = %+v, expected zero", z)
	}
	if got := v.Add(Vec2{X: 1, Y: 1}).Sub(Vec2{X: 2, Y: 2}).Scale(2); got != (Vec2{X: 4, Y: 6}) {
		t.Errorf("Add/Sub/Scale = %+v, expected (4, 6)", got)
	}
}

func TestSignum(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{-3, -1},
		{2.5, 1},
		{0, 1}, // zero counts as positive
	}

	for _, tc := range tests {
		if got := Signum(tc.in); got != tc.expected {
			t.Errorf("Signum(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if s := (Vec2{X: -2, Y: 0}).Signum(); s != (Vec2{X: -1, Y: 1}) {
		t.Errorf("Vec2.Signum() = %+v, expected (-1, 1)", s)
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
