package core

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "corner touching only",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10.5, 10),
			b:        NewRect(10.25, 0, 4, 4),
			expected: true,
		},
		{
			name:     "zero width never overlaps",
			a:        NewRect(5, 0, 0, 10),
			b:        NewRect(5, 0, 0, 10),
			expected: false,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-400, 420, 800, 222),
			b:        NewRect(92, 418, 32, 4),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
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
	if r.CenterX() != 15 {
		t.Errorf("CenterX() = %v, expected 15", r.CenterX())
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 56, 80).Inset(10, 6)
	want := NewRect(10, 6, 36, 68)
	if r != want {
		t.Errorf("Inset() = %+v, expected %+v", r, want)
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

func TestApproachZero(t *testing.T) {
	tests := []struct {
		v, step, expected float64
	}{
		{100, 60, 40},
		{-100, 60, -40},
		{30, 60, 0},
		{-30, 60, 0},
		{60, 60, 0},
		{0, 60, 0},
	}

	for _, tc := range tests {
		if got := ApproachZero(tc.v, tc.step); got != tc.expected {
			t.Errorf("ApproachZero(%v, %v) = %v, expected %v", tc.v, tc.step, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(520, 980, 0); got != 520 {
		t.Errorf("Lerp(520, 980, 0) = %v, expected 520", got)
	}
	if got := Lerp(520, 980, 1); got != 980 {
		t.Errorf("Lerp(520, 980, 1) = %v, expected 980", got)
	}
	if got := Lerp(520, 980, 0.5); got != 750 {
		t.Errorf("Lerp(520, 980, 0.5) = %v, expected 750", got)
	}
}
