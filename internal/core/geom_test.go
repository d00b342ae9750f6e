package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "partial overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "disjoint horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "disjoint vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges count",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 10, 5, 5),
			expected: true,
		},
		{
			name:     "other inside receiver",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "other strictly contains receiver",
			a:        NewBox(5, 5, 5, 5),
			b:        NewBox(0, 0, 20, 20),
			expected: false,
		},
		{
			name:     "narrow projectile through wide target",
			a:        NewBox(100, 100, 60, 40),
			b:        NewBox(128, 120, 5, 20),
			expected: true,
		},
		{
			name:     "x overlap only",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 11, 2, 2),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestBoxTranslate(t *testing.T) {
	b := NewBox(10, 20, 30, 40).Translate(-5, 7)
	want := Box{Left: 5, Top: 27, Right: 35, Bottom: 67}
	if b != want {
		t.Errorf("Translate() = %+v, expected %+v", b, want)
	}
	if b.Width() != 30 || b.Height() != 40 {
		t.Errorf("Translate() changed size to %dx%d", b.Width(), b.Height())
	}
}

func TestCenteredBox(t *testing.T) {
	b := CenteredBox(100, 50, 13, 8)
	if b.Left != 94 || b.Right != 107 || b.Top != 46 || b.Bottom != 54 {
		t.Errorf("CenteredBox() = %+v", b)
	}
	if b.CenterX() != 100 {
		t.Errorf("CenterX() = %d, expected 100", b.CenterX())
	}
}

func TestBoundingBox(t *testing.T) {
	if _, ok := BoundingBox(); ok {
		t.Error("BoundingBox() of nothing should report false")
	}

	u, ok := BoundingBox(NewBox(10, 10, 5, 5), NewBox(-3, 12, 2, 20), NewBox(40, 0, 1, 1))
	if !ok {
		t.Fatal("BoundingBox() should report true")
	}
	want := Box{Left: -3, Top: 0, Right: 41, Bottom: 32}
	if u != want {
		t.Errorf("BoundingBox() = %+v, expected %+v", u, want)
	}
}

func TestDiffToCenter(t *testing.T) {
	outer := NewBox(0, 0, 100, 50)
	inner := NewBox(10, 10, 20, 10)

	dx, dy := DiffToCenter(inner, outer)
	if dx != 30 || dy != 10 {
		t.Errorf("DiffToCenter() = (%d, %d), expected (30, 10)", dx, dy)
	}

	moved := inner.Translate(dx, dy)
	if moved.CenterX() != outer.CenterX() || moved.CenterY() != outer.CenterY() {
		t.Errorf("centered box %+v does not share center with %+v", moved, outer)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"adjacent", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
