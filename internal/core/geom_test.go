package core

import "testing"

func TestAABBOverlaps(t *testing.T) {
	unit := Vec2{X: 1, Y: 1}

	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewAABB(Vec2{0, 0}, Vec2{10, 10}, unit),
			b:        NewAABB(Vec2{5, 5}, Vec2{10, 10}, unit),
			expected: true,
		},
		{
			name:     "separated horizontal",
			a:        NewAABB(Vec2{0, 0}, Vec2{10, 10}, unit),
			b:        NewAABB(Vec2{20, 0}, Vec2{10, 10}, unit),
			expected: false,
		},
		{
			name:     "separated vertical",
			a:        NewAABB(Vec2{0, 0}, Vec2{10, 10}, unit),
			b:        NewAABB(Vec2{0, -20}, Vec2{10, 10}, unit),
			expected: false,
		},
		{
			name:     "exact edge touch counts as overlap",
			a:        NewAABB(Vec2{0, 0}, Vec2{10, 10}, unit),
			b:        NewAABB(Vec2{10, 0}, Vec2{10, 10}, unit),
			expected: true,
		},
		{
			name:     "contained box",
			a:        NewAABB(Vec2{0, 0}, Vec2{20, 20}, unit),
			b:        NewAABB(Vec2{2, -2}, Vec2{4, 4}, unit),
			expected: true,
		},
		{
			name:     "scale shrinks the box out of contact",
			a:        NewAABB(Vec2{0, 0}, Vec2{10, 10}, Vec2{0.5, 0.5}),
			b:        NewAABB(Vec2{8, 0}, Vec2{10, 10}, Vec2{0.5, 0.5}),
			expected: false,
		},
		{
			name:     "negative quadrant overlap",
			a:        NewAABB(Vec2{-100, -100}, Vec2{10, 10}, unit),
			b:        NewAABB(Vec2{-96, -104}, Vec2{10, 10}, unit),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Overlap is symmetric
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNewAABBHalfExtents(t *testing.T) {
	box := NewAABB(Vec2{0, 0}, Vec2{144, 75}, Vec2{0.5, 0.5})
	if box.Half.X != 36 || box.Half.Y != 18.75 {
		t.Errorf("Half = %+v, expected {36 18.75}", box.Half)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5, 0, 10); got != 5 {
		t.Errorf("ClampF(5,0,10) = %v", got)
	}
	if got := ClampF(-1, 0, 10); got != 0 {
		t.Errorf("ClampF(-1,0,10) = %v", got)
	}
	if got := ClampF(11, 0, 10); got != 10 {
		t.Errorf("ClampF(11,0,10) = %v", got)
	}
}
