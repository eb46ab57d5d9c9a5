package core

import (
	"math"
	"testing"
)

func TestRectContainsAndCenter(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 25) {
		t.Error("bottom-right edge is exclusive")
	}
	if cx, cy := r.Center(); cx != 20 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (20, 17)", cx, cy)
	}
}

func TestBoxIntersects(t *testing.T) {
	player := SquareAt(Vec{X: 500, Y: 375}, 15)

	tests := []struct {
		name     string
		other    Box
		expected bool
	}{
		{"same center", SquareAt(Vec{X: 500, Y: 375}, 5), true},
		{"corner overlap", SquareAt(Vec{X: 520, Y: 395}, 10), true},
		{"just touching", SquareAt(Vec{X: 525, Y: 375}, 10), false},
		{"far away", SquareAt(Vec{X: 0, Y: 0}, 10), false},
		{"diagonal gap", SquareAt(Vec{X: 530, Y: 405}, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(player); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSquareAt(t *testing.T) {
	b := SquareAt(Vec{X: 10, Y: 20}, 5)
	if b.X != 5 || b.Y != 15 || b.W != 10 || b.H != 10 {
		t.Errorf("SquareAt() = %+v", b)
	}
}

func TestVec(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	if got := v.Sub(Vec{X: 1, Y: 1}).Scale(2); got != (Vec{X: 4, Y: 6}) {
		t.Errorf("Sub/Scale = %+v", got)
	}
	if !v.Finite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vec{X: math.NaN()}).Finite() || (Vec{Y: math.Inf(1)}).Finite() {
		t.Error("NaN/Inf vector reported as finite")
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
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(970.5, 0, 970); got != 970 {
		t.Errorf("ClampF() = %v, expected 970", got)
	}
	if Min(5, 10) != 5 || Max(5, 10) != 10 || Abs(-5) != 5 {
		t.Error("Min/Max/Abs mismatch")
	}
}
