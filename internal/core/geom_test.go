package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last cell", 29, 24, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		n        int
		expected Rect
	}{
		{"shrink by one", NewRect(0, 0, 10, 6), 1, NewRect(1, 1, 8, 4)},
		{"collapse", NewRect(2, 2, 3, 3), 2, NewRect(4, 4, 0, 0)},
		{"zero", NewRect(1, 2, 3, 4), 0, NewRect(1, 2, 3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.n); got != tc.expected {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.expected)
			}
		})
	}

	if !NewRect(4, 4, 0, 3).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(1.5, 0, 1) = %v, expected 1", got)
	}
}

func TestRGB(t *testing.T) {
	c := RGB{R: 255, G: 128, B: 0}

	if got := c.Hex(); got != "#ff8000" {
		t.Errorf("Hex() = %q, expected #ff8000", got)
	}
	if got := c.Dim(0.5); got != (RGB{R: 127, G: 64, B: 0}) {
		t.Errorf("Dim(0.5) = %+v", got)
	}
	if got := c.Dim(2); got != c {
		t.Errorf("Dim should clamp the factor, got %+v", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionSelect)
	f.SetClick(3, 4)
	if !f.Has(ActionSelect) || f.Has(ActionHint) {
		t.Error("Has() does not reflect Set()")
	}
	if f.Click == nil || *f.Click != (Point{X: 3, Y: 4}) {
		t.Errorf("Click = %+v, expected (3, 4)", f.Click)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should drop actions and click")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
}
