package geom

import "testing"

func TestIRect_IsEmpty(t *testing.T) {
	cases := []struct {
		name string
		r    IRect
		want bool
	}{
		{"default", IRect{}, true},
		{"zero width", NewIRect(0, 0, 0, 5), true},
		{"zero height", NewIRect(0, 0, 5, 0), true},
		{"non-empty", NewIRect(0, 0, 1, 1), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.r.IsEmpty(); got != c.want {
				t.Errorf("IsEmpty() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIRect_LastXY(t *testing.T) {
	r := NewIRect(2, 3, 4, 5)
	if r.LastX() != 5 {
		t.Errorf("LastX() = %d, want 5", r.LastX())
	}
	if r.LastY() != 7 {
		t.Errorf("LastY() = %d, want 7", r.LastY())
	}
}

func TestIRect_Intersects(t *testing.T) {
	viewport := NewIRect(0, 0, 4, 2)

	cases := []struct {
		name string
		r    IRect
		want bool
	}{
		{"fully inside", NewIRect(1, 0, 2, 1), true},
		{"touching edge", NewIRect(3, 1, 1, 1), true},
		{"fully outside right", NewIRect(4, 0, 2, 2), false},
		{"fully outside above", NewIRect(0, -3, 4, 1), false},
		{"empty operand", IRect{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := viewport.Intersects(c.r); got != c.want {
				t.Errorf("Intersects(%+v) = %v, want %v", c.r, got, c.want)
			}
		})
	}
}

func TestIRect_Intersection(t *testing.T) {
	viewport := NewIRect(0, 0, 4, 4)

	cases := []struct {
		name string
		r    IRect
		want IRect
	}{
		{"contained", NewIRect(1, 1, 2, 2), NewIRect(1, 1, 2, 2)},
		{"straddles left", NewIRect(-2, -1, 4, 3), NewIRect(0, 0, 2, 2)},
		{"no overlap", NewIRect(10, 10, 2, 2), IRect{}},
		{"empty operand", IRect{}, IRect{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := viewport.Intersection(c.r); got != c.want {
				t.Errorf("Intersection(%+v) = %+v, want %+v", c.r, got, c.want)
			}
		})
	}
}

func TestIRect_IntersectionCommutative(t *testing.T) {
	a := NewIRect(-2, -1, 6, 5)
	b := NewIRect(1, 0, 4, 4)

	if a.Intersection(b) != b.Intersection(a) {
		t.Errorf("intersection not commutative: %+v vs %+v", a.Intersection(b), b.Intersection(a))
	}
}

func TestIRect_IntersectionIdempotent(t *testing.T) {
	a := NewIRect(-2, -1, 6, 5)
	if a.Intersection(a) != a {
		t.Errorf("Intersection(a, a) = %+v, want %+v", a.Intersection(a), a)
	}
}

func TestIRect_IntersectionContained(t *testing.T) {
	a := NewIRect(-2, -1, 6, 5)
	b := NewIRect(1, 0, 4, 4)
	i := a.Intersection(b)

	if !a.contains(i) || !b.contains(i) {
		t.Errorf("intersection %+v not contained in both operands", i)
	}
}

func (r IRect) contains(o IRect) bool {
	if o.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return o.X >= r.X && o.Y >= r.Y && o.LastX() <= r.LastX() && o.LastY() <= r.LastY()
}

func TestIRect_IntersectionWithEmptyIsEmpty(t *testing.T) {
	a := NewIRect(0, 0, 4, 4)
	if got := a.Intersection(IRect{}); !got.IsEmpty() {
		t.Errorf("Intersection(a, empty) = %+v, want empty", got)
	}
}
