package softrender

import "testing"

func TestIRect_ReexportedMethods(t *testing.T) {
	viewport := NewIRect(0, 0, 4, 4)
	r := NewIRect(-2, -1, 4, 3)

	got := viewport.Intersection(r)
	want := NewIRect(0, 0, 2, 2)
	if got != want {
		t.Errorf("Intersection() = %+v, want %+v", got, want)
	}

	if viewport.IsEmpty() {
		t.Error("viewport should not be empty")
	}
	if (IRect{}).IsEmpty() == false {
		t.Error("default IRect should be empty")
	}
}
