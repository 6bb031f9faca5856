package geom

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if !r.Contains(10, 20) {
		t.Error("top-left corner should be inside")
	}
	if !r.Contains(39, 59) {
		t.Error("bottom-right interior cell should be inside")
	}
	if r.Contains(40, 20) {
		t.Error("x == Right() should be outside")
	}
	if r.Contains(10, 60) {
		t.Error("y == Bottom() should be outside")
	}
	if (Rect{}).Contains(0, 0) {
		t.Error("empty rect contains nothing")
	}
}

func TestRect_Clamped(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 100, H: 50}

	// Fits: unchanged.
	r := Rect{X: 10, Y: 10, W: 20, H: 20}.Clamped(bounds)
	if r != (Rect{X: 10, Y: 10, W: 20, H: 20}) {
		t.Errorf("fitting rect changed: %+v", r)
	}

	// Off the right edge: slides back, keeps size.
	r = Rect{X: 95, Y: 0, W: 20, H: 20}.Clamped(bounds)
	if r != (Rect{X: 80, Y: 0, W: 20, H: 20}) {
		t.Errorf("slide back: %+v", r)
	}

	// Larger than bounds: shrunk to bounds.
	r = Rect{X: -5, Y: -5, W: 200, H: 200}.Clamped(bounds)
	if r != bounds {
		t.Errorf("oversized rect: %+v, want %+v", r, bounds)
	}

	// Negative size repaired.
	r = Rect{X: 5, Y: 5, W: -3, H: -3}.Clamped(bounds)
	if r.W != 0 || r.H != 0 {
		t.Errorf("negative size kept: %+v", r)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1,0,10) = %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11,0,10) = %d", got)
	}
	// Inverted range: lower bound wins.
	if got := Clamp(7, 5, 2); got != 7 {
		t.Errorf("Clamp(7,5,2) = %d", got)
	}
	if got := Clamp(1, 5, 2); got != 5 {
		t.Errorf("Clamp(1,5,2) = %d", got)
	}
}
