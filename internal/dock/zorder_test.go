package dock

import (
	"testing"

	"dockyard/internal/geom"
)

func TestEngine_ZOrderBands(t *testing.T) {
	e := newTestEngine(t, Config{})
	l := e.Register(Options{Title: "l", Zone: Left})
	r := e.Register(Options{Title: "r", Zone: Right})
	c := e.Register(Options{Title: "c", Zone: Center})
	f := e.Register(Options{Title: "f", Rect: geom.Rect{X: 100, Y: 100, W: 200, H: 100}})
	g := e.Register(Options{Title: "g", Rect: geom.Rect{X: 150, Y: 150, W: 200, H: 100}})
	e.Layout()

	// Docked panels stack in fixed zone order below every floating panel.
	if !(l.Z() < r.Z() && r.Z() < c.Z()) {
		t.Errorf("docked order wrong: l=%d r=%d c=%d", l.Z(), r.Z(), c.Z())
	}
	if c.Z() >= floatBase {
		t.Errorf("docked z %d crossed the floating base", c.Z())
	}
	if f.Z() < floatBase || g.Z() < floatBase {
		t.Errorf("floating z below base: f=%d g=%d", f.Z(), g.Z())
	}
	if f.Z() >= g.Z() {
		t.Errorf("later floating registration should sit higher: f=%d g=%d", f.Z(), g.Z())
	}
}

func TestEngine_PanelsByZPaintsBackToFront(t *testing.T) {
	e := newTestEngine(t, Config{})
	e.Register(Options{Title: "l", Zone: Left})
	f := e.Register(Options{Title: "f", Rect: geom.Rect{X: 100, Y: 100, W: 200, H: 100}})
	g := e.Register(Options{Title: "g", Rect: geom.Rect{X: 150, Y: 150, W: 200, H: 100}})
	e.Layout()

	order := e.PanelsByZ()
	for i := 1; i < len(order); i++ {
		if order[i-1].Z() >= order[i].Z() {
			t.Fatalf("PanelsByZ not ascending at %d: %d then %d", i, order[i-1].Z(), order[i].Z())
		}
	}
	if order[len(order)-1] != g {
		t.Errorf("g should paint last, got %q", order[len(order)-1].Title)
	}

	// Raising f (body press) moves it above g without touching docked z.
	e.PointerDown(120, 180)
	order = e.PanelsByZ()
	if order[len(order)-1] != f {
		t.Errorf("f should paint last after raise, got %q", order[len(order)-1].Title)
	}
}
