package dock

import (
	"testing"

	"dockyard/internal/geom"
)

func TestEngine_DragToDockRoundTrip(t *testing.T) {
	e := newTestEngine(t, Config{})
	c := e.Register(Options{Title: "c", Rect: geom.Rect{X: 400, Y: 300, W: 200, H: 100}})
	e.Layout()

	if !e.PointerDown(410, 300) {
		t.Fatal("title press was not captured")
	}
	e.PointerMove(4, 300)

	hint, guide, ok := e.DockHint()
	if !ok || hint != Left {
		t.Fatalf("hint = %v ok=%v, want Left while hovering the left edge", hint, ok)
	}
	if want := (geom.Rect{X: 0, Y: 0, W: defaultInitialDockSize, H: 800}); guide != want {
		t.Errorf("guide = %+v, want %+v", guide, want)
	}

	e.PointerUp(4, 300)
	if _, _, ok := e.DockHint(); ok {
		t.Error("hint should clear on release")
	}
	if c.Zone() != Left {
		t.Fatalf("zone = %v, want Left after release over the edge", c.Zone())
	}
	if want := (geom.Rect{X: 0, Y: 0, W: 30, H: 800}); c.Rect() != want {
		t.Errorf("docked rect = %+v, want %+v", c.Rect(), want)
	}

	// Drag it back out into open space.
	e.PointerDown(5, 0)
	e.PointerMove(500, 400)
	e.PointerUp(500, 400)
	if c.Zone() != Floating {
		t.Errorf("zone = %v, want Floating after release mid-viewport", c.Zone())
	}
}

func TestEngine_ClickWithoutTravelIsNotADrag(t *testing.T) {
	e := newTestEngine(t, Config{MinPanelSize: 120, SplitterSize: 6})
	a := e.Register(Options{Title: "a", Zone: Left, Size: 300})
	e.Register(Options{Title: "b", Zone: Left, Size: 300})
	e.Layout()
	before := a.Rect()

	e.PointerDown(10, 0)
	e.PointerMove(11, 1) // below the promotion threshold
	e.PointerUp(11, 1)

	if a.Zone() != Left {
		t.Errorf("zone = %v, want Left (click must not undock)", a.Zone())
	}
	if a.Rect() != before {
		t.Errorf("rect changed on a plain click: %+v -> %+v", before, a.Rect())
	}
}

func TestEngine_DragPromotionPopsDockedPanelOut(t *testing.T) {
	e := newTestEngine(t, Config{MinPanelSize: 120, SplitterSize: 6})
	a := e.Register(Options{Title: "a", Zone: Left, Size: 300, MinSize: 120})
	b := e.Register(Options{Title: "b", Zone: Left, Size: 300, MinSize: 120})
	e.Layout()

	e.PointerDown(10, 0)
	e.PointerMove(500, 400)

	if a.Zone() != Floating {
		t.Fatalf("zone = %v, want Floating after crossing the threshold", a.Zone())
	}
	// The panel keeps its docked extent and rides the pointer with the
	// press offset (pressed at 10,0 inside its 300x400 rect).
	if want := (geom.Rect{X: 490, Y: 400, W: 300, H: 400}); a.Rect() != want {
		t.Errorf("dragged rect = %+v, want %+v", a.Rect(), want)
	}

	e.PointerUp(500, 400)
	if a.Zone() != Floating {
		t.Errorf("zone = %v, want Floating", a.Zone())
	}
	left := e.ZonePanels(Left)
	if len(left) != 1 || left[0] != b {
		t.Fatalf("left zone should hold only b, got %d panels", len(left))
	}
	if want := (geom.Rect{X: 0, Y: 0, W: 300, H: 800}); b.Rect() != want {
		t.Errorf("b should reclaim the stack: %+v, want %+v", b.Rect(), want)
	}
}

func TestEngine_DockHintInsideExistingZoneBand(t *testing.T) {
	e := newTestEngine(t, Config{MinPanelSize: 120, SplitterSize: 6})
	e.Register(Options{Title: "a", Zone: Left, Size: 300, MinSize: 120})
	e.Register(Options{Title: "b", Zone: Left, Size: 300, MinSize: 120})
	c := e.Register(Options{Title: "c", Rect: geom.Rect{X: 400, Y: 300, W: 200, H: 100}})
	e.Layout()

	e.PointerDown(410, 300)
	// x=250 is far from the edge but inside the 300-wide left band.
	e.PointerMove(250, 300)

	hint, guide, ok := e.DockHint()
	if !ok || hint != Left {
		t.Fatalf("hint = %v, want Left inside the occupied band", hint)
	}
	if guide != e.ZoneRect(Left) {
		t.Errorf("guide = %+v, want the existing zone rect %+v", guide, e.ZoneRect(Left))
	}

	e.PointerUp(250, 300)
	if c.Zone() != Left {
		t.Fatalf("zone = %v, want Left", c.Zone())
	}
	if got := len(e.ZonePanels(Left)); got != 3 {
		t.Errorf("left zone has %d panels, want 3 (appended at the tail)", got)
	}
	if e.ZonePanels(Left)[2] != c {
		t.Error("dropped panel should append at the end of the zone order")
	}
}

func TestEngine_TopHintHonorsDisableTopDock(t *testing.T) {
	drag := func(disabled bool) (Zone, geom.Rect) {
		e := newTestEngine(t, Config{DisableTopDock: disabled})
		e.Register(Options{Title: "c", Rect: geom.Rect{X: 400, Y: 300, W: 200, H: 100}})
		e.Layout()
		e.PointerDown(410, 300)
		e.PointerMove(500, 4)
		hint, guide, _ := e.DockHint()
		return hint, guide
	}

	hint, guide := drag(false)
	if hint != Top {
		t.Fatalf("hint = %v, want Top near the top edge", hint)
	}
	topH := int(defaultTopDockFraction * 800)
	if want := (geom.Rect{X: 0, Y: 0, W: 1000, H: topH}); guide != want {
		t.Errorf("guide = %+v, want %+v", guide, want)
	}

	if hint, _ := drag(true); hint != Floating {
		t.Errorf("hint = %v, want Floating while top docking is disabled", hint)
	}
}

func TestEngine_CornerResizeFloatingPanel(t *testing.T) {
	e := newTestEngine(t, Config{})
	p := e.Register(Options{Title: "p", Rect: geom.Rect{X: 100, Y: 100, W: 200, H: 150}})
	e.Layout()

	d, ok := e.Decoration(p.ID)
	if !ok || d.Resize.Empty() {
		t.Fatalf("floating panel should expose a resize handle, got %+v", d)
	}
	if !e.PointerDown(299, 249) {
		t.Fatal("press on the resize corner was not captured")
	}
	e.PointerMove(339, 279)
	e.PointerUp(339, 279)
	if want := (geom.Rect{X: 100, Y: 100, W: 240, H: 180}); p.Rect() != want {
		t.Fatalf("resized rect = %+v, want %+v", p.Rect(), want)
	}

	// Dragging far past the origin floors both extents at the minimum.
	e.PointerDown(339, 279)
	e.PointerMove(0, 0)
	e.PointerUp(0, 0)
	if p.Rect().W != defaultMinPanelSize || p.Rect().H != defaultMinPanelSize {
		t.Errorf("shrunk rect = %+v, want %dx%d", p.Rect(), defaultMinPanelSize, defaultMinPanelSize)
	}
}

func TestEngine_CollapseToggleViaDecoration(t *testing.T) {
	e := newTestEngine(t, Config{})
	a := e.Register(Options{Title: "a", Zone: Left, ContentMinSize: 100})
	b := e.Register(Options{Title: "b", Zone: Left})
	e.Layout()

	d, _ := e.Decoration(a.ID)
	if d.Collapse.Empty() {
		t.Fatal("collapsible panel should expose a collapse toggle")
	}
	if !e.PointerDown(d.Collapse.X, d.Collapse.Y) {
		t.Fatal("press on the collapse toggle was not captured")
	}
	if !a.Collapsed() {
		t.Fatal("a should collapse")
	}
	if a.Size() != 100 {
		t.Errorf("collapsed size = %d, want 100", a.Size())
	}
	if b.Size() != 700 {
		t.Errorf("b.Size() = %d, want 700", b.Size())
	}

	db, _ := e.Decoration(b.ID)
	if !db.Collapse.Empty() {
		t.Error("b has no threshold and should not expose a toggle")
	}
}

func TestEngine_PointerDownRaisesFloatingPanel(t *testing.T) {
	e := newTestEngine(t, Config{})
	p := e.Register(Options{Title: "p", Rect: geom.Rect{X: 100, Y: 100, W: 300, H: 200}})
	q := e.Register(Options{Title: "q", Rect: geom.Rect{X: 150, Y: 150, W: 300, H: 200}})
	e.Layout()
	if p.Z() >= q.Z() {
		t.Fatalf("later registration should start on top: p.z=%d q.z=%d", p.Z(), q.Z())
	}

	// Body press on p's exposed strip: raises it but is not captured.
	if captured := e.PointerDown(120, 180); captured {
		t.Error("body press should not be captured")
	}
	if p.Z() <= q.Z() {
		t.Errorf("p should be topmost after the press: p.z=%d q.z=%d", p.Z(), q.Z())
	}
}

func TestEngine_NewPressEndsActiveGesture(t *testing.T) {
	e := newTestEngine(t, Config{})
	c := e.Register(Options{Title: "c", Rect: geom.Rect{X: 400, Y: 300, W: 200, H: 100}})
	e.Layout()

	e.PointerDown(410, 300)
	if e.drag.phase != gesturePending {
		t.Fatal("expected an armed gesture")
	}
	e.PointerDown(900, 700)
	if e.drag.phase != gestureIdle {
		t.Error("a new press should end the previous gesture")
	}
	if c.Zone() != Floating {
		t.Errorf("zone = %v, want Floating", c.Zone())
	}
}
