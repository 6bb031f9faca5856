package dock

import (
	"testing"

	"dockyard/internal/geom"
)

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e := New(cfg)
	e.Resize(1000, 800)
	return e
}

func TestEngine_TwoPanelsDockedLeft(t *testing.T) {
	e := newTestEngine(t, Config{MinPanelSize: 120, SplitterSize: 6})
	a := e.Register(Options{Title: "a", Zone: Left, Size: 300, MinSize: 120})
	b := e.Register(Options{Title: "b", Zone: Left, Size: 300, MinSize: 120})
	e.Layout()

	if got := e.ZoneSize(Left); got != 300 {
		t.Fatalf("ZoneSize(Left) = %d, want 300", got)
	}
	if want := (geom.Rect{X: 0, Y: 0, W: 300, H: 400}); a.Rect() != want {
		t.Errorf("a.Rect() = %+v, want %+v", a.Rect(), want)
	}
	if want := (geom.Rect{X: 0, Y: 400, W: 300, H: 400}); b.Rect() != want {
		t.Errorf("b.Rect() = %+v, want %+v", b.Rect(), want)
	}

	var sp Splitter
	found := false
	for _, s := range e.Splitters() {
		if s.Kind == PanelSplitter && s.Zone == Left {
			sp, found = s, true
			break
		}
	}
	if !found {
		t.Fatal("no panel splitter emitted for the left stack")
	}
	if want := (geom.Rect{X: 0, Y: 397, W: 300, H: 6}); sp.Rect != want {
		t.Errorf("splitter rect = %+v, want %+v", sp.Rect, want)
	}
	if !sp.Rect.Contains(50, 399) || sp.Rect.Contains(50, 403) {
		t.Errorf("splitter band should cover y 397..402, got %+v", sp.Rect)
	}
	if sp.Index != 0 || sp.Axis != geom.Vertical {
		t.Errorf("splitter index/axis = %d/%v, want 0/Vertical", sp.Index, sp.Axis)
	}
}

func TestEngine_OddSplitterSitsBeforeBoundary(t *testing.T) {
	e := newTestEngine(t, Config{MinPanelSize: 120, SplitterSize: 1})
	e.Register(Options{Title: "a", Zone: Left, Size: 400, MinSize: 120})
	b := e.Register(Options{Title: "b", Zone: Left, Size: 400, MinSize: 120})
	e.Layout()

	var sp Splitter
	found := false
	for _, s := range e.Splitters() {
		if s.Kind == PanelSplitter && s.Zone == Left {
			sp, found = s, true
			break
		}
	}
	if !found {
		t.Fatal("no panel splitter emitted for the left stack")
	}
	// A one-cell splitter takes the row before the boundary, leaving the
	// second panel's first row (its title bar in the hosts) untouched.
	if want := (geom.Rect{X: 0, Y: 399, W: 400, H: 1}); sp.Rect != want {
		t.Errorf("splitter rect = %+v, want %+v", sp.Rect, want)
	}
	if sp.Rect.Bottom() > b.Rect().Y {
		t.Errorf("splitter reaches row %d, overlapping the next panel at %d", sp.Rect.Bottom()-1, b.Rect().Y)
	}
}

func TestEngine_LayoutIsIdempotent(t *testing.T) {
	e := newTestEngine(t, Config{MinPanelSize: 120, SplitterSize: 6})
	e.Register(Options{Title: "a", Zone: Left, Size: 300})
	e.Register(Options{Title: "b", Zone: Left, Size: 300})
	e.Register(Options{Title: "c", Zone: Bottom})
	e.Register(Options{Title: "f", Rect: geom.Rect{X: 500, Y: 200, W: 200, H: 150}})
	e.Layout()

	before := make(map[string]geom.Rect)
	for _, p := range e.Panels() {
		before[p.ID] = p.Rect()
	}
	splitters := append([]Splitter(nil), e.Splitters()...)

	e.Layout()

	for _, p := range e.Panels() {
		if p.Rect() != before[p.ID] {
			t.Errorf("panel %q rect changed: %+v -> %+v", p.Title, before[p.ID], p.Rect())
		}
	}
	if len(splitters) != len(e.Splitters()) {
		t.Fatalf("splitter count changed: %d -> %d", len(splitters), len(e.Splitters()))
	}
	for i, sp := range e.Splitters() {
		if sp != splitters[i] {
			t.Errorf("splitter %d changed: %+v -> %+v", i, splitters[i], sp)
		}
	}
}

func TestEngine_EmptyZoneHasZeroThickness(t *testing.T) {
	e := newTestEngine(t, Config{})
	e.Layout()
	for _, z := range []Zone{Left, Right, Top, Bottom} {
		if got := e.ZoneSize(z); got != 0 {
			t.Errorf("ZoneSize(%v) = %d, want 0", z, got)
		}
	}
	if want := (geom.Rect{X: 0, Y: 0, W: 1000, H: 800}); e.ZoneRect(Center) != want {
		t.Errorf("center = %+v, want full viewport %+v", e.ZoneRect(Center), want)
	}
}

func TestEngine_ZoneThicknessPrecedence(t *testing.T) {
	e := newTestEngine(t, Config{})
	e.Register(Options{Title: "a", Zone: Left})
	e.Layout()
	if got := e.ZoneSize(Left); got != defaultInitialDockSize {
		t.Fatalf("default thickness = %d, want %d", got, defaultInitialDockSize)
	}

	e.Register(Options{Title: "b", Zone: Left, Size: 200})
	e.Layout()
	if got := e.ZoneSize(Left); got != 200 {
		t.Fatalf("hinted thickness = %d, want 200 (largest panel hint)", got)
	}

	e.SetZoneSize(Left, 400)
	if got := e.ZoneSize(Left); got != 400 {
		t.Fatalf("overridden thickness = %d, want 400", got)
	}
	e.Layout()
	if got := e.ZoneSize(Left); got != 400 {
		t.Errorf("override did not survive a relayout: %d", got)
	}
}

func TestEngine_TopBottomConfinedToSideBand(t *testing.T) {
	e := newTestEngine(t, Config{})
	e.Register(Options{Title: "l", Zone: Left, Size: 200})
	e.Register(Options{Title: "r", Zone: Right, Size: 100})
	e.Register(Options{Title: "t", Zone: Top})
	e.Register(Options{Title: "b", Zone: Bottom})
	e.Layout()

	topH := int(defaultTopDockFraction * 800)
	if want := (geom.Rect{X: 200, Y: 0, W: 700, H: topH}); e.ZoneRect(Top) != want {
		t.Errorf("top = %+v, want %+v", e.ZoneRect(Top), want)
	}
	if want := (geom.Rect{X: 200, Y: 800 - topH, W: 700, H: topH}); e.ZoneRect(Bottom) != want {
		t.Errorf("bottom = %+v, want %+v", e.ZoneRect(Bottom), want)
	}
	if e.ZoneRect(Left).H != 800 || e.ZoneRect(Right).H != 800 {
		t.Errorf("side zones should span the full height: left %+v right %+v",
			e.ZoneRect(Left), e.ZoneRect(Right))
	}
	center := e.ZoneRect(Center)
	if center.W+e.ZoneRect(Left).W+e.ZoneRect(Right).W != 1000 {
		t.Errorf("left+center+right widths should sum to the viewport, center %+v", center)
	}
}

func TestEngine_CenterClaimShrinksTrailingZoneFirst(t *testing.T) {
	e := New(Config{})
	e.Resize(200, 800)
	e.Register(Options{Title: "l", Zone: Left, Size: 300})
	e.Register(Options{Title: "r", Zone: Right, Size: 300})
	e.Layout()

	// Each hint clamps to 80% of the width (160); the center's minimum is
	// then carved out of the right zone before the left one.
	if got := e.ZoneRect(Left).W; got != 160 {
		t.Errorf("left width = %d, want 160", got)
	}
	if got := e.ZoneRect(Right).W; got != 24 {
		t.Errorf("right width = %d, want 24", got)
	}
	if got := e.ZoneRect(Center).W; got != defaultMinCenterSize {
		t.Errorf("center width = %d, want %d", got, defaultMinCenterSize)
	}
}

func TestEngine_TopDockEnabledByDefault(t *testing.T) {
	e := newTestEngine(t, Config{})
	p := e.Register(Options{Title: "toolbar", Zone: Top})
	e.Layout()

	if got := p.Zone(); got != Top {
		t.Fatalf("zone = %v, want Top under a zero config", got)
	}
	if want := int(defaultTopDockFraction * 800); e.ZoneSize(Top) != want {
		t.Errorf("ZoneSize(Top) = %d, want default thickness %d", e.ZoneSize(Top), want)
	}
}

func TestEngine_DisabledTopDockMigratesToFloating(t *testing.T) {
	e := newTestEngine(t, Config{DisableTopDock: true})
	p := e.Register(Options{Title: "toolbar", Zone: Top})
	e.Layout()

	if got := p.Zone(); got != Floating {
		t.Fatalf("zone = %v, want Floating (top docking disabled)", got)
	}
	if p.Rect().Empty() {
		t.Error("migrated panel should have a floating rect")
	}
	if got := e.ZoneSize(Top); got != 0 {
		t.Errorf("ZoneSize(Top) = %d, want 0", got)
	}
}

func TestEngine_AutoCollapseBelowThreshold(t *testing.T) {
	e := New(Config{})
	e.Resize(1000, 400)
	a := e.Register(Options{Title: "a", Zone: Left, ContentMinSize: 220})
	b := e.Register(Options{Title: "b", Zone: Left})
	e.Layout()

	// The even split gives each panel 200; a's threshold is 220, so it
	// collapses to its threshold footprint and b absorbs the rest.
	if !a.Collapsed() {
		t.Fatal("a should auto-collapse below its content minimum")
	}
	if a.Size() != 220 {
		t.Errorf("a.Size() = %d, want 220 (threshold floor)", a.Size())
	}
	if b.Collapsed() {
		t.Error("b has no threshold and must never collapse")
	}
	if b.Size() != 180 {
		t.Errorf("b.Size() = %d, want 180", b.Size())
	}
}

func TestEngine_TopZoneNeverCollapses(t *testing.T) {
	e := New(Config{})
	e.Resize(300, 800)
	a := e.Register(Options{Title: "a", Zone: Top, ContentMinSize: 200})
	b := e.Register(Options{Title: "b", Zone: Top, ContentMinSize: 200})
	e.Layout()

	// The horizontal band is 300 wide, each share is 150, below both
	// thresholds; collapse must still not trigger in a top stack.
	if a.Collapsed() || b.Collapsed() {
		t.Errorf("top panels collapsed (a=%v b=%v); collapse is a side/center concept",
			a.Collapsed(), b.Collapsed())
	}
}

func TestEngine_CollapsedTrailingRunAnchorsToFarEdge(t *testing.T) {
	e := newTestEngine(t, Config{})
	a := e.Register(Options{Title: "a", Zone: Left, ContentMinSize: 60})
	b := e.Register(Options{Title: "b", Zone: Left, ContentMinSize: 60})
	c := e.Register(Options{Title: "c", Zone: Left, ContentMinSize: 60})
	e.Layout()

	e.ToggleCollapse(a.ID)
	e.ToggleCollapse(b.ID)
	e.ToggleCollapse(c.ID)

	// All collapsed: the first slot keeps its natural position, the rest
	// anchor to the bottom of the zone, leaving the gap in between.
	if a.Rect().Y != 0 || a.Rect().H != 60 {
		t.Errorf("a = %+v, want y 0 h 60 (natural slot)", a.Rect())
	}
	if b.Rect().Y != 680 {
		t.Errorf("b.Y = %d, want 680 (anchored)", b.Rect().Y)
	}
	if c.Rect().Y != 740 {
		t.Errorf("c.Y = %d, want 740 (anchored)", c.Rect().Y)
	}

	// The splitter between a and b sits at the anchored boundary.
	found := false
	for _, sp := range e.Splitters() {
		if sp.Kind == PanelSplitter && sp.Zone == Left && sp.Index == 0 {
			found = true
			if sp.Rect.Y != 680-defaultSplitterSize/2 {
				t.Errorf("splitter 0 at y %d, want centered on 680", sp.Rect.Y)
			}
		}
	}
	if !found {
		t.Error("missing splitter between a and b")
	}

	// Expanding the last panel reflows the stack naturally again.
	e.ToggleCollapse(c.ID)
	if c.Rect().Y != 120 || c.Rect().H != 680 {
		t.Errorf("expanded c = %+v, want y 120 h 680", c.Rect())
	}
}

func TestEngine_StackSumMatchesExtentWithCollapsed(t *testing.T) {
	e := newTestEngine(t, Config{})
	a := e.Register(Options{Title: "a", Zone: Left, ContentMinSize: 80})
	b := e.Register(Options{Title: "b", Zone: Left})
	c := e.Register(Options{Title: "c", Zone: Left})
	e.Layout()
	e.ToggleCollapse(a.ID)

	sum := a.Size() + b.Size() + c.Size()
	if sum != 800 {
		t.Errorf("sizes sum to %d, want the zone extent 800", sum)
	}
}

func TestEngine_FloatingRectClampedIntoViewport(t *testing.T) {
	e := newTestEngine(t, Config{})
	p := e.Register(Options{Title: "f", Rect: geom.Rect{X: 950, Y: 780, W: 200, H: 100}})
	e.Layout()

	r := p.Rect()
	if r.Right() > 1000 || r.Bottom() > 800 || r.X < 0 || r.Y < 0 {
		t.Errorf("floating rect %+v escapes the 1000x800 viewport", r)
	}
	if r.W != 200 || r.H != 100 {
		t.Errorf("clamping should slide, not shrink, a fitting rect: %+v", r)
	}
}

func TestEngine_ZeroViewportDegradesQuietly(t *testing.T) {
	e := New(Config{})
	e.Register(Options{Title: "a", Zone: Left})
	e.Register(Options{Title: "b", Zone: Bottom})
	e.Layout()
	e.Resize(0, 0)
	// No panics, no negative rects.
	for _, p := range e.Panels() {
		r := p.Rect()
		if r.W < 0 || r.H < 0 {
			t.Errorf("panel %q has negative geometry %+v", p.Title, r)
		}
	}
}
