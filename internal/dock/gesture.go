package dock

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"dockyard/internal/geom"
)

type gesturePhase int

const (
	gestureIdle gesturePhase = iota
	// gesturePending: title pressed, pointer has not yet travelled the
	// promotion threshold.
	gesturePending
	gestureDragging
)

type dragState struct {
	phase          gesturePhase
	id             string
	startX, startY int
	offX, offY     int
	hint           Zone
	guide          geom.Rect
	started        time.Time
}

type resizeState struct {
	id             string
	startX, startY int
	start          geom.Rect
}

// PointerDown routes a press. Splitters win over panels; within the
// topmost panel under the pointer, the resize corner wins over the
// collapse toggle, which wins over the title bar. Returns true when the
// press started a gesture the engine now owns; presses on a panel body
// raise floating panels but are left to the host.
func (e *Engine) PointerDown(x, y int) bool {
	if e.destroyed {
		return false
	}
	e.endGestures()

	for _, sp := range e.splitters {
		if sp.Rect.Contains(x, y) {
			e.startSplitterDrag(sp, x, y)
			return true
		}
	}

	p := e.hitPanel(x, y)
	if p == nil {
		return false
	}
	if p.zone == Floating {
		e.reg.raise(p)
		e.Layout()
	}

	d := e.decor[p.ID]
	switch {
	case d.Resize.Contains(x, y):
		e.resize = resizeState{id: p.ID, startX: x, startY: y, start: p.rect}
		return true
	case d.Collapse.Contains(x, y):
		e.ToggleCollapse(p.ID)
		return true
	case d.Title.Contains(x, y):
		e.drag = dragState{
			phase:   gesturePending,
			id:      p.ID,
			startX:  x,
			startY:  y,
			offX:    x - p.rect.X,
			offY:    y - p.rect.Y,
			hint:    Floating,
			started: time.Now(),
		}
		return true
	}
	return false
}

// PointerMove advances whichever gesture is active. Returns true when the
// move was consumed.
func (e *Engine) PointerMove(x, y int) bool {
	if e.destroyed {
		return false
	}
	switch {
	case e.splitDrag != nil:
		e.moveSplitterDrag(x, y)
		return true
	case e.resize.id != "":
		e.moveResize(x, y)
		return true
	case e.drag.phase == gesturePending:
		if chebyshev(x-e.drag.startX, y-e.drag.startY) >= e.cfg.DragThreshold {
			e.promoteDrag()
			e.moveDrag(x, y)
		}
		return true
	case e.drag.phase == gestureDragging:
		e.moveDrag(x, y)
		return true
	}
	return false
}

// PointerUp finishes the active gesture wherever the pointer is;
// releasing outside the viewport terminates the same as releasing inside.
func (e *Engine) PointerUp(x, y int) bool {
	if e.destroyed {
		return false
	}
	switch {
	case e.splitDrag != nil:
		e.endSplitterDrag()
		return true
	case e.resize.id != "":
		e.resize = resizeState{}
		return true
	case e.drag.phase == gestureDragging:
		e.finishDrag()
		return true
	case e.drag.phase == gesturePending:
		// Plain click on a title bar.
		e.drag = dragState{}
		return true
	}
	return false
}

// DockHint exposes the live hint while a drag is in flight: the zone the
// panel would dock to if released now and the guide rectangle to preview.
// ok is false when no drag is active.
func (e *Engine) DockHint() (hint Zone, guide geom.Rect, ok bool) {
	if e.drag.phase != gestureDragging {
		return Floating, geom.Rect{}, false
	}
	return e.drag.hint, e.drag.guide, true
}

// endGestures abandons anything in flight so a new press starts clean. A
// half-finished move drag leaves its panel floating at the current rect.
func (e *Engine) endGestures() {
	if e.splitDrag != nil {
		e.endSplitterDrag()
	}
	e.resize = resizeState{}
	e.drag = dragState{}
}

// hitPanel returns the topmost panel whose rect contains the point.
func (e *Engine) hitPanel(x, y int) *Panel {
	byZ := e.PanelsByZ()
	for i := len(byZ) - 1; i >= 0; i-- {
		if byZ[i].rect.Contains(x, y) {
			return byZ[i]
		}
	}
	return nil
}

// promoteDrag converts an armed title press into a real move drag. A
// docked panel pops out to floating keeping its on-screen rect, so the
// pointer grabs it where the press landed.
func (e *Engine) promoteDrag() {
	p := e.reg.byID(e.drag.id)
	if p == nil {
		e.drag = dragState{}
		return
	}
	e.drag.phase = gestureDragging
	if p.zone != Floating {
		e.reg.move(p, Floating)
	}
	e.reg.raise(p)
	e.Layout()
	e.cfg.Logger.Debug("drag started", "id", p.ID, "title", p.Title)
}

func (e *Engine) moveDrag(x, y int) {
	p := e.reg.byID(e.drag.id)
	if p == nil {
		e.drag = dragState{}
		return
	}
	p.rect.X = x - e.drag.offX
	p.rect.Y = y - e.drag.offY
	e.drag.hint, e.drag.guide = e.classifyHint(x, y, p)
	e.Layout()
}

func (e *Engine) finishDrag() {
	d := e.drag
	e.drag = dragState{}
	p := e.reg.byID(d.id)
	if p == nil {
		return
	}
	if d.hint != Floating {
		e.reg.move(p, d.hint)
	}
	e.Layout()

	if t := e.cfg.Tracer; t != nil {
		_, span := t.Start(context.Background(), "dock.gesture",
			oteltrace.WithTimestamp(d.started),
			oteltrace.WithAttributes(
				attribute.String("dock.gesture.kind", "move"),
				attribute.String("dock.gesture.outcome", p.zone.String()),
			))
		span.End()
	}
	e.cfg.Logger.Debug("drag finished", "id", p.ID, "zone", p.zone)
}

// classifyHint maps a pointer position to a dock hint. Left and right win
// when the pointer is within EdgeSnap of their edge or inside their
// current band; top and bottom react to EdgeSnap only, in the horizontal
// band the side zones leave free. Top is skipped while top docking is
// disabled.
func (e *Engine) classifyHint(x, y int, p *Panel) (Zone, geom.Rect) {
	vp := e.viewport
	if vp.Empty() {
		return Floating, geom.Rect{}
	}
	snap := e.cfg.EdgeSnap
	leftW := e.zoneRects[Left].W
	rightW := e.zoneRects[Right].W

	switch {
	case x < vp.X+snap || x < vp.X+leftW:
		return Left, e.guideRect(Left, p)
	case x >= vp.Right()-snap || x >= vp.Right()-rightW:
		return Right, e.guideRect(Right, p)
	}
	if y < vp.Y+snap && !e.cfg.DisableTopDock {
		return Top, e.guideRect(Top, p)
	}
	if y >= vp.Bottom()-snap {
		return Bottom, e.guideRect(Bottom, p)
	}
	return Floating, geom.Rect{}
}

// guideRect previews where a dock would land: the zone's current rect when
// occupied, otherwise a hypothetical rect sized from the dragged panel's
// hint or the configured default.
func (e *Engine) guideRect(z Zone, p *Panel) geom.Rect {
	if len(e.reg.zonePanels(z)) > 0 {
		return e.zoneRects[z]
	}
	vp := e.viewport
	cross := vp.W
	if z == Top || z == Bottom {
		cross = vp.H
	}
	t := p.dockHint
	if t <= 0 {
		t = e.cfg.InitialDockSize
		if z == Top || z == Bottom {
			t = int(e.cfg.TopDockFraction * float64(vp.H))
		}
	}
	t = geom.Clamp(t, e.cfg.MinPanelSize, int(maxZoneFraction*float64(cross)))

	band := e.zoneRects[Center]
	switch z {
	case Left:
		return geom.Rect{X: 0, Y: 0, W: t, H: vp.H}
	case Right:
		return geom.Rect{X: vp.W - t, Y: 0, W: t, H: vp.H}
	case Top:
		return geom.Rect{X: band.X, Y: 0, W: band.W, H: t}
	case Bottom:
		return geom.Rect{X: band.X, Y: vp.H - t, W: band.W, H: t}
	}
	return geom.Rect{}
}

// moveResize tracks a corner drag on a floating panel. Width and height
// follow the pointer, floored at the panel minimum; the layout pass clamps
// the result into the viewport.
func (e *Engine) moveResize(x, y int) {
	p := e.reg.byID(e.resize.id)
	if p == nil {
		e.resize = resizeState{}
		return
	}
	w := e.resize.start.W + (x - e.resize.startX)
	h := e.resize.start.H + (y - e.resize.startY)
	if w < e.cfg.MinPanelSize {
		w = e.cfg.MinPanelSize
	}
	if h < e.cfg.MinPanelSize {
		h = e.cfg.MinPanelSize
	}
	p.rect.W = w
	p.rect.H = h
	e.Layout()
}

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dy > dx {
		return dy
	}
	return dx
}
