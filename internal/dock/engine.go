package dock

import (
	"fmt"

	"github.com/google/uuid"

	"dockyard/internal/geom"
)

// Engine positions registered panels inside a fixed viewport. All methods
// must be called from the host's event loop; the engine is single-threaded
// and never blocks. Layout is idempotent: repeated calls with no
// intervening state change produce identical geometry.
type Engine struct {
	cfg      Config
	viewport geom.Rect
	reg      *registry

	zoneSizes map[Zone]int // splitter-drag thickness overrides
	zoneRects map[Zone]geom.Rect
	splitters []Splitter
	decor     map[string]Decoration

	drag      dragState
	resize    resizeState
	splitDrag *splitterDrag

	layoutSubs []layoutSub
	zoneSubs   []zoneSub
	nextSubID  int

	laying    bool
	destroyed bool
}

// Options configures Register. Every field is optional.
type Options struct {
	Title string
	Body  any
	// Zone is the initial membership. Defaults to Floating.
	Zone Zone
	// Size is a thickness hint for docked registrations: the width a
	// left/right zone (or height a top/bottom zone) would like to reserve
	// for this panel. The stacking-axis extent is materialized by the first
	// layout pass instead.
	Size int
	// Order is an explicit sort key within the zone. Zero appends after the
	// current tail.
	Order int
	// MinSize floors the panel during redistribution. Zero uses the engine
	// default.
	MinSize int
	// ContentMinSize is the auto-collapse threshold. Zero disables
	// auto-collapse for this panel.
	ContentMinSize int
	// Rect seeds a floating rectangle. When zero and the Body is
	// Measurable, the measured rect is used.
	Rect geom.Rect
}

// New creates an engine with a zero viewport. Call Resize before the first
// Layout so zones have extent to distribute.
func New(cfg Config) *Engine {
	e := &Engine{
		cfg:       cfg.withDefaults(),
		reg:       newRegistry(),
		zoneSizes: make(map[Zone]int),
		zoneRects: make(map[Zone]geom.Rect),
		decor:     make(map[string]Decoration),
	}
	if e.cfg.OnLayout != nil {
		e.OnLayout(e.cfg.OnLayout)
	}
	if e.cfg.OnZoneResize != nil {
		e.OnZoneResize(e.cfg.OnZoneResize)
	}
	return e
}

// Register begins tracking a panel and returns it. Registration does not
// relayout; hosts batch registrations and call Layout once.
func (e *Engine) Register(opts Options) *Panel {
	if e.destroyed {
		return nil
	}
	zone := opts.Zone
	if !zone.Valid() {
		zone = Floating
	}
	p := &Panel{
		ID:             uuid.NewString(),
		Title:          opts.Title,
		Body:           opts.Body,
		zone:           zone,
		order:          opts.Order,
		minSize:        opts.MinSize,
		contentMinSize: opts.ContentMinSize,
		dockHint:       opts.Size,
		rect:           opts.Rect,
	}
	if p.minSize <= 0 {
		p.minSize = e.cfg.MinPanelSize
	}
	if p.order == 0 {
		p.order = e.reg.tailOrder(zone)
	}
	if p.rect.Empty() {
		if m, ok := p.Body.(Measurable); ok {
			if r, ok := m.MeasureRect(); ok {
				p.rect = r
			}
		}
	}
	if p.rect.Empty() && zone == Floating {
		p.rect = e.defaultFloatRect()
	}
	e.reg.add(p)
	e.cfg.Logger.Debug("panel registered", "id", p.ID, "title", p.Title, "zone", zone)
	return p
}

// Unregister stops tracking the panel. Returns false for an unknown id;
// all panel state is discarded either way.
func (e *Engine) Unregister(id string) bool {
	if e.destroyed {
		return false
	}
	p := e.reg.remove(id)
	if p == nil {
		return false
	}
	delete(e.decor, id)
	if e.drag.id == id {
		e.drag = dragState{}
	}
	if e.resize.id == id {
		e.resize = resizeState{}
	}
	if e.splitDrag != nil && e.splitDrag.sp.Zone == p.zone {
		// The start-of-gesture snapshot no longer matches the stack.
		e.endSplitterDrag()
	}
	e.Layout()
	return true
}

// Dock reassigns zone membership, appending at the end of the target
// zone's order. Unknown ids are a no-op returning false. An invalid zone
// is a programmer error and returns ErrInvalidZone.
func (e *Engine) Dock(id string, zone Zone) (bool, error) {
	if !zone.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidZone, int(zone))
	}
	if e.destroyed {
		return false, nil
	}
	p := e.reg.byID(id)
	if p == nil {
		return false, nil
	}
	if p.zone == zone {
		return true, nil
	}
	e.reg.move(p, zone)
	if zone == Floating && p.rect.Empty() {
		p.rect = e.defaultFloatRect()
	}
	e.Layout()
	return true, nil
}

// RectPatch is a partial floating-rect update. Nil fields keep their
// current value.
type RectPatch struct {
	X, Y, W, H *int
}

// SetFloatingRect applies patch to the panel's floating rectangle. The
// update is stored regardless of membership, but only a floating panel
// triggers a relayout.
func (e *Engine) SetFloatingRect(id string, patch RectPatch) bool {
	if e.destroyed {
		return false
	}
	p := e.reg.byID(id)
	if p == nil {
		return false
	}
	if patch.X != nil {
		p.rect.X = *patch.X
	}
	if patch.Y != nil {
		p.rect.Y = *patch.Y
	}
	if patch.W != nil {
		p.rect.W = *patch.W
	}
	if patch.H != nil {
		p.rect.H = *patch.H
	}
	if p.zone == Floating {
		e.Layout()
	}
	return true
}

// ToggleCollapse flips a panel between its expanded and header-only
// footprint. Collapsing caches the expanded size; expanding restores it.
// Only panels in collapsible zones with a collapse threshold react.
func (e *Engine) ToggleCollapse(id string) bool {
	if e.destroyed {
		return false
	}
	p := e.reg.byID(id)
	if p == nil || !p.zone.collapsible() || p.contentMinSize <= 0 {
		return false
	}
	if p.collapsed {
		restored := p.cachedSize
		if restored <= p.contentMinSize {
			restored = p.contentMinSize + p.minSize
		}
		p.setCollapsed(false)
		p.size = restored
		p.cachedSize = 0
	} else {
		if p.size > p.contentMinSize {
			p.cachedSize = p.size
		}
		p.setCollapsed(true)
		p.size = p.collapsedSize()
	}
	e.Layout()
	return true
}

// Resize updates the viewport and relayouts.
func (e *Engine) Resize(w, h int) {
	if e.destroyed {
		return
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	e.viewport = geom.Rect{W: w, H: h}
	e.Layout()
}

// Viewport returns the current viewport rectangle.
func (e *Engine) Viewport() geom.Rect { return e.viewport }

// ZoneSize returns the resolved thickness of a zone: width for left/right
// and center, height for top/bottom. Zero when the zone is empty.
func (e *Engine) ZoneSize(zone Zone) int {
	if zone == Center {
		return e.zoneRects[Center].W
	}
	if !zone.IsDocked() {
		return 0
	}
	return e.zoneThickness(zone)
}

// ZoneRect returns the rectangle computed for a zone by the last layout
// pass.
func (e *Engine) ZoneRect(zone Zone) geom.Rect { return e.zoneRects[zone] }

// Panel returns a registered panel by id.
func (e *Engine) Panel(id string) (*Panel, bool) {
	p := e.reg.byID(id)
	return p, p != nil
}

// Panels returns every registered panel, docked zones first in their stack
// order, then the floating bag.
func (e *Engine) Panels() []*Panel {
	out := make([]*Panel, 0, e.reg.count())
	for _, z := range dockedZones {
		out = append(out, e.reg.zonePanels(z)...)
	}
	out = append(out, e.reg.zonePanels(Floating)...)
	return out
}

// ZonePanels returns the ordered panels of one zone.
func (e *Engine) ZonePanels(zone Zone) []*Panel {
	if !zone.Valid() {
		return nil
	}
	return e.reg.zonePanels(zone)
}

// Splitters returns the handles materialized by the last layout pass.
func (e *Engine) Splitters() []Splitter { return e.splitters }

// Decoration returns the chrome geometry for a panel.
func (e *Engine) Decoration(id string) (Decoration, bool) {
	d, ok := e.decor[id]
	return d, ok
}

// Reconfigure replaces the engine's geometry tunables and relayouts.
// Logger, tracer and construction-time callbacks are kept.
func (e *Engine) Reconfigure(cfg Config) {
	if e.destroyed {
		return
	}
	next := cfg.withDefaults()
	next.Logger = e.cfg.Logger
	next.Tracer = e.cfg.Tracer
	next.OnLayout = nil
	next.OnZoneResize = nil
	e.cfg = next
	e.Layout()
}

// Destroy cancels every subscription, drops decorations, and turns all
// further engine calls into no-ops. Registered panels keep their last
// geometry and may still be read.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.layoutSubs = nil
	e.zoneSubs = nil
	e.splitters = nil
	e.decor = make(map[string]Decoration)
	e.drag = dragState{}
	e.resize = resizeState{}
	e.splitDrag = nil
}

// Destroyed reports whether Destroy has run.
func (e *Engine) Destroyed() bool { return e.destroyed }

// defaultFloatRect places a new floating panel near the viewport center,
// offset by the number of floating panels so stacks of fresh panels do not
// hide each other completely.
func (e *Engine) defaultFloatRect() geom.Rect {
	w := e.viewport.W / 3
	h := e.viewport.H / 3
	if w < e.cfg.MinPanelSize {
		w = e.cfg.MinPanelSize
	}
	if h < e.cfg.MinPanelSize {
		h = e.cfg.MinPanelSize
	}
	step := len(e.reg.zonePanels(Floating)) * 2
	r := geom.Rect{
		X: e.viewport.W/2 - w/2 + step,
		Y: e.viewport.H/2 - h/2 + step,
		W: w,
		H: h,
	}
	if !e.viewport.Empty() {
		r = r.Clamped(e.viewport)
	}
	return r
}
