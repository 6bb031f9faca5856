package dock

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"dockyard/internal/geom"
)

// Layout recomputes all geometry: zone rectangles, per-panel rectangles,
// splitter handles, decorations, and z values. Safe to call at any time;
// calling it twice with no intervening state change produces identical
// rectangles. Reentrant calls from subscribers are ignored.
func (e *Engine) Layout() {
	if e.destroyed || e.laying {
		return
	}
	e.laying = true
	defer func() { e.laying = false }()

	if t := e.cfg.Tracer; t != nil {
		_, span := t.Start(context.Background(), "dock.layout", oteltrace.WithAttributes(
			attribute.Int("dock.panels", e.reg.count()),
			attribute.Int("dock.floating", len(e.reg.zonePanels(Floating))),
		))
		defer span.End()
	}

	if e.cfg.DisableTopDock {
		e.migrateTopPanels()
	}

	e.computeZoneRects()

	splitters := make([]Splitter, 0, e.reg.count())
	for _, z := range dockedZones {
		splitters = append(splitters, e.layoutZone(z)...)
	}
	splitters = append(splitters, e.zoneBoundarySplitters()...)
	e.splitters = splitters

	for _, p := range e.reg.zonePanels(Floating) {
		r := p.rect
		if r.W < e.cfg.MinPanelSize {
			r.W = e.cfg.MinPanelSize
		}
		if r.H < e.cfg.MinPanelSize {
			r.H = e.cfg.MinPanelSize
		}
		p.rect = r.Clamped(e.viewport)
	}

	e.restack()
	e.rebuildDecorations()
	e.notifyLayout()
	e.cfg.Logger.Debug("layout pass", "panels", e.reg.count(), "splitters", len(e.splitters))
}

// migrateTopPanels silently moves top-docked panels to floating when top
// docking is disabled. The last docked rect seeds the floating rect.
func (e *Engine) migrateTopPanels() {
	top := e.reg.zonePanels(Top)
	for len(top) > 0 {
		p := top[0]
		r := p.rect
		e.reg.move(p, Floating)
		if r.Empty() {
			r = e.defaultFloatRect()
		}
		p.rect = r
		top = e.reg.zonePanels(Top)
	}
}

// computeZoneRects resolves zone thicknesses and carves the viewport:
// left/right span the full height, top/bottom occupy the horizontal band
// between them, center takes the remainder. The center's minimum claim is
// honored by shrinking the trailing zone of each axis first.
func (e *Engine) computeZoneRects() {
	vp := e.viewport

	leftW := e.zoneThickness(Left)
	rightW := e.zoneThickness(Right)
	if over := leftW + rightW + e.cfg.MinCenterSize - vp.W; over > 0 {
		cut := over
		if cut > rightW {
			cut = rightW
		}
		rightW -= cut
		over -= cut
		if over > 0 {
			if over > leftW {
				over = leftW
			}
			leftW -= over
		}
	}

	topH := e.zoneThickness(Top)
	bottomH := e.zoneThickness(Bottom)
	if over := topH + bottomH + e.cfg.MinCenterSize - vp.H; over > 0 {
		cut := over
		if cut > bottomH {
			cut = bottomH
		}
		bottomH -= cut
		over -= cut
		if over > 0 {
			if over > topH {
				over = topH
			}
			topH -= over
		}
	}

	bandW := vp.W - leftW - rightW
	if bandW < 0 {
		bandW = 0
	}
	centerH := vp.H - topH - bottomH
	if centerH < 0 {
		centerH = 0
	}

	e.zoneRects[Left] = geom.Rect{X: 0, Y: 0, W: leftW, H: vp.H}
	e.zoneRects[Right] = geom.Rect{X: vp.W - rightW, Y: 0, W: rightW, H: vp.H}
	e.zoneRects[Top] = geom.Rect{X: leftW, Y: 0, W: bandW, H: topH}
	e.zoneRects[Bottom] = geom.Rect{X: leftW, Y: vp.H - bottomH, W: bandW, H: bottomH}
	e.zoneRects[Center] = geom.Rect{X: leftW, Y: topH, W: bandW, H: centerH}
}

// zoneThickness resolves the cross-axis extent reserved for a zone.
// Precedence: splitter-drag override, then the largest per-panel hint, then
// the configured default. A zone with no panels has zero thickness.
func (e *Engine) zoneThickness(z Zone) int {
	panels := e.reg.zonePanels(z)
	if len(panels) == 0 {
		return 0
	}
	cross := e.viewport.W
	if z == Top || z == Bottom {
		cross = e.viewport.H
	}
	max := int(maxZoneFraction * float64(cross))

	if ov, ok := e.zoneSizes[z]; ok {
		return geom.Clamp(ov, e.cfg.MinPanelSize, max)
	}
	hint := 0
	for _, p := range panels {
		if p.dockHint > hint {
			hint = p.dockHint
		}
	}
	if hint > 0 {
		return geom.Clamp(hint, e.cfg.MinPanelSize, max)
	}
	def := e.cfg.InitialDockSize
	if z == Top || z == Bottom {
		def = int(e.cfg.TopDockFraction * float64(e.viewport.H))
	}
	return geom.Clamp(def, e.cfg.MinPanelSize, max)
}

// layoutZone assigns sub-rectangles to one zone's stack and emits the
// splitters between consecutive panels.
func (e *Engine) layoutZone(z Zone) []Splitter {
	panels := e.reg.zonePanels(z)
	if len(panels) == 0 {
		return nil
	}
	zr := e.zoneRects[z]
	axis := z.StackAxis()
	extent := zr.H
	if axis == geom.Horizontal {
		extent = zr.W
	}

	e.stackSizes(z, panels, extent)
	offsets := stackOffsets(panels, extent)

	for i, p := range panels {
		if axis == geom.Vertical {
			p.rect = geom.Rect{X: zr.X, Y: zr.Y + offsets[i], W: zr.W, H: p.size}
		} else {
			p.rect = geom.Rect{X: zr.X + offsets[i], Y: zr.Y, W: p.size, H: zr.H}
		}
	}

	out := make([]Splitter, 0, len(panels)-1)
	ss := e.cfg.SplitterSize
	for i := 0; i+1 < len(panels); i++ {
		// Centered on the boundary; odd thicknesses round toward the
		// preceding panel so the next panel's leading row or column (its
		// title bar in the hosts) is never covered.
		b := offsets[i+1]
		var r geom.Rect
		if axis == geom.Vertical {
			r = geom.Rect{X: zr.X, Y: zr.Y + b - (ss+1)/2, W: zr.W, H: ss}
		} else {
			r = geom.Rect{X: zr.X + b - (ss+1)/2, Y: zr.Y, W: ss, H: zr.H}
		}
		out = append(out, Splitter{
			ID:    fmt.Sprintf("%s/%d", z, i),
			Zone:  z,
			Kind:  PanelSplitter,
			Index: i,
			Rect:  r.Clamped(e.viewport),
			Axis:  axis,
		})
	}
	return out
}

// stackSizes materializes unset sizes, normalizes expanded panels against
// the extent left over by collapsed ones, applies auto-collapse, and
// writes the result back to the panels.
func (e *Engine) stackSizes(z Zone, panels []*Panel, extent int) {
	if extent < 0 {
		extent = 0
	}
	shares := geom.SplitEven(extent, len(panels))
	work := make([]int, len(panels))
	for i, p := range panels {
		switch {
		case p.collapsed:
			work[i] = p.collapsedSize()
		case p.size > 0:
			work[i] = p.size
		default:
			work[i] = shares[i]
		}
	}

	e.normalizeExpanded(panels, work, extent)

	if z.collapsible() {
		changed := false
		for i, p := range panels {
			if p.collapsed || p.contentMinSize <= 0 {
				continue
			}
			if work[i] <= p.contentMinSize {
				if p.size > p.contentMinSize {
					p.cachedSize = p.size
				} else {
					p.cachedSize = 0
				}
				p.setCollapsed(true)
				work[i] = p.collapsedSize()
				changed = true
			}
		}
		if changed {
			e.normalizeExpanded(panels, work, extent)
		}
	}

	for i, p := range panels {
		p.size = work[i]
	}
}

// normalizeExpanded redistributes the extent not pinned by collapsed
// panels across the expanded ones. Collapsed entries keep their footprint.
func (e *Engine) normalizeExpanded(panels []*Panel, work []int, extent int) {
	var idx []int
	target := extent
	for i, p := range panels {
		if p.collapsed {
			target -= work[i]
			continue
		}
		idx = append(idx, i)
	}
	if len(idx) == 0 {
		return
	}
	if target < 0 {
		target = 0
	}
	sizes := make([]int, len(idx))
	mins := make([]int, len(idx))
	for j, i := range idx {
		sizes[j] = work[i]
		mins[j] = panels[i].minSize
	}
	out := geom.NormalizeSizes(sizes, mins, target)
	for j, i := range idx {
		work[i] = out[j]
	}
}

// stackOffsets computes stacking-axis positions. A contiguous trailing run
// of collapsed panels is anchored to the end of the extent instead of
// flowing after its expanded neighbor; if the very first panel is
// collapsed and more than one panel exists, anchoring starts at index 1 so
// the first slot keeps its natural position.
func stackOffsets(panels []*Panel, extent int) []int {
	n := len(panels)
	offsets := make([]int, n)
	pos := 0
	for i, p := range panels {
		offsets[i] = pos
		pos += p.size
	}

	run := 0
	for i := n - 1; i >= 0 && panels[i].collapsed; i-- {
		run++
	}
	if run == 0 {
		return offsets
	}
	start := n - run
	if start == 0 && n > 1 {
		start = 1
	}

	total := 0
	for i := start; i < n; i++ {
		total += panels[i].size
	}
	anchor := extent - total
	if start > 0 && anchor < offsets[start] {
		anchor = offsets[start]
	}
	if anchor < 0 {
		anchor = 0
	}
	pos = anchor
	for i := start; i < n; i++ {
		offsets[i] = pos
		pos += panels[i].size
	}
	return offsets
}
