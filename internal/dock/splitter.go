package dock

import (
	"dockyard/internal/geom"
)

// SplitterKind distinguishes the two draggable boundary types.
type SplitterKind int

const (
	// PanelSplitter sits between two adjacent panels in a zone stack and
	// redistributes extent between them.
	PanelSplitter SplitterKind = iota
	// ZoneSplitter sits on a zone's inner edge and resizes the whole zone
	// against the center.
	ZoneSplitter
)

// Splitter is a draggable hit region produced by the layout pass. Index
// names the panel before the boundary for panel splitters and is -1 for
// zone splitters. Axis is the axis of motion.
type Splitter struct {
	ID    string
	Zone  Zone
	Kind  SplitterKind
	Index int
	Rect  geom.Rect
	Axis  geom.Axis
}

// panelStack snapshots one panel's stacking state at gesture start so a
// drag can be replayed from its origin on every move.
type panelStack struct {
	size      int
	collapsed bool
	cached    int
}

type splitterDrag struct {
	sp             Splitter
	startX, startY int
	snapshot       []panelStack
	zoneStart      int
	hadOverride    bool
	prevOverride   int
}

// ApplySplitterDelta moves the boundary between panels index and index+1
// of a zone stack. A positive delta grows the panel before the boundary by
// harvesting slack from the panels after it, nearest first; a negative
// delta walks backward symmetrically. Panels never shrink below their
// effective minimum, so the returned value is the signed portion of delta
// that was actually applied. Collapsed panels whose new size clears their
// collapse threshold are expanded in place.
func (e *Engine) ApplySplitterDelta(zone Zone, index, delta int) int {
	if e.destroyed || !zone.IsDocked() {
		return 0
	}
	panels := e.reg.zonePanels(zone)
	if index < 0 || index+1 >= len(panels) || delta == 0 {
		return 0
	}

	applied := 0
	if delta > 0 {
		need := delta
		for j := index + 1; j < len(panels) && need > 0; j++ {
			slack := panels[j].size - panels[j].effectiveMin()
			if slack <= 0 {
				continue
			}
			take := slack
			if take > need {
				take = need
			}
			panels[j].size -= take
			need -= take
			applied += take
		}
		panels[index].size += applied
	} else {
		need := -delta
		for j := index; j >= 0 && need > 0; j-- {
			slack := panels[j].size - panels[j].effectiveMin()
			if slack <= 0 {
				continue
			}
			take := slack
			if take > need {
				take = need
			}
			panels[j].size -= take
			need -= take
			applied += take
		}
		panels[index+1].size += applied
		applied = -applied
	}

	e.autoExpand(zone)
	e.Layout()
	if applied != 0 {
		e.cfg.Logger.Debug("splitter delta", "zone", zone, "index", index, "requested", delta, "applied", applied)
	}
	return applied
}

// autoExpand un-collapses any panel whose drag-computed size now exceeds
// its collapse threshold. The size is kept as computed so the handle stays
// under the pointer; the restore cache is spent.
func (e *Engine) autoExpand(zone Zone) {
	for _, p := range e.reg.zonePanels(zone) {
		if p.collapsed && p.contentMinSize > 0 && p.size > p.contentMinSize {
			p.setCollapsed(false)
			p.cachedSize = 0
		}
	}
}

// SetZoneSize installs a thickness override for a docked zone, clamped so
// the opposite zone and the center keep their minimums. The override wins
// over panel hints until Reconfigure or Destroy.
func (e *Engine) SetZoneSize(z Zone, size int) {
	if e.destroyed || !z.IsDocked() || z == Center {
		return
	}
	prev := e.zoneThickness(z)
	next := e.clampZoneOverride(z, size)
	e.zoneSizes[z] = next
	e.Layout()
	e.notifyZoneResize(ZoneResizeEvent{Zone: z, Size: next, Prev: prev, Done: true})
}

// clampZoneOverride bounds a zone thickness so the center region and the
// opposing zone survive and no single zone exceeds its viewport fraction.
func (e *Engine) clampZoneOverride(z Zone, size int) int {
	vp := e.viewport
	lo := e.cfg.MinPanelSize
	hi, frac := 0, 0
	switch z {
	case Left:
		hi = vp.W - e.zoneRects[Right].W - e.cfg.MinCenterSize
		frac = int(maxZoneFraction * float64(vp.W))
	case Right:
		hi = vp.W - e.zoneRects[Left].W - e.cfg.MinCenterSize
		frac = int(maxZoneFraction * float64(vp.W))
	case Top:
		hi = vp.H - e.zoneRects[Bottom].H - e.cfg.MinCenterSize
		frac = int(maxZoneFraction * float64(vp.H))
	case Bottom:
		hi = vp.H - e.zoneRects[Top].H - e.cfg.MinCenterSize
		frac = int(maxZoneFraction * float64(vp.H))
	}
	if frac < hi {
		hi = frac
	}
	return geom.Clamp(size, lo, hi)
}

// zoneBoundarySplitters emits one handle per occupied edge zone, centered
// on the zone's inner boundary. Odd thicknesses round toward the low
// coordinate side so the region after the boundary keeps its leading row
// or column (a title row in the hosts) clear.
func (e *Engine) zoneBoundarySplitters() []Splitter {
	var out []Splitter
	ss := e.cfg.SplitterSize
	vp := e.viewport

	add := func(z Zone, r geom.Rect, axis geom.Axis) {
		out = append(out, Splitter{
			ID:    "zone/" + z.String(),
			Zone:  z,
			Kind:  ZoneSplitter,
			Index: -1,
			Rect:  r.Clamped(vp),
			Axis:  axis,
		})
	}

	if w := e.zoneRects[Left].W; w > 0 {
		add(Left, geom.Rect{X: w - (ss+1)/2, Y: 0, W: ss, H: vp.H}, geom.Horizontal)
	}
	if w := e.zoneRects[Right].W; w > 0 {
		add(Right, geom.Rect{X: vp.W - w - (ss+1)/2, Y: 0, W: ss, H: vp.H}, geom.Horizontal)
	}
	if band := e.zoneRects[Top]; band.H > 0 {
		add(Top, geom.Rect{X: band.X, Y: band.Bottom() - (ss+1)/2, W: band.W, H: ss}, geom.Vertical)
	}
	if band := e.zoneRects[Bottom]; band.H > 0 {
		add(Bottom, geom.Rect{X: band.X, Y: band.Y - (ss+1)/2, W: band.W, H: ss}, geom.Vertical)
	}
	return out
}

func (e *Engine) startSplitterDrag(sp Splitter, x, y int) {
	sd := &splitterDrag{sp: sp, startX: x, startY: y}
	if sp.Kind == PanelSplitter {
		for _, p := range e.reg.zonePanels(sp.Zone) {
			sd.snapshot = append(sd.snapshot, panelStack{size: p.size, collapsed: p.collapsed, cached: p.cachedSize})
		}
	} else {
		sd.zoneStart = e.zoneThickness(sp.Zone)
		sd.prevOverride, sd.hadOverride = e.zoneSizes[sp.Zone]
	}
	e.splitDrag = sd
}

// moveSplitterDrag replays the gesture from its origin: the stack is
// restored to its start-of-gesture state and the full accumulated delta is
// applied, so reversing the pointer retraces the same sizes without
// hysteresis.
func (e *Engine) moveSplitterDrag(x, y int) {
	sd := e.splitDrag
	if sd == nil {
		return
	}
	delta := x - sd.startX
	if sd.sp.Axis == geom.Vertical {
		delta = y - sd.startY
	}
	if sd.sp.Kind == PanelSplitter {
		e.restoreStack(sd)
		if delta == 0 {
			e.Layout()
			return
		}
		e.ApplySplitterDelta(sd.sp.Zone, sd.sp.Index, delta)
		return
	}

	z := sd.sp.Zone
	if z == Right || z == Bottom {
		delta = -delta
	}
	prev := e.zoneThickness(z)
	next := e.clampZoneOverride(z, sd.zoneStart+delta)
	e.zoneSizes[z] = next
	e.Layout()
	if next != prev {
		e.notifyZoneResize(ZoneResizeEvent{Zone: z, Size: next, Prev: prev, Done: false})
	}
}

func (e *Engine) restoreStack(sd *splitterDrag) {
	panels := e.reg.zonePanels(sd.sp.Zone)
	for i, p := range panels {
		if i >= len(sd.snapshot) {
			break
		}
		snap := sd.snapshot[i]
		if p.collapsed != snap.collapsed {
			p.setCollapsed(snap.collapsed)
		}
		p.size = snap.size
		p.cachedSize = snap.cached
	}
}

func (e *Engine) endSplitterDrag() {
	sd := e.splitDrag
	if sd == nil {
		return
	}
	e.splitDrag = nil
	if sd.sp.Kind == ZoneSplitter {
		e.notifyZoneResize(ZoneResizeEvent{
			Zone: sd.sp.Zone,
			Size: e.zoneThickness(sd.sp.Zone),
			Prev: sd.zoneStart,
			Done: true,
		})
	}
}
