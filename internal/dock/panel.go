package dock

import (
	"dockyard/internal/geom"
)

// Panel is one tracked rectangular unit. Identity and host payload are
// exported; placement state is owned by the engine and read through
// accessors. The engine never renders Body, it only probes it for the
// optional capability interfaces below.
type Panel struct {
	ID    string
	Title string
	Body  any

	zone           Zone
	order          int
	seq            int
	size           int
	rect           geom.Rect
	z              int
	minSize        int
	contentMinSize int
	dockHint       int
	collapsed      bool
	cachedSize     int
}

// Collapsible is implemented by panel bodies that can render a header-only
// footprint. Auto-collapse consults CollapsedSize for the collapsed extent
// and keeps the body informed through SetCollapsed.
type Collapsible interface {
	Collapsed() bool
	SetCollapsed(bool)
	CollapsedSize() int
}

// Measurable is implemented by panel bodies that know their current
// on-screen rectangle. Register uses it to seed a floating rect when the
// caller does not supply one.
type Measurable interface {
	MeasureRect() (geom.Rect, bool)
}

// Zone returns the panel's current membership.
func (p *Panel) Zone() Zone { return p.zone }

// Order returns the panel's sort key within its zone.
func (p *Panel) Order() int { return p.order }

// Size returns the panel's extent along its zone's stacking axis: height in
// left/right/center stacks, width in top/bottom stacks. Zero until the first
// layout materializes it. Meaningless while floating.
func (p *Panel) Size() int { return p.size }

// Rect returns the panel's on-screen rectangle. Authoritative while
// floating; recomputed by each layout pass while docked.
func (p *Panel) Rect() geom.Rect { return p.rect }

// Z returns the last-assigned z-order value. Higher is closer to the viewer.
func (p *Panel) Z() int { return p.z }

// Collapsed reports whether the panel is in its header-only footprint.
func (p *Panel) Collapsed() bool { return p.collapsed }

// MinSize returns the stacking-axis floor used during redistribution.
func (p *Panel) MinSize() int { return p.minSize }

// ContentMinSize returns the collapse threshold. Zero means the panel never
// auto-collapses.
func (p *Panel) ContentMinSize() int { return p.contentMinSize }

// collapsedSize returns the extent the panel occupies while collapsed: the
// body's header footprint when it exposes one, the collapse threshold
// otherwise.
func (p *Panel) collapsedSize() int {
	if c, ok := p.Body.(Collapsible); ok {
		if s := c.CollapsedSize(); s > 0 {
			return s
		}
	}
	return p.contentMinSize
}

// effectiveMin is the floor the splitter walk may shrink the panel to.
func (p *Panel) effectiveMin() int {
	if p.collapsed {
		return p.collapsedSize()
	}
	return p.minSize
}

// setCollapsed flips the collapse flag and tells a Collapsible body.
func (p *Panel) setCollapsed(v bool) {
	p.collapsed = v
	if c, ok := p.Body.(Collapsible); ok {
		c.SetCollapsed(v)
	}
}
