package dock

import "dockyard/internal/geom"

// titleBarSize is the height of the interactive title strip.
const titleBarSize = 1

// Decoration is the chrome geometry the layout pass derives for one panel.
// Zero rects mean the affordance does not apply: only floating panels get a
// resize corner, only collapsible panels get a collapse toggle.
type Decoration struct {
	// Title is the drag handle along the panel's top edge.
	Title geom.Rect
	// Collapse is the toggle at the title bar's far end.
	Collapse geom.Rect
	// Resize is the bottom-right corner handle.
	Resize geom.Rect
}

// rebuildDecorations recomputes chrome rects from current panel geometry.
// Hit routing checks Resize, then Collapse, then Title, so the narrower
// affordances win where they overlap the title strip.
func (e *Engine) rebuildDecorations() {
	for id := range e.decor {
		delete(e.decor, id)
	}
	for _, p := range e.Panels() {
		r := p.rect
		if r.Empty() {
			e.decor[p.ID] = Decoration{}
			continue
		}
		d := Decoration{
			Title: geom.Rect{X: r.X, Y: r.Y, W: r.W, H: titleBarSize},
		}
		if p.zone.collapsible() && p.contentMinSize > 0 && r.W > 2 {
			d.Collapse = geom.Rect{X: r.Right() - 2, Y: r.Y, W: 1, H: titleBarSize}
		}
		if p.zone == Floating && r.W > 2 && r.H > 2 {
			d.Resize = geom.Rect{X: r.Right() - 1, Y: r.Bottom() - 1, W: 1, H: 1}
		}
		e.decor[p.ID] = d
	}
}
