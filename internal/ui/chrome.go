package ui

import (
	"dockyard/internal/dock"
	"dockyard/internal/geom"
	"dockyard/internal/ui/textutil"
)

// titleBarRows matches the title strip height the engine reserves when
// it derives drag handles and content minimums.
const titleBarRows = 1

// renderPanelFrame renders one panel as an exact rect-sized block: the
// title strip on top, the hosted view's output below it. Collapsed
// panels keep the strip and blank the rest.
func (w *Workbench) renderPanelFrame(p *dock.Panel) string {
	r := p.Rect()
	title := w.renderTitleBar(p, r.W)
	if r.H <= titleBarRows {
		return title
	}
	body := ""
	if v, ok := w.views[p.ID]; ok && !p.Collapsed() {
		body = v.View()
	}
	return title + "\n" + padLines(body, r.W, r.H-titleBarRows)
}

// renderTitleBar paints the full-width strip that doubles as the drag
// handle. Focus is the only state it reflects; the collapse caret and
// resize corner are stamped on top from decoration rects.
func (w *Workbench) renderTitleBar(p *dock.Panel, width int) string {
	if width <= 0 {
		return ""
	}
	label := textutil.PadRightVisual(" "+p.Title, width)
	if p.ID == w.focus.Current {
		return Styles.Selected.Render(label)
	}
	return Styles.Muted.Render(label)
}

// contentRect is a panel rect with the title strip removed. Views size
// themselves to this, not to the full panel.
func contentRect(r geom.Rect) geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y + titleBarRows, W: r.W, H: r.H - titleBarRows}
}
