package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"

	"dockyard/internal/dock"
	"dockyard/internal/geom"
)

// Glyphs for chrome the layout engine only describes as rects.
const (
	splitterGlyphRow = "─" // horizontal bar, dragged vertically
	splitterGlyphCol = "│" // vertical bar, dragged horizontally
	dockGuideGlyph   = "░"
	collapseOpen     = "▾"
	collapseClosed   = "▸"
	resizeCorner     = "◢"
)

// render composites one frame off the engine's current geometry: docked
// panels first, then splitter bars, then floating panels bottom-up so the
// topmost panel paints last. The drag guide goes on top of everything;
// the dragged panel is itself floating and near the edge its clamped rect
// coincides with the hinted zone rect, so painting the guide any earlier
// would bury the preview under the drag.
func (w *Workbench) render() string {
	vp := w.engine.Viewport()
	if vp.W <= 0 || vp.H <= 0 {
		return ""
	}
	buf := cellbuf.NewBuffer(vp.W, vp.H)

	byZ := w.engine.PanelsByZ()
	for _, p := range byZ {
		if p.Zone() == dock.Floating {
			continue
		}
		w.paintPanel(buf, p)
	}
	for _, sp := range w.engine.Splitters() {
		w.paintSplitter(buf, sp)
	}
	for _, p := range byZ {
		if p.Zone() != dock.Floating {
			continue
		}
		w.paintPanel(buf, p)
	}
	if _, guide, ok := w.engine.DockHint(); ok {
		paintFill(buf, guide, dockGuideGlyph, Styles.Status)
	}

	return renderBufferLines(buf)
}

// paintPanel draws a panel's frame into the buffer and then stamps its
// decoration cells on top, so the toggle and resize handles always cover
// whatever the title bar or body put there.
func (w *Workbench) paintPanel(buf *cellbuf.Buffer, p *dock.Panel) {
	r := p.Rect()
	if r.Empty() {
		return
	}
	block := w.renderPanelFrame(p)
	cellbuf.SetContentRect(buf, block, cellbuf.Rect(r.X, r.Y, r.W, r.H))

	d, ok := w.engine.Decoration(p.ID)
	if !ok {
		return
	}
	style := Styles.Muted
	if p.ID == w.focus.Current {
		style = Styles.Selected
	}
	if !d.Collapse.Empty() {
		glyph := collapseOpen
		if p.Collapsed() {
			glyph = collapseClosed
		}
		paintFill(buf, d.Collapse, glyph, style)
	}
	if !d.Resize.Empty() {
		paintFill(buf, d.Resize, resizeCorner, style)
	}
}

func (w *Workbench) paintSplitter(buf *cellbuf.Buffer, sp dock.Splitter) {
	glyph := splitterGlyphRow
	if sp.Axis == geom.Horizontal {
		glyph = splitterGlyphCol
	}
	paintFill(buf, sp.Rect, glyph, Styles.Splitter)
}

// paintFill stamps a rect with copies of a single glyph.
func paintFill(buf *cellbuf.Buffer, r geom.Rect, glyph string, style lipgloss.Style) {
	if r.Empty() {
		return
	}
	line := style.Render(strings.Repeat(glyph, r.W))
	rows := make([]string, r.H)
	for i := range rows {
		rows[i] = line
	}
	cellbuf.SetContentRect(buf, strings.Join(rows, "\n"), cellbuf.Rect(r.X, r.Y, r.W, r.H))
}

func fitLine(text string, width int) string {
	if width <= 0 {
		return ""
	}
	truncated := ansi.Truncate(text, width, "")
	padding := width - lipgloss.Width(truncated)
	if padding < 0 {
		padding = 0
	}
	return truncated + strings.Repeat(" ", padding)
}

// padLines shapes text into an exact width-by-height block, truncating
// or padding both axes as needed.
func padLines(text string, width, height int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = fitLine(line, width)
	}
	for len(lines) < height {
		lines = append(lines, fitLine("", width))
	}
	return strings.Join(lines, "\n")
}

// overlayCentered paints overlay on top of base, centered, with an
// opaque backdrop so base content does not bleed through ragged lines.
func overlayCentered(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}
	overlayW := lipgloss.Width(overlay)
	overlayH := lipgloss.Height(overlay)
	if overlayW > width {
		overlayW = width
	}
	if overlayH > height {
		overlayH = height
	}

	base = padLines(base, width, height)
	baseBuf := cellbuf.NewBuffer(width, height)
	cellbuf.SetContent(baseBuf, base)
	if overlayW <= 0 || overlayH <= 0 {
		return renderBufferLines(baseBuf)
	}

	x := (width - overlayW) / 2
	y := (height - overlayH) / 2
	rect := cellbuf.Rect(x, y, overlayW, overlayH)

	bgLine := strings.Repeat(" ", overlayW)
	bgBlock := strings.Repeat(bgLine+"\n", overlayH-1) + bgLine
	cellbuf.SetContentRect(baseBuf, bgBlock, rect)
	cellbuf.SetContentRect(baseBuf, overlay, rect)

	return renderBufferLines(baseBuf)
}

func renderBufferLines(buf *cellbuf.Buffer) string {
	height := buf.Bounds().Dy()
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		_, line := cellbuf.RenderLine(buf, y)
		lines[y] = line
	}
	return strings.Join(lines, "\n")
}
