package dock

import "sort"

// floatBase separates the two z bands: docked panels stack from 1, floating
// panels from floatBase. Floating always paints over docked.
const floatBase = 1 << 16

// restack reassigns z values. Docked panels take ascending values following
// the fixed zone order and each zone's stack order; the floating bag takes
// ascending values above floatBase in raise order.
func (e *Engine) restack() {
	z := 1
	for _, zone := range dockedZones {
		for _, p := range e.reg.zonePanels(zone) {
			p.z = z
			z++
		}
	}
	z = floatBase
	for _, p := range e.reg.zonePanels(Floating) {
		p.z = z
		z++
	}
}

// PanelsByZ returns every panel sorted back-to-front. Painting in slice
// order renders floating panels over docked ones and the most recently
// raised panel last.
func (e *Engine) PanelsByZ() []*Panel {
	out := e.Panels()
	sort.SliceStable(out, func(i, j int) bool { return out[i].z < out[j].z })
	return out
}
