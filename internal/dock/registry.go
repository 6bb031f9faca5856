package dock

import "sort"

// registry owns the set of registered panels and their zone membership.
// Pure data plus small mutators; geometry belongs to the engine.
type registry struct {
	panels  map[string]*Panel
	zones   [zoneCount][]*Panel
	nextSeq int
}

func newRegistry() *registry {
	return &registry{panels: make(map[string]*Panel)}
}

func (r *registry) add(p *Panel) {
	p.seq = r.nextSeq
	r.nextSeq++
	r.panels[p.ID] = p
	r.zones[p.zone] = append(r.zones[p.zone], p)
	r.sortZone(p.zone)
}

// remove detaches the panel from the registry. Returns nil when the id is
// unknown.
func (r *registry) remove(id string) *Panel {
	p, ok := r.panels[id]
	if !ok {
		return nil
	}
	delete(r.panels, id)
	r.zones[p.zone] = withoutPanel(r.zones[p.zone], p)
	return p
}

func (r *registry) byID(id string) *Panel {
	return r.panels[id]
}

// move reassigns zone membership, appending at the end of the target zone's
// order. A floating target keeps bag order instead (z semantics).
func (r *registry) move(p *Panel, z Zone) {
	r.zones[p.zone] = withoutPanel(r.zones[p.zone], p)
	p.zone = z
	if z.IsDocked() {
		p.order = r.tailOrder(z)
	}
	r.zones[z] = append(r.zones[z], p)
	r.sortZone(z)
}

// raise moves a floating panel to the end of the bag so restacking assigns
// it the highest z.
func (r *registry) raise(p *Panel) {
	if p.zone != Floating {
		return
	}
	r.zones[Floating] = withoutPanel(r.zones[Floating], p)
	r.zones[Floating] = append(r.zones[Floating], p)
}

// zonePanels returns the zone's panels: docked zones ordered by (order,
// insertion), the floating bag in raise order. Callers must not mutate the
// returned slice.
func (r *registry) zonePanels(z Zone) []*Panel {
	return r.zones[z]
}

func (r *registry) count() int { return len(r.panels) }

func (r *registry) tailOrder(z Zone) int {
	list := r.zones[z]
	if len(list) == 0 {
		return 0
	}
	return list[len(list)-1].order + 1
}

// sortZone keeps docked lists stable-sorted by (order, insertion sequence).
// The floating bag is left alone; its slice order is the z order.
func (r *registry) sortZone(z Zone) {
	if !z.IsDocked() {
		return
	}
	list := r.zones[z]
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].order != list[j].order {
			return list[i].order < list[j].order
		}
		return list[i].seq < list[j].seq
	})
}

func withoutPanel(list []*Panel, p *Panel) []*Panel {
	for i, q := range list {
		if q == p {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
