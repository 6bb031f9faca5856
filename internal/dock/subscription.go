package dock

// ZoneResizeEvent describes one step of a zone-boundary splitter drag.
// Done marks the final event of the gesture.
type ZoneResizeEvent struct {
	Zone Zone
	Size int
	Prev int
	Done bool
}

// Subscription is the handle returned by OnLayout and OnZoneResize. Cancel
// is idempotent; Destroy cancels every outstanding subscription.
type Subscription struct {
	engine *Engine
	id     int
	done   bool
}

// Cancel stops delivery. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.done {
		return
	}
	s.done = true
	if s.engine != nil {
		s.engine.dropSub(s.id)
	}
}

type layoutSub struct {
	id int
	fn func()
}

type zoneSub struct {
	id int
	fn func(ZoneResizeEvent)
}

// OnLayout registers fn to run after every layout pass.
func (e *Engine) OnLayout(fn func()) *Subscription {
	if fn == nil {
		return &Subscription{done: true}
	}
	e.nextSubID++
	e.layoutSubs = append(e.layoutSubs, layoutSub{id: e.nextSubID, fn: fn})
	return &Subscription{engine: e, id: e.nextSubID}
}

// OnZoneResize registers fn to run for each step of a zone-boundary
// splitter drag.
func (e *Engine) OnZoneResize(fn func(ZoneResizeEvent)) *Subscription {
	if fn == nil {
		return &Subscription{done: true}
	}
	e.nextSubID++
	e.zoneSubs = append(e.zoneSubs, zoneSub{id: e.nextSubID, fn: fn})
	return &Subscription{engine: e, id: e.nextSubID}
}

func (e *Engine) dropSub(id int) {
	for i, s := range e.layoutSubs {
		if s.id == id {
			e.layoutSubs = append(e.layoutSubs[:i], e.layoutSubs[i+1:]...)
			return
		}
	}
	for i, s := range e.zoneSubs {
		if s.id == id {
			e.zoneSubs = append(e.zoneSubs[:i], e.zoneSubs[i+1:]...)
			return
		}
	}
}

// notifyLayout runs the layout subscribers. A panicking subscriber is
// recovered and logged; it must not corrupt the pass that triggered it.
func (e *Engine) notifyLayout() {
	subs := make([]layoutSub, len(e.layoutSubs))
	copy(subs, e.layoutSubs)
	for _, s := range subs {
		e.safeCall(func() { s.fn() })
	}
}

func (e *Engine) notifyZoneResize(ev ZoneResizeEvent) {
	subs := make([]zoneSub, len(e.zoneSubs))
	copy(subs, e.zoneSubs)
	for _, s := range subs {
		e.safeCall(func() { s.fn(ev) })
	}
}

func (e *Engine) safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.cfg.Logger.Error("subscriber panicked", "panic", r)
		}
	}()
	fn()
}
