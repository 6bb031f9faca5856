package config

import (
	"sync"
	"time"
)

const defaultDebounce = 250 * time.Millisecond

// debouncer coalesces a burst of triggers into a single call. Editors tend
// to emit several filesystem events per save, and we want one reload.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	seq      uint64
}

func newDebouncer(interval time.Duration) *debouncer {
	if interval <= 0 {
		interval = defaultDebounce
	}
	return &debouncer{interval: interval}
}

// trigger schedules fn after the interval, replacing any pending call.
func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		// Stop can lose the race against a timer that already fired, so
		// only the newest scheduled call may run.
		live := seq == d.seq
		if live {
			d.timer = nil
		}
		d.mu.Unlock()
		if live {
			fn()
		}
	})
}

// cancel discards any pending call, including one whose timer already fired.
func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
