// Package debounce delays a dispatch until calls stop arriving for a quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recently submitted function once no new call has arrived for Delay.
// Earlier pending functions are dropped, never cancelled mid-run.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// New returns a debouncer with the given quiet period. A non-positive delay dispatches immediately.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Delay reports the configured quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Call schedules fn, replacing any call still waiting.
func (d *Debouncer) Call(fn func()) {
	if fn == nil {
		return
	}
	if d.delay <= 0 {
		d.Stop()
		fn()
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

// Pending reports whether a call is waiting for its quiet period to elapse.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop drops the waiting call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
