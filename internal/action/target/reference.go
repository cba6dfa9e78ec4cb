package target

import "sync"

// Reference observes one or two sources and exposes their effective
// target: the first value among backup-then-primary that is not the
// uninitialized sentinel. The backup takes precedence only when it was
// explicitly supplied and carries a concrete value.
type Reference struct {
	mu      sync.Mutex
	primary Source
	backup  Source
	subs    []*Subscription
	last    any
	handler Observer
	closed  bool
}

// NewReference creates a reference over a primary source and an optional
// backup (pass nil for none). The handler is invoked with (old, new)
// effective values on every accepted change; sentinel values are filtered
// silently. Call Observe to start receiving notifications.
func NewReference(primary Source, backup Source, handler Observer) *Reference {
	return &Reference{
		primary: primary,
		backup:  backup,
		last:    Uninitialized,
		handler: handler,
	}
}

// Current returns the effective target value.
func (r *Reference) Current() any {
	if r.backup != nil {
		if v := r.backup.Current(); !IsUninitialized(v) {
			return v
		}
	}
	if r.primary != nil {
		return r.primary.Current()
	}
	return Uninitialized
}

// Observe subscribes to both sources and delivers the current effective
// value to the handler if one is already concrete.
func (r *Reference) Observe() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if r.primary != nil {
		r.subs = append(r.subs, r.primary.Subscribe(func(_, _ any) {
			r.changed()
		}))
	}
	if r.backup != nil {
		r.subs = append(r.subs, r.backup.Subscribe(func(_, _ any) {
			r.changed()
		}))
	}
	r.mu.Unlock()

	// The channel may already carry a concrete value at observe time.
	r.changed()
}

// changed recomputes the effective value and forwards it to the handler.
// The sentinel means the channel is still initializing; it is dropped
// without touching the handler.
func (r *Reference) changed() {
	now := r.Current()
	if IsUninitialized(now) {
		return
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	old := r.last
	r.last = now
	handler := r.handler
	r.mu.Unlock()

	if handler != nil {
		handler(old, now)
	}
}

// Close unsubscribes from both sources. The reference delivers no further
// notifications.
func (r *Reference) Close() {
	r.mu.Lock()
	subs := r.subs
	r.subs = nil
	r.closed = true
	r.mu.Unlock()

	for _, s := range subs {
		s.Unsubscribe()
	}
}
