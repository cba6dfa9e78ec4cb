// Package target tracks the current action-target value for a UI subject
// and notifies observers when it changes.
//
// A distinguished Uninitialized sentinel marks a subject whose target
// channel has not been supplied yet. The sentinel is not a null target:
// notifications carrying it are filtered silently, and bindings treat it
// as "nothing to do yet" rather than an absence to apply policy to.
package target

import "sync"

// sentinel is the type of the Uninitialized value.
type sentinel struct{}

func (sentinel) String() string { return "<uninitialized>" }

// Uninitialized is the placeholder meaning "no target has been supplied
// yet", distinct from an explicit nil target.
var Uninitialized any = sentinel{}

// IsUninitialized reports whether v is the uninitialized sentinel.
func IsUninitialized(v any) bool {
	_, ok := v.(sentinel)
	return ok
}

// Observer is called with the previous and new target values.
type Observer func(old, new any)

// Source supplies the current action-target value for one UI subject and
// notifies on change.
type Source interface {
	// Current returns the subject's current target value. Returns
	// Uninitialized until the host supplies one.
	Current() any

	// Subscribe registers an observer for target changes.
	Subscribe(obs Observer) *Subscription
}

// Subscription represents an active observer registration.
type Subscription struct {
	id     uint64
	cancel func(id uint64)
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.cancel != nil {
		s.cancel(s.id)
		s.cancel = nil
	}
}

// Value is a settable in-memory Source. Hosts adapt their framework's
// target-changed notifications by calling Set.
type Value struct {
	mu        sync.Mutex
	current   any
	observers map[uint64]Observer
	nextID    uint64
}

// NewValue creates a Value holding the uninitialized sentinel.
func NewValue() *Value {
	return &Value{
		current:   Uninitialized,
		observers: make(map[uint64]Observer),
	}
}

// Current returns the current value.
func (v *Value) Current() any {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set updates the value and notifies observers. Observers run outside the
// lock; ordering across observers is not guaranteed.
func (v *Value) Set(val any) {
	v.mu.Lock()
	old := v.current
	v.current = val
	observers := make([]Observer, 0, len(v.observers))
	for _, obs := range v.observers {
		observers = append(observers, obs)
	}
	v.mu.Unlock()

	for _, obs := range observers {
		obs(old, val)
	}
}

// Subscribe registers an observer for changes.
func (v *Value) Subscribe(obs Observer) *Subscription {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.observers[id] = obs

	return &Subscription{id: id, cancel: v.unsubscribe}
}

// unsubscribe removes an observer by ID.
func (v *Value) unsubscribe(id uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.observers, id)
}

// fixed is a Source whose value never changes.
type fixed struct {
	value any
}

// Fixed returns a Source pinned to an explicit target value. Used when a
// binding carries its own target override; no observation is needed.
func Fixed(value any) Source {
	return fixed{value: value}
}

func (f fixed) Current() any { return f.value }

func (f fixed) Subscribe(Observer) *Subscription {
	return &Subscription{}
}
