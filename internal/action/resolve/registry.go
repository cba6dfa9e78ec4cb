package resolve

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// MethodProvider lets a target type describe its own methods instead of
// (or in addition to) startup registration. The registry consults the
// provider when its own lookup misses.
type MethodProvider interface {
	// ActionMethod returns the invoker for a method name, if the target
	// exposes one.
	ActionMethod(name string) (Invoker, bool)
}

// registryKey identifies an invoker slot.
type registryKey struct {
	typ  reflect.Type
	name string
}

// Registry manages invoker registration by target type and method name.
type Registry struct {
	mu       sync.RWMutex
	invokers map[registryKey][]Invoker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		invokers: make(map[registryKey][]Invoker),
	}
}

// Add registers an invoker for a target type. Registering two invokers of
// the same binding kind under one (type, name) pair makes that slot
// ambiguous; Resolve will fail on it.
func (r *Registry) Add(t reflect.Type, inv Invoker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := registryKey{typ: t, name: inv.Name()}
	r.invokers[k] = append(r.invokers[k], inv)
}

// Register adds invokers under the type T. Instance invokers registered
// this way resolve against values of T; static invokers resolve against
// the type token TypeOf[T]().
func Register[T any](r *Registry, invs ...Invoker) {
	t := reflect.TypeFor[T]()
	for _, inv := range invs {
		r.Add(t, inv)
	}
}

// TypeOf returns the type token for T, used to resolve static methods.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Resolve finds the invoker registered for the target's dynamic type and
// the given method name. A reflect.Type target resolves static invokers;
// any other value resolves instance invokers, falling back to the target's
// MethodProvider implementation on a miss. Returns (nil, nil) when nothing
// matches and ErrAmbiguousMatch when more than one invoker of the
// applicable kind does.
func (r *Registry) Resolve(target any, name string) (Invoker, error) {
	if target == nil {
		return nil, nil
	}

	if t, ok := target.(reflect.Type); ok {
		return r.lookup(t, name, true)
	}

	inv, err := r.lookup(reflect.TypeOf(target), name, false)
	if err != nil {
		return nil, err
	}
	if inv != nil {
		return inv, nil
	}

	if provider, ok := target.(MethodProvider); ok {
		if inv, ok := provider.ActionMethod(name); ok {
			return inv, nil
		}
	}
	return nil, nil
}

// lookup finds invokers of one binding kind for an exact type.
func (r *Registry) lookup(t reflect.Type, name string, static bool) (Invoker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found Invoker
	for _, inv := range r.invokers[registryKey{typ: t, name: name}] {
		if inv.Static() != static {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: method %q on %v", ErrAmbiguousMatch, name, t)
		}
		found = inv
	}
	return found, nil
}

// Has reports whether any invoker is registered for the type and name.
func (r *Registry) Has(t reflect.Type, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.invokers[registryKey{typ: t, name: name}]) > 0
}

// Methods returns the method names registered for a type, sorted.
func (r *Registry) Methods(t reflect.Type) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for k := range r.invokers {
		if k.typ == t {
			names = append(names, k.name)
		}
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered (type, name) slots.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.invokers)
}

// Clear removes all registrations.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invokers = make(map[registryKey][]Invoker)
}
