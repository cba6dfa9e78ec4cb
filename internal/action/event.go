package action

import (
	"fmt"
	"reflect"

	"github.com/dshills/actionbind/internal/action/target"
)

// EventBinding exposes a binding as a callback matching an event shape of
// zero, one, or two positional arguments (conventionally sender and event
// data). The callback forwards the compatible prefix of the event's
// arguments to the resolved method.
type EventBinding struct {
	eng *Engine
	ref *target.Reference
}

// Callback0 produces a callback for zero-argument event shapes.
func (b *EventBinding) Callback0() func() error {
	return func() error {
		return b.call()
	}
}

// Callback1 produces a callback for one-argument event shapes.
func (b *EventBinding) Callback1() func(arg any) error {
	return func(arg any) error {
		return b.call(arg)
	}
}

// Callback2 produces a callback for the conventional (sender, event data)
// shape.
func (b *EventBinding) Callback2() func(sender, data any) error {
	return func(sender, data any) error {
		return b.call(sender, data)
	}
}

// Engine returns the binding's dispatch engine.
func (b *EventBinding) Engine() *Engine {
	return b.eng
}

// Close stops target observation.
func (b *EventBinding) Close() {
	if b.ref != nil {
		b.ref.Close()
	}
}

// call runs the invocation guard, then forwards the compatible prefix of
// the event's arguments. A resolved method declaring more parameters than
// the event supplies, or parameters the arguments cannot satisfy, fails
// with ErrSignatureInvalid at call time. With no resolved method the guard
// decides: Throw fails, anything else makes the callback a no-op.
func (b *EventBinding) call(args ...any) error {
	inv := b.eng.Invoker()
	if inv == nil {
		return b.eng.Invoke()
	}

	n := inv.NumParams()
	if n > len(args) {
		err := fmt.Errorf("%w: method %q declares %d parameters, event supplies %d",
			ErrSignatureInvalid, inv.Name(), n, len(args))
		b.eng.logger.Error("event callback rejected", "error", err)
		return err
	}

	forwarded := args[:n]
	for i, pt := range inv.ParamTypes() {
		if err := checkAssignable(forwarded[i], pt); err != nil {
			err = fmt.Errorf("%w: method %q parameter %d: %v",
				ErrSignatureInvalid, inv.Name(), i, err)
			b.eng.logger.Error("event callback rejected", "error", err)
			return err
		}
	}
	return b.eng.Invoke(forwarded...)
}

// checkAssignable verifies one event argument satisfies a declared
// parameter type.
func checkAssignable(arg any, pt reflect.Type) error {
	if arg == nil {
		if !isNilable(pt) {
			return fmt.Errorf("nil argument for non-nilable type %v", pt)
		}
		return nil
	}
	at := reflect.TypeOf(arg)
	if !at.AssignableTo(pt) {
		return fmt.Errorf("argument type %v is not assignable to %v", at, pt)
	}
	return nil
}

// isNilable reports whether a type can hold nil.
func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
