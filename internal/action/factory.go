package action

import (
	"fmt"

	"github.com/dshills/actionbind/internal/action/policy"
	"github.com/dshills/actionbind/internal/action/resolve"
	"github.com/dshills/actionbind/internal/action/target"
)

// SlotKind identifies the kind of UI slot a binding attaches to.
type SlotKind int

const (
	// SlotCommand is a command-typed property.
	SlotCommand SlotKind = iota

	// SlotEvent is an event slot with the conventional (sender, event
	// data) shape.
	SlotEvent

	// SlotAttachedEvent is an attached-event-style method slot; it also
	// produces the two-argument callback shape.
	SlotAttachedEvent
)

// String returns the slot kind name.
func (k SlotKind) String() string {
	switch k {
	case SlotCommand:
		return "command"
	case SlotEvent:
		return "event"
	case SlotAttachedEvent:
		return "attached-event"
	default:
		return "unknown"
	}
}

// Spec is the action specifier the declarative layer produces: the method
// to call, an optional explicit target override, and the two policy
// behaviours.
type Spec struct {
	// Method is the name of the method to resolve. Required.
	Method string

	// Target, when non-nil, pins the binding to a fixed target; no
	// observation is wired.
	Target any

	// NullTarget is the behaviour when the target is null.
	NullTarget policy.Behaviour

	// NotFound is the behaviour when no method resolves on the target.
	NotFound policy.Behaviour
}

// Factory builds command and event bindings from specs, wiring target
// observation against the host's action-target channels.
type Factory struct {
	cfg Config
}

// NewFactory creates a factory. Zero-value collaborators in cfg are
// filled with defaults.
func NewFactory(cfg Config) *Factory {
	if cfg.Registry == nil {
		cfg.Registry = resolve.NewRegistry()
	}
	return &Factory{cfg: cfg}
}

// Command builds a command binding. subject is the primary action-target
// channel; backup, when non-nil, takes precedence while it carries a
// concrete value. Both are ignored when the spec pins an explicit target.
func (f *Factory) Command(spec Spec, subject, backup target.Source) (*Command, error) {
	eng, ref, err := f.wire(spec, policy.CommandNullTarget, policy.CommandActionNotFound, commandValidator, subject, backup)
	if err != nil {
		return nil, err
	}
	return &Command{eng: eng, ref: ref}, nil
}

// Event builds an event binding. Event signature compatibility is checked
// per callback at call time, so no resolution-time validator applies.
func (f *Factory) Event(spec Spec, subject, backup target.Source) (*EventBinding, error) {
	eng, ref, err := f.wire(spec, policy.EventNullTarget, policy.EventActionNotFound, nil, subject, backup)
	if err != nil {
		return nil, err
	}
	return &EventBinding{eng: eng, ref: ref}, nil
}

// Bind dispatches on the slot kind, returning a *Command for command
// slots and an *EventBinding for event and attached-event slots.
func (f *Factory) Bind(kind SlotKind, spec Spec, subject, backup target.Source) (any, error) {
	switch kind {
	case SlotCommand:
		return f.Command(spec, subject, backup)
	case SlotEvent, SlotAttachedEvent:
		return f.Event(spec, subject, backup)
	default:
		return nil, fmt.Errorf("%w: unrecognized slot kind %d", ErrInvalidSpec, kind)
	}
}

// wire builds the engine and, for observed targets, the reference driving
// it. A resolution failure on the initial target value is a fatal setup
// error for the binding.
func (f *Factory) wire(spec Spec, nullCtx, missCtx policy.Context, validate func(resolve.Invoker) error, subject, backup target.Source) (*Engine, *target.Reference, error) {
	if spec.Method == "" {
		return nil, nil, fmt.Errorf("%w: no method name configured", ErrInvalidSpec)
	}

	eng := NewEngine(f.cfg, spec, nullCtx, missCtx)
	if validate != nil {
		eng.SetValidator(validate)
	}

	if spec.Target != nil {
		// Explicit override: the target is fixed, resolve once.
		if err := eng.TargetChanged(target.Uninitialized, spec.Target); err != nil {
			return nil, nil, err
		}
		return eng, nil, nil
	}

	if subject == nil {
		return nil, nil, fmt.Errorf("%w: no target and no subject to observe", ErrInvalidSpec)
	}

	ref := target.NewReference(subject, backup, func(old, new any) {
		// Failures are logged by the engine and kept as its setup error;
		// there is no caller on this path to return them to.
		_ = eng.TargetChanged(old, new)
	})
	ref.Observe()

	// Observe delivered the channel's current value synchronously; a
	// throw-policy failure there is a setup failure for the binding.
	if err := eng.Err(); err != nil {
		ref.Close()
		return nil, nil, err
	}
	return eng, ref, nil
}
