// Package policy defines the behaviours applied when an action target is
// absent or a bound method cannot be found, and resolves the Default
// behaviour to its context-specific concrete value.
package policy

import "fmt"

// Behaviour controls what a binding does when its target is unavailable
// or its method cannot be resolved.
type Behaviour int

const (
	// Default resolves to a context-specific concrete behaviour.
	Default Behaviour = iota

	// Enable keeps the binding usable; invoking it quietly no-ops when
	// nothing can be called.
	Enable

	// Disable marks the binding unavailable (commands report not executable).
	Disable

	// Throw fails loudly: at target-change time for null targets, at
	// invocation-guard time for missing methods.
	Throw
)

// String returns the behaviour name.
func (b Behaviour) String() string {
	switch b {
	case Default:
		return "default"
	case Enable:
		return "enable"
	case Disable:
		return "disable"
	case Throw:
		return "throw"
	default:
		return "unknown"
	}
}

// ParseBehaviour parses a behaviour name.
func ParseBehaviour(s string) (Behaviour, error) {
	switch s {
	case "", "default":
		return Default, nil
	case "enable":
		return Enable, nil
	case "disable":
		return Disable, nil
	case "throw":
		return Throw, nil
	default:
		return Default, fmt.Errorf("policy: unknown behaviour %q", s)
	}
}

// Context identifies which of the four independent policy slots is being
// consulted.
type Context int

const (
	// CommandNullTarget governs a command binding whose target is null.
	CommandNullTarget Context = iota

	// CommandActionNotFound governs a command binding whose method was not
	// resolved on a non-null target.
	CommandActionNotFound

	// EventNullTarget governs an event binding whose target is null.
	EventNullTarget

	// EventActionNotFound governs an event binding whose method was not
	// resolved on a non-null target.
	EventActionNotFound
)

// String returns the context name.
func (c Context) String() string {
	switch c {
	case CommandNullTarget:
		return "command.nullTarget"
	case CommandActionNotFound:
		return "command.actionNotFound"
	case EventNullTarget:
		return "event.nullTarget"
	case EventActionNotFound:
		return "event.actionNotFound"
	default:
		return "unknown"
	}
}

// Effective resolves a configured behaviour to its concrete value for the
// given context. Non-Default behaviours pass through unchanged. Default
// resolves per slot: command/null is Disable (Enable in design mode),
// event/null is Enable, and both actionNotFound slots are Throw.
func Effective(ctx Context, configured Behaviour, designMode bool) Behaviour {
	if configured != Default {
		return configured
	}

	switch ctx {
	case CommandNullTarget:
		if designMode {
			return Enable
		}
		return Disable
	case CommandActionNotFound:
		return Throw
	case EventNullTarget:
		return Enable
	case EventActionNotFound:
		return Throw
	default:
		return Throw
	}
}
