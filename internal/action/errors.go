package action

import "errors"

// Binding errors.
var (
	// ErrTargetNotSet indicates the target never left the uninitialized
	// sentinel by invocation time.
	ErrTargetNotSet = errors.New("action: target not set")

	// ErrTargetNull indicates a null target under the Throw behaviour.
	ErrTargetNull = errors.New("action: target is null")

	// ErrActionNotFound indicates no matching method under the Throw
	// behaviour.
	ErrActionNotFound = errors.New("action: no matching method on target")

	// ErrSignatureInvalid indicates a resolved method whose arity or
	// parameter types are incompatible with the bound capability.
	ErrSignatureInvalid = errors.New("action: method signature incompatible with binding")

	// ErrInvalidSpec indicates a binding spec with no method name or an
	// unrecognized slot kind.
	ErrInvalidSpec = errors.New("action: invalid binding spec")

	// ErrInvokePanic indicates the invoked method panicked.
	ErrInvokePanic = errors.New("action: method panicked")
)
