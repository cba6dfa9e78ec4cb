package resolve

import "errors"

// Resolver errors.
var (
	// ErrAmbiguousMatch indicates more than one invoker matched a method
	// name for the applicable binding kind.
	ErrAmbiguousMatch = errors.New("resolve: ambiguous method match")

	// ErrTargetMismatch indicates an invoker was called with a receiver of
	// the wrong type.
	ErrTargetMismatch = errors.New("resolve: target type mismatch")

	// ErrArgumentMismatch indicates an invoker was called with arguments
	// that do not fit its declared parameters.
	ErrArgumentMismatch = errors.New("resolve: argument mismatch")
)
