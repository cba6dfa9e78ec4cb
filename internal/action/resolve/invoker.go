// Package resolve maps (target type, method name) pairs to typed invokers.
//
// Instead of looking methods up by name with reflection at call time,
// targets register invokers at startup (or implement MethodProvider to
// describe themselves). Resolution finds a name match; validating the
// discovered signature against the capability being bound is the caller's
// responsibility, using the arity and parameter types the invoker exposes.
package resolve

import (
	"fmt"
	"reflect"

	"github.com/dshills/actionbind/internal/fault"
)

// Invoker is a callable method bound to a target type.
type Invoker interface {
	// Name returns the method name this invoker was registered under.
	Name() string

	// NumParams returns the number of parameters the method declares,
	// not counting the receiver.
	NumParams() int

	// ParamTypes returns the declared parameter types in order.
	ParamTypes() []reflect.Type

	// Static reports whether the method is invoked without a receiver.
	Static() bool

	// Invoke calls the method on target with the given arguments. The
	// returned value is non-nil only when the method produced an
	// asynchronous computation (a fault.Future). Argument count must
	// equal NumParams; callers adapt arity beforehand.
	Invoke(target any, args ...any) (any, error)
}

// funcInvoker adapts a plain function to the Invoker interface.
type funcInvoker struct {
	name   string
	params []reflect.Type
	static bool
	call   func(target any, args []any) (any, error)
}

func (f *funcInvoker) Name() string               { return f.name }
func (f *funcInvoker) NumParams() int             { return len(f.params) }
func (f *funcInvoker) ParamTypes() []reflect.Type { return f.params }
func (f *funcInvoker) Static() bool               { return f.static }

func (f *funcInvoker) Invoke(target any, args ...any) (any, error) {
	if len(args) != len(f.params) {
		return nil, fmt.Errorf("%w: method %q takes %d parameters, got %d",
			ErrArgumentMismatch, f.name, len(f.params), len(args))
	}
	return f.call(target, args)
}

// receiver asserts the target to the invoker's receiver type.
func receiver[T any](name string, target any) (T, error) {
	t, ok := target.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: method %q expects receiver %v, got %T",
			ErrTargetMismatch, name, reflect.TypeFor[T](), target)
	}
	return t, nil
}

// arg asserts one argument to its declared type. Nil arguments become the
// type's zero value.
func arg[A any](name string, v any) (A, error) {
	if v == nil {
		var zero A
		return zero, nil
	}
	a, ok := v.(A)
	if !ok {
		return a, fmt.Errorf("%w: method %q expects argument of type %v, got %T",
			ErrArgumentMismatch, name, reflect.TypeFor[A](), v)
	}
	return a, nil
}

// Func0 adapts a niladic method returning an error.
func Func0[T any](name string, fn func(T) error) Invoker {
	return &funcInvoker{
		name: name,
		call: func(target any, _ []any) (any, error) {
			t, err := receiver[T](name, target)
			if err != nil {
				return nil, err
			}
			return nil, fn(t)
		},
	}
}

// Func1 adapts a one-parameter method returning an error.
func Func1[T, A any](name string, fn func(T, A) error) Invoker {
	return &funcInvoker{
		name:   name,
		params: []reflect.Type{reflect.TypeFor[A]()},
		call: func(target any, args []any) (any, error) {
			t, err := receiver[T](name, target)
			if err != nil {
				return nil, err
			}
			a, err := arg[A](name, args[0])
			if err != nil {
				return nil, err
			}
			return nil, fn(t, a)
		},
	}
}

// Func2 adapts a two-parameter method returning an error.
func Func2[T, A, B any](name string, fn func(T, A, B) error) Invoker {
	return &funcInvoker{
		name:   name,
		params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()},
		call: func(target any, args []any) (any, error) {
			t, err := receiver[T](name, target)
			if err != nil {
				return nil, err
			}
			a, err := arg[A](name, args[0])
			if err != nil {
				return nil, err
			}
			b, err := arg[B](name, args[1])
			if err != nil {
				return nil, err
			}
			return nil, fn(t, a, b)
		},
	}
}

// Async0 adapts a niladic method returning an asynchronous computation.
func Async0[T any](name string, fn func(T) fault.Future) Invoker {
	return &funcInvoker{
		name: name,
		call: func(target any, _ []any) (any, error) {
			t, err := receiver[T](name, target)
			if err != nil {
				return nil, err
			}
			return fn(t), nil
		},
	}
}

// Async1 adapts a one-parameter method returning an asynchronous
// computation.
func Async1[T, A any](name string, fn func(T, A) fault.Future) Invoker {
	return &funcInvoker{
		name:   name,
		params: []reflect.Type{reflect.TypeFor[A]()},
		call: func(target any, args []any) (any, error) {
			t, err := receiver[T](name, target)
			if err != nil {
				return nil, err
			}
			a, err := arg[A](name, args[0])
			if err != nil {
				return nil, err
			}
			return fn(t, a), nil
		},
	}
}

// Async2 adapts a two-parameter method returning an asynchronous
// computation.
func Async2[T, A, B any](name string, fn func(T, A, B) fault.Future) Invoker {
	return &funcInvoker{
		name:   name,
		params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()},
		call: func(target any, args []any) (any, error) {
			t, err := receiver[T](name, target)
			if err != nil {
				return nil, err
			}
			a, err := arg[A](name, args[0])
			if err != nil {
				return nil, err
			}
			b, err := arg[B](name, args[1])
			if err != nil {
				return nil, err
			}
			return fn(t, a, b), nil
		},
	}
}

// Static0 adapts a receiver-less function. Static invokers resolve only
// against a type token, never an instance.
func Static0(name string, fn func() error) Invoker {
	return &funcInvoker{
		name:   name,
		static: true,
		call: func(_ any, _ []any) (any, error) {
			return nil, fn()
		},
	}
}

// Static1 adapts a receiver-less function with one parameter.
func Static1[A any](name string, fn func(A) error) Invoker {
	return &funcInvoker{
		name:   name,
		params: []reflect.Type{reflect.TypeFor[A]()},
		static: true,
		call: func(_ any, args []any) (any, error) {
			a, err := arg[A](name, args[0])
			if err != nil {
				return nil, err
			}
			return nil, fn(a)
		},
	}
}

// Static2 adapts a receiver-less function with two parameters.
func Static2[A, B any](name string, fn func(A, B) error) Invoker {
	return &funcInvoker{
		name:   name,
		params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()},
		static: true,
		call: func(_ any, args []any) (any, error) {
			a, err := arg[A](name, args[0])
			if err != nil {
				return nil, err
			}
			b, err := arg[B](name, args[1])
			if err != nil {
				return nil, err
			}
			return nil, fn(a, b)
		},
	}
}
