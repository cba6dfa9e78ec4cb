package action

import (
	"fmt"
	"sync"

	"github.com/dshills/actionbind/internal/action/policy"
	"github.com/dshills/actionbind/internal/action/resolve"
	"github.com/dshills/actionbind/internal/action/target"
	"github.com/dshills/actionbind/internal/fault"
	"github.com/dshills/actionbind/internal/log"
)

// State describes the engine's binding progress.
type State int

const (
	// StateUnbound means no target value has been seen yet.
	StateUnbound State = iota

	// StateBoundNoMethod means a target value arrived but no method is
	// resolved (null target, missing method, or a resolution failure).
	StateBoundNoMethod

	// StateBoundMethod means a method is resolved and validated.
	StateBoundMethod
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateBoundNoMethod:
		return "bound-no-method"
	case StateBoundMethod:
		return "bound"
	default:
		return "unknown"
	}
}

// Engine owns a binding's resolved-method slot. It re-runs resolution on
// every accepted target change and invokes the resolved method on demand,
// handing asynchronous results to the fault sink.
//
// The resolved slot is overwritten synchronously on each target change,
// last write wins; an invocation already in flight completes against the
// target it captured.
type Engine struct {
	mu sync.Mutex

	method   string
	registry *resolve.Registry
	logger   *log.Logger
	sink     *fault.Sink
	metrics  *Metrics

	designMode    bool
	nullCtx       policy.Context
	missCtx       policy.Context
	nullBehaviour policy.Behaviour
	missBehaviour policy.Behaviour

	// validate is the capability-specific signature check applied after a
	// name match.
	validate func(resolve.Invoker) error

	state    State
	current  any
	invoker  resolve.Invoker
	setupErr error
	rebind   []func()
}

// NewEngine creates an engine for one binding. The null and missing
// policy contexts select which of the four policy slots the configured
// behaviours fill.
func NewEngine(cfg Config, spec Spec, nullCtx, missCtx policy.Context) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	registry := cfg.Registry
	if registry == nil {
		registry = resolve.NewRegistry()
	}

	e := &Engine{
		method:        spec.Method,
		registry:      registry,
		logger:        logger.WithComponent("engine").WithField("method", spec.Method),
		sink:          cfg.Sink,
		designMode:    cfg.DesignMode,
		nullCtx:       nullCtx,
		missCtx:       missCtx,
		nullBehaviour: spec.NullTarget,
		missBehaviour: spec.NotFound,
		state:         StateUnbound,
		current:       target.Uninitialized,
	}
	if cfg.EnableMetrics {
		e.metrics = NewMetrics()
	}
	return e
}

// SetValidator installs the capability-specific signature check run after
// each successful name match.
func (e *Engine) SetValidator(fn func(resolve.Invoker) error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.validate = fn
}

// OnRebind registers a callback invoked after every accepted target
// change, so front ends can refresh derived state such as enablement.
func (e *Engine) OnRebind(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rebind = append(e.rebind, fn)
}

// State returns the engine's binding state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Target returns the last accepted target value. Returns the
// uninitialized sentinel before the first accepted change.
func (e *Engine) Target() any {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Invoker returns the currently resolved invoker, or nil.
func (e *Engine) Invoker() resolve.Invoker {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.invoker
}

// Err returns the binding's setup error from the most recent target
// change, if any.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setupErr
}

// Method returns the configured method name.
func (e *Engine) Method() string {
	return e.method
}

// Metrics returns the metrics collector (nil when disabled).
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// effectiveNull returns the concrete null-target behaviour.
func (e *Engine) effectiveNull() policy.Behaviour {
	return policy.Effective(e.nullCtx, e.nullBehaviour, e.designMode)
}

// effectiveMissing returns the concrete method-missing behaviour.
func (e *Engine) effectiveMissing() policy.Behaviour {
	return policy.Effective(e.missCtx, e.missBehaviour, e.designMode)
}

// TargetChanged re-runs resolution against a new target value. The
// uninitialized sentinel is a silent no-op. A null target is resolved
// against policy: under Throw the error is logged and returned
// immediately; otherwise the engine proceeds with no resolved method.
// Resolution failures (ambiguous match, signature mismatch) are logged,
// recorded as the binding's setup error, and returned to the caller.
func (e *Engine) TargetChanged(old, new any) error {
	if target.IsUninitialized(new) {
		return nil
	}

	e.mu.Lock()
	e.current = new
	e.invoker = nil
	e.setupErr = nil
	e.state = StateBoundNoMethod

	var err error
	switch {
	case new == nil:
		if e.effectiveNull() == policy.Throw {
			err = fmt.Errorf("%w: method %q", ErrTargetNull, e.method)
			e.setupErr = err
			e.logger.Error("action target is null", "behaviour", "throw")
		} else {
			e.logger.Warn("action target is null", "behaviour", e.effectiveNull().String())
		}

	default:
		var inv resolve.Invoker
		inv, err = e.registry.Resolve(new, e.method)
		if err != nil {
			e.setupErr = err
			e.logger.Error("method resolution failed", "target", fmt.Sprintf("%T", new), "error", err)
			break
		}
		if inv == nil {
			// Surfaces later at invocation-guard time, per policy.
			e.logger.Warn("method not found on target", "target", fmt.Sprintf("%T", new))
			break
		}
		if e.validate != nil {
			if verr := e.validate(inv); verr != nil {
				err = verr
				e.setupErr = verr
				e.logger.Error("method signature rejected", "target", fmt.Sprintf("%T", new), "error", verr)
				break
			}
		}
		e.invoker = inv
		e.state = StateBoundMethod
		e.logger.Debug("method resolved", "target", fmt.Sprintf("%T", new), "params", inv.NumParams())
	}

	if e.metrics != nil {
		e.metrics.RecordResolution(err != nil)
	}
	callbacks := make([]func(), len(e.rebind))
	copy(callbacks, e.rebind)
	e.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
	return err
}

// assertReady is the invocation guard. It fails when the target is still
// the uninitialized sentinel, when the last target change recorded a setup
// error, or when no method is resolved on a non-null target and the
// missing-method behaviour is Throw.
func (e *Engine) assertReady(tgt any, inv resolve.Invoker, setupErr error) error {
	if target.IsUninitialized(tgt) {
		return fmt.Errorf("%w: method %q", ErrTargetNotSet, e.method)
	}
	if setupErr != nil {
		return setupErr
	}
	if inv == nil && tgt != nil && e.effectiveMissing() == policy.Throw {
		return fmt.Errorf("%w: method %q on %T", ErrActionNotFound, e.method, tgt)
	}
	return nil
}

// Invoke calls the resolved method with the given arguments. With no
// resolved method and a permissive policy it quietly no-ops. Synchronous
// failures are logged and returned with the callee's error identity
// intact. An asynchronous result is handed to the fault sink and Invoke
// returns once the synchronous portion completes.
func (e *Engine) Invoke(args ...any) error {
	e.mu.Lock()
	tgt := e.current
	inv := e.invoker
	setupErr := e.setupErr
	e.mu.Unlock()

	if err := e.assertReady(tgt, inv, setupErr); err != nil {
		e.logger.Error("invocation guard failed", "error", err)
		return err
	}
	if inv == nil {
		e.logger.Debug("no method resolved, invocation is a no-op")
		return nil
	}

	result, err := e.callInvoker(inv, tgt, args)
	if e.metrics != nil {
		e.metrics.RecordInvocation(err != nil)
	}
	if err != nil {
		e.logger.Error("action invocation failed", "error", err)
		return err
	}

	if f, ok := result.(fault.Future); ok && f != nil {
		e.watch(f)
	}
	return nil
}

// callInvoker runs the invoker with panic recovery.
func (e *Engine) callInvoker(inv resolve.Invoker, tgt any, args []any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: method %q: %v", ErrInvokePanic, e.method, r)
		}
	}()
	return inv.Invoke(tgt, args...)
}

// watch hands an asynchronous result to the fault sink.
func (e *Engine) watch(f fault.Future) {
	if e.metrics != nil {
		e.metrics.RecordAsyncWatch()
	}
	fields := map[string]any{"method": e.method}
	if e.sink != nil {
		e.sink.Watch(f, fields)
		return
	}
	fault.Watch(f, fields)
}
