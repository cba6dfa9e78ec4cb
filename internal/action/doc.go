// Package action binds declaratively-described method calls to whatever
// object currently serves as the action target.
//
// A UI slot declares "call method M"; the engine resolves M against the
// current target through the resolve registry, re-resolves whenever the
// target changes, and applies configured policy when the target is absent
// or the method cannot be found.
//
// # Architecture
//
// Each binding is one Engine wired to a target.Reference:
//
//  1. Target Reference: observes the host's action-target channel (plus an
//     optional backup) and forwards accepted changes, filtering the
//     uninitialized sentinel silently.
//
//  2. Engine: owns the resolved-method slot. On each accepted change it
//     resolves the method name through the registry, validates the
//     signature for the bound capability, and records the result.
//     Invocation runs through a guard that applies the configured
//     behaviours, then calls the invoker; an asynchronous result is handed
//     to the fault sink while Invoke returns immediately.
//
//  3. Front ends: Command wraps the engine behind CanExecute/Execute;
//     EventBinding produces callbacks of arity 0, 1, or 2 that forward the
//     compatible prefix of the event's arguments.
//
//  4. Factory: inspects the slot kind and the action spec, wires either a
//     fixed target or observed sources, and builds the front end.
//
// # Policy
//
// Four independent slots govern unavailable bindings: command/null-target,
// command/method-missing, event/null-target, event/method-missing. Each
// accepts Default, Enable, Disable, or Throw; policy.Effective resolves
// Default per slot. Throw for a null target fires at target-change time;
// Throw for a missing method fires at invocation-guard time.
//
// # Usage
//
//	reg := resolve.NewRegistry()
//	resolve.Register[*CounterModel](reg,
//	    resolve.Func0("Increment", (*CounterModel).Increment),
//	)
//
//	factory := action.NewFactory(action.Config{Registry: reg, Logger: logger})
//	subject := target.NewValue()
//
//	cmd, err := factory.Command(action.Spec{Method: "Increment"}, subject, nil)
//	if err != nil {
//	    return err
//	}
//
//	subject.Set(model)        // rebinds, cmd.CanExecute() becomes true
//	err = cmd.Execute(nil)    // invokes model.Increment()
package action
