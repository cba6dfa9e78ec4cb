package action

import (
	"fmt"

	"github.com/dshills/actionbind/internal/action/policy"
	"github.com/dshills/actionbind/internal/action/resolve"
	"github.com/dshills/actionbind/internal/action/target"
)

// Command exposes a binding as a command capability: an enablement
// predicate plus an execute operation. UI slots query CanExecute to drive
// enablement and call Execute on gesture activation.
type Command struct {
	eng *Engine
	ref *target.Reference
}

// commandValidator rejects methods a command gesture cannot supply
// arguments for. Commands pass at most one parameter.
func commandValidator(inv resolve.Invoker) error {
	if inv.NumParams() > 1 {
		return fmt.Errorf("%w: method %q declares %d parameters, commands supply at most 1",
			ErrSignatureInvalid, inv.Name(), inv.NumParams())
	}
	return nil
}

// CanExecute reports whether the command is currently available.
// An uninitialized target is never executable. A null target is
// executable unless the null-target behaviour is Disable. A non-null
// target with no resolved method is executable only under Enable.
func (c *Command) CanExecute() bool {
	tgt := c.eng.Target()
	if target.IsUninitialized(tgt) {
		return false
	}
	if tgt == nil {
		// Throw for null targets fires at target-change time, so by now
		// the behaviour is Enable or Disable.
		return c.eng.effectiveNull() != policy.Disable
	}
	if c.eng.Invoker() == nil {
		return c.eng.effectiveMissing() == policy.Enable
	}
	return true
}

// Execute runs the bound method, passing the parameter through when the
// method declares one.
func (c *Command) Execute(param any) error {
	if inv := c.eng.Invoker(); inv != nil && inv.NumParams() == 0 {
		return c.eng.Invoke()
	}
	return c.eng.Invoke(param)
}

// OnEnabledChanged registers a callback invoked after every target
// rebind, when CanExecute may have changed.
func (c *Command) OnEnabledChanged(fn func()) {
	c.eng.OnRebind(fn)
}

// Engine returns the command's dispatch engine.
func (c *Command) Engine() *Engine {
	return c.eng
}

// Close stops target observation. The command keeps its last resolved
// state but no longer rebinds.
func (c *Command) Close() {
	if c.ref != nil {
		c.ref.Close()
	}
}
