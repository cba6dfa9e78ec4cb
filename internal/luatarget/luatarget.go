// Package luatarget exposes Lua tables as action targets.
//
// A table's function fields become invokers through the resolver's
// MethodProvider interface, so script-defined view-models can be bound the
// same way native Go targets are. Arguments are bridged to Lua values;
// errors raised by the script surface as Go errors.
package luatarget

import (
	"fmt"
	"reflect"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/actionbind/internal/action/resolve"
)

// Target is a Lua table serving as an action target.
type Target struct {
	mu    sync.Mutex
	state *lua.LState
	table *lua.LTable
	name  string
}

// New wraps an existing table. The name is used in log and error output.
func New(state *lua.LState, table *lua.LTable, name string) *Target {
	return &Target{state: state, table: table, name: name}
}

// Load runs a script that returns a table and wraps the result.
func Load(state *lua.LState, script, name string) (*Target, error) {
	if err := state.DoString(script); err != nil {
		return nil, fmt.Errorf("luatarget: load %s: %w", name, err)
	}
	ret := state.Get(-1)
	state.Pop(1)

	table, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("luatarget: script %s did not return a table", name)
	}
	return New(state, table, name), nil
}

// Name returns the target's name.
func (t *Target) Name() string {
	return t.name
}

// ActionMethod implements resolve.MethodProvider: a function field of the
// table becomes an invoker.
func (t *Target) ActionMethod(name string) (resolve.Invoker, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fn, ok := t.state.GetField(t.table, name).(*lua.LFunction)
	if !ok {
		return nil, false
	}

	params := 2
	if fn.Proto != nil {
		params = int(fn.Proto.NumParameters)
	}
	return &luaInvoker{target: t, fn: fn, name: name, params: params}, true
}

// call invokes a Lua function with bridged arguments. The LState is not
// goroutine safe, so calls serialize on the target's mutex.
func (t *Target) call(fn *lua.LFunction, args []any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	luaArgs := make([]lua.LValue, len(args))
	for i, a := range args {
		luaArgs[i] = toLuaValue(t.state, a)
	}

	if err := t.state.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, luaArgs...); err != nil {
		return fmt.Errorf("luatarget: %s: %w", t.name, err)
	}
	return nil
}

// luaInvoker adapts one Lua function to the Invoker interface.
type luaInvoker struct {
	target *Target
	fn     *lua.LFunction
	name   string
	params int
}

func (i *luaInvoker) Name() string   { return i.name }
func (i *luaInvoker) NumParams() int { return i.params }
func (i *luaInvoker) Static() bool   { return false }

// ParamTypes reports every parameter as any: Lua functions accept
// whatever the bridge can convert.
func (i *luaInvoker) ParamTypes() []reflect.Type {
	anyType := reflect.TypeFor[any]()
	types := make([]reflect.Type, i.params)
	for j := range types {
		types[j] = anyType
	}
	return types
}

func (i *luaInvoker) Invoke(_ any, args ...any) (any, error) {
	if len(args) != i.params {
		return nil, fmt.Errorf("%w: method %q takes %d parameters, got %d",
			resolve.ErrArgumentMismatch, i.name, i.params, len(args))
	}
	return nil, i.target.call(i.fn, args)
}
