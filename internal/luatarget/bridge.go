package luatarget

import lua "github.com/yuin/gopher-lua"

// toLuaValue converts a Go value to its Lua equivalent. Unconvertible
// values become userdata so scripts can at least pass them back through.
func toLuaValue(state *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int32:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float32:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []any:
		t := state.NewTable()
		for i, item := range val {
			t.RawSetInt(i+1, toLuaValue(state, item))
		}
		return t
	case map[string]any:
		t := state.NewTable()
		for k, item := range val {
			t.RawSetString(k, toLuaValue(state, item))
		}
		return t
	default:
		ud := state.NewUserData()
		ud.Value = v
		return ud
	}
}

// fromLuaValue converts a Lua value back to Go.
func fromLuaValue(lv lua.LValue) any {
	switch val := lv.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		f := float64(val)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(val)
	case *lua.LTable:
		m := make(map[string]any)
		val.ForEach(func(k, v lua.LValue) {
			m[k.String()] = fromLuaValue(v)
		})
		return m
	case *lua.LUserData:
		return val.Value
	default:
		return nil
	}
}
