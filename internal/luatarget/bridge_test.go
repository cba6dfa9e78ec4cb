package luatarget

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestToLuaValue(t *testing.T) {
	state := lua.NewState()
	defer state.Close()

	if toLuaValue(state, nil) != lua.LNil {
		t.Error("nil must bridge to LNil")
	}
	if toLuaValue(state, true) != lua.LTrue {
		t.Error("bool must bridge to LBool")
	}
	if toLuaValue(state, 42) != lua.LNumber(42) {
		t.Error("int must bridge to LNumber")
	}
	if toLuaValue(state, 'x') != lua.LNumber('x') {
		t.Error("rune must bridge to LNumber")
	}
	if toLuaValue(state, 1.5) != lua.LNumber(1.5) {
		t.Error("float must bridge to LNumber")
	}
	if toLuaValue(state, "hi") != lua.LString("hi") {
		t.Error("string must bridge to LString")
	}

	table, ok := toLuaValue(state, []any{"a", 2}).(*lua.LTable)
	if !ok {
		t.Fatal("slice must bridge to a table")
	}
	if table.RawGetInt(1) != lua.LString("a") || table.RawGetInt(2) != lua.LNumber(2) {
		t.Error("slice elements must bridge positionally from 1")
	}

	table, ok = toLuaValue(state, map[string]any{"k": "v"}).(*lua.LTable)
	if !ok {
		t.Fatal("map must bridge to a table")
	}
	if table.RawGetString("k") != lua.LString("v") {
		t.Error("map entries must bridge by key")
	}

	type opaque struct{ n int }
	ud, ok := toLuaValue(state, opaque{n: 7}).(*lua.LUserData)
	if !ok {
		t.Fatal("unconvertible value must bridge to userdata")
	}
	if ud.Value.(opaque).n != 7 {
		t.Error("userdata must carry the original value")
	}
}

func TestFromLuaValue(t *testing.T) {
	state := lua.NewState()
	defer state.Close()

	if fromLuaValue(lua.LTrue) != true {
		t.Error("LBool must bridge to bool")
	}
	if fromLuaValue(lua.LNumber(3)) != int64(3) {
		t.Error("integral LNumber must bridge to int64")
	}
	if fromLuaValue(lua.LNumber(2.5)) != 2.5 {
		t.Error("fractional LNumber must bridge to float64")
	}
	if fromLuaValue(lua.LString("hi")) != "hi" {
		t.Error("LString must bridge to string")
	}
	if fromLuaValue(lua.LNil) != nil {
		t.Error("LNil must bridge to nil")
	}

	table := state.NewTable()
	table.RawSetString("k", lua.LNumber(1))
	m, ok := fromLuaValue(table).(map[string]any)
	if !ok {
		t.Fatal("LTable must bridge to a map")
	}
	if m["k"] != int64(1) {
		t.Errorf("m = %v", m)
	}

	ud := state.NewUserData()
	ud.Value = "wrapped"
	if fromLuaValue(ud) != "wrapped" {
		t.Error("userdata must unwrap its value")
	}
}
