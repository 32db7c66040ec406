package scripting

import (
	"bytes"
	"io"
	"sort"

	"github.com/lexlapax/xmerge/pkg/miller"
	lua "github.com/yuin/gopher-lua"
)

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

// convertLuaToGo converts a Lua value into plain Go values. Tables whose keys
// are exactly 1..n become slices; any other table becomes a string-keyed map.
func convertLuaToGo(v lua.LValue) interface{} {
	switch val := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		return float64(val)
	case lua.LString:
		return string(val)
	case *lua.LTable:
		n := val.MaxN()
		if n > 0 && n == tableLen(val) {
			out := make([]interface{}, 0, n)
			for i := 1; i <= n; i++ {
				out = append(out, convertLuaToGo(val.RawGetInt(i)))
			}
			return out
		}
		out := make(map[string]interface{})
		val.ForEach(func(k, v lua.LValue) {
			out[k.String()] = convertLuaToGo(v)
		})
		return out
	default:
		return v.String()
	}
}

func tableLen(t *lua.LTable) int {
	n := 0
	t.ForEach(func(lua.LValue, lua.LValue) { n++ })
	return n
}

// convertGoToLua converts common Go values into Lua values.
func convertGoToLua(L *lua.LState, v interface{}) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case lua.LValue:
		return val
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case miller.Index:
		t := L.NewTable()
		for _, c := range val {
			t.Append(lua.LNumber(c))
		}
		return t
	case []string:
		t := L.NewTable()
		for _, s := range val {
			t.Append(lua.LString(s))
		}
		return t
	case []interface{}:
		t := L.NewTable()
		for _, item := range val {
			t.Append(convertGoToLua(L, item))
		}
		return t
	case map[string]interface{}:
		t := L.NewTable()
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t.RawSetString(k, convertGoToLua(L, val[k]))
		}
		return t
	default:
		return lua.LNil
	}
}
