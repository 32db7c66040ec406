package scripting

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lexlapax/xmerge/pkg/log"
	"github.com/lexlapax/xmerge/pkg/miller"
	"github.com/lexlapax/xmerge/pkg/symmetry"
	lua "github.com/yuin/gopher-lua"
)

// registerAPIFunctions registers Go functions that are available to Lua scripts.
func registerAPIFunctions(L *lua.LState) {
	api := L.NewTable()

	L.SetField(api, "log", L.NewFunction(apiLog))
	L.SetField(api, "now", L.NewFunction(apiNow))
	L.SetField(api, "format_time", L.NewFunction(apiFormatTime))
	L.SetField(api, "uuid", L.NewFunction(apiUUID))
	L.SetField(api, "json_encode", L.NewFunction(apiJSONEncode))
	L.SetField(api, "json_decode", L.NewFunction(apiJSONDecode))

	// Crystallographic helpers
	L.SetField(api, "map_index", L.NewFunction(apiMapIndex))
	L.SetField(api, "patterson", L.NewFunction(apiPatterson))

	L.SetGlobal("xmerge", api)
}

// setContextGlobal exposes a ctx table to the called function. deadline is
// set as a Unix timestamp when ctx carries one.
func setContextGlobal(L *lua.LState, deadline time.Time, ok bool) {
	t := L.NewTable()
	if ok {
		t.RawSetString("deadline", lua.LNumber(deadline.Unix()))
	}
	L.SetGlobal("ctx", t)
}

// apiLog is a function to log messages from Lua
func apiLog(L *lua.LState) int {
	level := L.CheckString(1)
	message := L.CheckString(2)

	switch level {
	case "debug":
		log.Debug("Lua script message", "message", message)
	case "warn", "warning":
		log.Warn("Lua script message", "message", message)
	case "error":
		log.Error("Lua script message", "message", message)
	default:
		log.Info("Lua script message", "message", message)
	}

	return 0
}

// apiNow returns the current time as a Unix timestamp
func apiNow(L *lua.LState) int {
	L.Push(lua.LNumber(time.Now().Unix()))
	return 1
}

// apiFormatTime formats a Unix timestamp as a string
func apiFormatTime(L *lua.LState) int {
	timestamp := L.CheckNumber(1)
	format := L.OptString(2, time.RFC3339)

	t := time.Unix(int64(timestamp), 0).UTC()
	L.Push(lua.LString(t.Format(format)))
	return 1
}

func apiUUID(L *lua.LState) int {
	L.Push(lua.LString(uuid.NewString()))
	return 1
}

// apiJSONEncode encodes a Lua value to a JSON string. On failure it returns
// nil and the error message.
func apiJSONEncode(L *lua.LState) int {
	value := L.CheckAny(1)

	data, err := json.Marshal(convertLuaToGo(value))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(data))
	return 1
}

// apiJSONDecode decodes a JSON string into Lua values.
func apiJSONDecode(L *lua.LState) int {
	jsonStr := L.CheckString(1)

	var value interface{}
	if err := json.Unmarshal([]byte(jsonStr), &value); err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(convertGoToLua(L, value))
	return 1
}

// apiMapIndex maps (h, k, l) into the asymmetric unit of a space group:
// xmerge.map_index(space_group, anomalous, h, k, l) -> h, k, l
func apiMapIndex(L *lua.LState) int {
	sg, err := symmetry.LookupSpaceGroup(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	anomalous := L.CheckBool(2)
	h := miller.Index{L.CheckInt(3), L.CheckInt(4), L.CheckInt(5)}

	mapped := miller.MapIndex(sg.Type(), anomalous, h)
	for _, c := range mapped {
		L.Push(lua.LNumber(c))
	}
	return 3
}

// apiPatterson returns the Patterson group identity of a space group symbol.
func apiPatterson(L *lua.LState) int {
	sg, err := symmetry.LookupSpaceGroup(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(lua.LString(sg.BuildDerivedPattersonGroup().Info().SymbolAndNumber()))
	return 1
}
