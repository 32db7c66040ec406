package scripting

import (
	"fmt"
	"strings"

	"github.com/lexlapax/xmerge/pkg/log"
	lua "github.com/yuin/gopher-lua"
)

// setupSandbox opens only the base, table, string and math libraries and
// removes the base functions that can reach the file system.
func setupSandbox(L *lua.LState) error {
	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return fmt.Errorf("failed to open lua library %q: %w", lib.name, err)
		}
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module", "io", "os", "package"} {
		L.SetGlobal(name, lua.LNil)
	}

	// Set up print to log to our logger instead
	L.SetGlobal("print", L.NewFunction(safePrint))
	return nil
}

// safePrint redirects Lua's print to our logger
func safePrint(L *lua.LState) int {
	top := L.GetTop()
	parts := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	log.Info("Lua print", "message", strings.Join(parts, "\t"))
	return 0
}
