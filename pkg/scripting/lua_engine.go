package scripting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/lexlapax/xmerge/pkg/log"
	lua "github.com/yuin/gopher-lua"
)

// LuaEngine runs hook functions in a single gopher-lua state. Calls are
// serialized because an LState is not safe for concurrent use.
type LuaEngine struct {
	mu     sync.Mutex
	state  *lua.LState
	config Config
}

// NewLuaEngine creates a Lua state, applying the sandbox if enabled and
// registering the xmerge API table.
func NewLuaEngine(config Config) (*LuaEngine, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: config.EnableSandboxing})
	if config.EnableSandboxing {
		if err := setupSandbox(L); err != nil {
			L.Close()
			return nil, fmt.Errorf("failed to set up lua sandbox: %w", err)
		}
	}
	registerAPIFunctions(L)

	log.Debug("Lua scripting engine initialized",
		"sandboxed", config.EnableSandboxing,
		"timeout_ms", config.ScriptTimeoutMs)

	return &LuaEngine{state: L, config: config}, nil
}

// LoadScript implements the Engine interface.
func (e *LuaEngine) LoadScript(name string, content []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn, err := e.state.Load(bytesReader(content), name)
	if err != nil {
		return fmt.Errorf("failed to compile script %s: %w", name, err)
	}
	e.state.Push(fn)
	if err := e.state.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("failed to run script %s: %w", name, err)
	}

	log.Debug("Loaded Lua script", "name", name, "size", len(content))
	return nil
}

// LoadScriptFile implements the Engine interface.
func (e *LuaEngine) LoadScriptFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script file: %w", err)
	}
	return e.LoadScript(filepath.Base(path), content)
}

// LoadScriptDir implements the Engine interface. Files are loaded in name order.
func (e *LuaEngine) LoadScriptDir(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.lua"))
	if err != nil {
		return fmt.Errorf("failed to list scripts in %s: %w", dir, err)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if err := e.LoadScriptFile(path); err != nil {
			return err
		}
	}
	return nil
}

// HasFunction implements the Engine interface.
func (e *LuaEngine) HasFunction(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.GetGlobal(name).Type() == lua.LTFunction
}

// ExecuteFunction implements the Engine interface. Only the first return
// value is passed back.
func (e *LuaEngine) ExecuteFunction(ctx context.Context, funcName string, args ...interface{}) (interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn := e.state.GetGlobal(funcName)
	if fn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, funcName)
	}

	deadline, hasDeadline := ctx.Deadline()
	setContextGlobal(e.state, deadline, hasDeadline)

	if e.config.ScriptTimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(e.config.ScriptTimeoutMs)*time.Millisecond)
		defer cancel()
	}
	e.state.SetContext(ctx)
	defer e.state.RemoveContext()

	luaArgs := make([]lua.LValue, len(args))
	for i, arg := range args {
		luaArgs[i] = convertGoToLua(e.state, arg)
	}

	if err := e.state.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, luaArgs...); err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", funcName, err)
	}
	ret := e.state.Get(-1)
	e.state.Pop(1)

	return convertLuaToGo(ret), nil
}

// Close implements the Engine interface.
func (e *LuaEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Close()
	return nil
}
