package scripting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const hookScript = `
	seen_rows = 0
	seen_identity = ""

	function after_asu_mapping(rows, identity)
		seen_rows = rows
		seen_identity = identity
		return rows
	end

	function after_prune(columns)
		return table.concat(columns, ",")
	end

	function last_mapping()
		return { rows = seen_rows, identity = seen_identity }
	end
`

func newEngine(t *testing.T, cfg Config) *LuaEngine {
	t.Helper()
	engine, err := NewLuaEngine(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestHookFunctions(t *testing.T) {
	engine := newEngine(t, DefaultConfig())
	require.NoError(t, engine.LoadScript("hooks.lua", []byte(hookScript)))

	assert.True(t, engine.HasFunction("after_asu_mapping"))
	assert.True(t, engine.HasFunction("after_prune"))
	assert.False(t, engine.HasFunction("before_merge"))
	assert.False(t, engine.HasFunction("seen_rows"))

	ctx := context.Background()

	rows, err := engine.ExecuteFunction(ctx, "after_asu_mapping", 42, "P 4/m m m (No. 123)")
	require.NoError(t, err)
	assert.Equal(t, float64(42), rows)

	last, err := engine.ExecuteFunction(ctx, "last_mapping")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"rows":     float64(42),
		"identity": "P 4/m m m (No. 123)",
	}, last)

	cols, err := engine.ExecuteFunction(ctx, "after_prune",
		[]string{"intensity.sum.value", "id", "miller_index_asymmetric"})
	require.NoError(t, err)
	assert.Equal(t, "intensity.sum.value,id,miller_index_asymmetric", cols)

	_, err = engine.ExecuteFunction(ctx, "before_merge")
	assert.ErrorIs(t, err, ErrFunctionNotFound)
}

func TestLoadScriptErrors(t *testing.T) {
	engine := newEngine(t, DefaultConfig())

	err := engine.LoadScript("broken.lua", []byte(`function after_prune(columns`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.lua")
	assert.False(t, engine.HasFunction("after_prune"))

	err = engine.LoadScript("raises.lua", []byte(`error("bad site config")`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad site config")

	err = engine.LoadScriptFile(filepath.Join(t.TempDir(), "missing.lua"))
	assert.Error(t, err)
}

func TestSandboxInsideHooks(t *testing.T) {
	engine := newEngine(t, DefaultConfig())
	require.NoError(t, engine.LoadScript("escape.lua", []byte(`
		function after_prune(columns)
			os.remove("reflections.db")
			return "removed"
		end

		function after_asu_mapping(rows, identity)
			local f = io.open("/tmp/asu.txt", "w")
			f:write(identity)
			return "written"
		end

		function read_script()
			return dofile("other.lua")
		end

		function globals()
			return {
				os = os == nil,
				io = io == nil,
				require = require == nil,
				package = package == nil,
				load = load == nil,
			}
		end

		function allowed(columns)
			print("columns", #columns)
			return string.upper(columns[1]) .. " " .. math.floor(2.7)
		end
	`)))

	ctx := context.Background()

	_, err := engine.ExecuteFunction(ctx, "after_prune", []string{"id"})
	assert.Error(t, err)

	_, err = engine.ExecuteFunction(ctx, "after_asu_mapping", 1, "P -1 (No. 2)")
	assert.Error(t, err)

	_, err = engine.ExecuteFunction(ctx, "read_script")
	assert.Error(t, err)

	removed, err := engine.ExecuteFunction(ctx, "globals")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"os": true, "io": true, "require": true, "package": true, "load": true,
	}, removed)

	got, err := engine.ExecuteFunction(ctx, "allowed", []string{"id"})
	require.NoError(t, err)
	assert.Equal(t, "ID 2", got)
}

func TestUnsandboxedEngineOpensAllLibraries(t *testing.T) {
	engine := newEngine(t, Config{EnableSandboxing: false})
	require.NoError(t, engine.LoadScript("libs.lua", []byte(`
		function has_os() return os ~= nil and io ~= nil end
	`)))

	got, err := engine.ExecuteFunction(context.Background(), "has_os")
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestExecuteFunctionSerializesPartitions(t *testing.T) {
	engine := newEngine(t, DefaultConfig())
	require.NoError(t, engine.LoadScript("count.lua", []byte(`
		calls = 0
		rows_seen = 0

		function after_asu_mapping(rows, identity)
			local before = calls
			for i = 1, 200 do end
			calls = before + 1
			rows_seen = rows_seen + rows
			return calls
		end

		function totals()
			return { calls, rows_seen }
		end
	`)))

	const partitions = 8
	const callsPerPartition = 25

	g, ctx := errgroup.WithContext(context.Background())
	for p := 0; p < partitions; p++ {
		g.Go(func() error {
			for i := 0; i < callsPerPartition; i++ {
				if _, err := engine.ExecuteFunction(ctx, "after_asu_mapping", p+1, "P m m m (No. 47)"); err != nil {
					return fmt.Errorf("partition %d: %w", p, err)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	totals, err := engine.ExecuteFunction(context.Background(), "totals")
	require.NoError(t, err)
	// rows_seen = callsPerPartition * (1 + 2 + ... + partitions)
	assert.Equal(t, []interface{}{
		float64(partitions * callsPerPartition),
		float64(callsPerPartition * partitions * (partitions + 1) / 2),
	}, totals)
}

func TestExecuteFunctionTimeout(t *testing.T) {
	engine := newEngine(t, Config{EnableSandboxing: true, ScriptTimeoutMs: 50})
	require.NoError(t, engine.LoadScript("slow.lua", []byte(`
		function after_prune(columns)
			while true do end
		end

		function after_asu_mapping(rows, identity)
			return identity
		end
	`)))

	start := time.Now()
	_, err := engine.ExecuteFunction(context.Background(), "after_prune", []string{"id"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	// The state stays usable after an aborted hook.
	got, err := engine.ExecuteFunction(context.Background(), "after_asu_mapping", 3, "P 1 2/m 1 (No. 10)")
	require.NoError(t, err)
	assert.Equal(t, "P 1 2/m 1 (No. 10)", got)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.ExecuteFunction(cancelled, "after_prune", []string{"id"})
	assert.Error(t, err)
}

func TestLoadScriptDirOrder(t *testing.T) {
	siteDir := t.TempDir()
	userDir := t.TempDir()

	files := map[string]string{
		filepath.Join(siteDir, "10_default.lua"): `function after_prune(columns) return "default" end`,
		filepath.Join(siteDir, "20_site.lua"):    `function after_prune(columns) return "site" end`,
		filepath.Join(siteDir, "README.txt"):     `function after_prune(columns) return "readme" end`,
		filepath.Join(userDir, "hooks.lua"):      `function after_asu_mapping(rows, identity) return rows * 2 end`,
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	engine := newEngine(t, DefaultConfig())
	require.NoError(t, LoadAllScripts(engine, siteDir, userDir))

	got, err := engine.ExecuteFunction(context.Background(), "after_prune", []string{"id"})
	require.NoError(t, err)
	assert.Equal(t, "site", got)

	doubled, err := engine.ExecuteFunction(context.Background(), "after_asu_mapping", 21, "P 1")
	require.NoError(t, err)
	assert.Equal(t, float64(42), doubled)

	assert.NoError(t, LoadAllScripts(engine, filepath.Join(siteDir, "missing")),
		"a missing directory yields no scripts")
}
