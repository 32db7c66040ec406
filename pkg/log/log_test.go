package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   Level
		want slog.Level
	}{
		{DebugLevel, slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{WarnLevel, slog.LevelWarn},
		{"Error", slog.LevelError},
		{InfoLevel, slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestSetupWithOutputKeepsDefault(t *testing.T) {
	before := slog.Default()

	var buf bytes.Buffer
	logger := SetupWithOutput(Config{Level: WarnLevel, Format: JSONFormat}, &buf)
	require.NotNil(t, logger)
	assert.Same(t, before, slog.Default())

	logger.Info("partition skipped")
	logger.Warn("hook failed", "hook", "after_prune")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "hook failed", entries[0]["msg"])
	assert.Equal(t, "after_prune", entries[0]["hook"])
	assert.Equal(t, "WARN", entries[0]["level"])
}

func TestSetupReplacesDefault(t *testing.T) {
	before := slog.Default()
	t.Cleanup(func() { slog.SetDefault(before) })

	logger := Setup(Config{Level: ErrorLevel, Format: TextFormat})
	assert.Same(t, logger, slog.Default())
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelError))
}

func TestWithRunContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := SetupWithOutput(Config{Level: DebugLevel, Format: JSONFormat}, &buf)

	p0 := WithRunContext(base, "5f0c6b1e", "0")
	p1 := WithRunContext(base, "5f0c6b1e", "1")
	p0.Info("Step completed", "step", "ADD_ASU_HKL_COLUMN")
	p1.Info("Step completed", "step", "PRUNE_COLUMNS")
	base.Info("Pipeline finished")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 3)

	assert.Equal(t, "5f0c6b1e", entries[0]["run_id"])
	assert.Equal(t, "0", entries[0]["partition"])
	assert.Equal(t, "ADD_ASU_HKL_COLUMN", entries[0]["step"])

	assert.Equal(t, "1", entries[1]["partition"])
	assert.Equal(t, "PRUNE_COLUMNS", entries[1]["step"])

	assert.NotContains(t, entries[2], "run_id")
	assert.NotContains(t, entries[2], "partition")
}

func TestFromContext(t *testing.T) {
	t.Run("missing logger falls back to default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("nil context falls back to default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(nil))
	})

	t.Run("stored logger is returned", func(t *testing.T) {
		logger := SetupWithOutput(DefaultConfig(), &bytes.Buffer{})
		ctx := WithLogger(context.Background(), logger)
		assert.Same(t, logger, FromContext(ctx))
	})
}

func TestContextHelpersUseContextLogger(t *testing.T) {
	var ctxBuf, defaultBuf bytes.Buffer
	before := slog.Default()
	t.Cleanup(func() { slog.SetDefault(before) })
	slog.SetDefault(SetupWithOutput(Config{Level: DebugLevel, Format: TextFormat}, &defaultBuf))

	runLogger := WithRunContext(SetupWithOutput(Config{Level: DebugLevel, Format: TextFormat}, &ctxBuf), "r1", "2")
	ctx := WithLogger(context.Background(), runLogger)

	DebugContext(ctx, "loading table", "name", "integrated")
	InfoContext(ctx, "saved table", "name", "scaled")
	WarnContext(ctx, "hook failed")
	ErrorContext(ctx, "partition failed")

	out := ctxBuf.String()
	for _, msg := range []string{"loading table", "saved table", "hook failed", "partition failed"} {
		assert.Contains(t, out, msg)
	}
	assert.Equal(t, 4, strings.Count(out, "run_id=r1"))
	assert.Equal(t, 4, strings.Count(out, "partition=2"))
	assert.Empty(t, defaultBuf.String())

	Info("global message")
	Debug("global debug")
	assert.Contains(t, defaultBuf.String(), "global message")
	assert.Contains(t, defaultBuf.String(), "global debug")
	assert.NotContains(t, ctxBuf.String(), "global message")
}
