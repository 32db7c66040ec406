package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWithOutput(Config{Level: DebugLevel, Format: TextFormat}, &buf)

	timer := NewStepTimer(logger)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timer.now = func() time.Time { return clock }

	timer.LogStepTime("PRUNE_COLUMNS", false)
	assert.Contains(t, buf.String(), "Step started")
	assert.Contains(t, buf.String(), "step=PRUNE_COLUMNS")

	clock = clock.Add(250 * time.Millisecond)
	timer.LogStepTime("PRUNE_COLUMNS", true)
	assert.Contains(t, buf.String(), "Step completed")
	assert.Contains(t, buf.String(), "elapsed=250ms")
	assert.Equal(t, 250*time.Millisecond, timer.Total("PRUNE_COLUMNS"))

	timer.LogStepTime("PRUNE_COLUMNS", false)
	clock = clock.Add(time.Second)
	timer.LogStepTime("PRUNE_COLUMNS", true)
	assert.Equal(t, 1250*time.Millisecond, timer.Total("PRUNE_COLUMNS"))
}

func TestStepTimerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupWithOutput(Config{Level: DebugLevel, Format: TextFormat}, &buf)

	timer := NewStepTimer(logger)
	timer.LogStepTime("ADD_ASU_HKL_COLUMN", true)

	assert.Contains(t, buf.String(), "Step stopped without start")
	assert.Zero(t, timer.Total("ADD_ASU_HKL_COLUMN"))
}
