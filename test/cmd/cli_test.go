//go:build integration
// +build integration

package cmd

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/lexlapax/xmerge/pkg/miller"
	"github.com/lexlapax/xmerge/pkg/reflection"
	"github.com/lexlapax/xmerge/pkg/store/adapters/boltdb"
	"github.com/lexlapax/xmerge/test/testutil"
)

func buildBinary(t *testing.T, pkg string) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), filepath.Base(pkg))
	buildCmd := exec.Command("go", "build", "-o", out, pkg)
	buildOutput, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "Failed to build %s: %s", pkg, buildOutput)
	return out
}

// TestXmergeCLI runs the batch command against a BoltDB store prepared by the test.
func TestXmergeCLI(t *testing.T) {
	// Skip if not running integration tests
	if os.Getenv("INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test; set INTEGRATION_TESTS=true to run")
	}

	binary := buildBinary(t, "../../cmd/xmerge")
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "tables.db")

	// Seed the store with an input table
	db, err := bolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	table := testutil.NewReflectionTable(t, miller.Index{1, 2, 3}, miller.Index{-1, -2, -3})
	require.NoError(t, boltdb.NewBoltStore(db).Save(context.Background(), "integrated", table))
	require.NoError(t, db.Close())

	configPath := filepath.Join(tempDir, "xmerge.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
[scaling]
space_group = "P 1"

[merging]
merge_anomalous = true

[store]
type = "bolt"
bolt_path = "`+dbPath+`"

[logging]
level = "warn"
`), 0644))

	experimentsPath := filepath.Join(tempDir, "experiments.yaml")
	require.NoError(t, os.WriteFile(experimentsPath, []byte(`
experiments:
  - identifier: sweep-1
    crystal:
      space_group: "P 1"
`), 0644))

	t.Run("ShowHelp", func(t *testing.T) {
		output, err := exec.Command(binary, "-help").CombinedOutput()
		require.NoError(t, err, "Command failed: %s", output)
		assert.Contains(t, string(output), "-experiments")
	})

	t.Run("Run", func(t *testing.T) {
		cmd := exec.Command(binary, "-config", configPath, "-experiments", experimentsPath,
			"-env", filepath.Join(tempDir, "missing.env"))
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "Command failed: %s", output)
		assert.Contains(t, string(output), "scaled: 2 reflections")
	})

	t.Run("List", func(t *testing.T) {
		output, err := exec.Command(binary, "-config", configPath, "-list").CombinedOutput()
		require.NoError(t, err, "Command failed: %s", output)
		assert.Equal(t, []string{"integrated", "scaled"}, strings.Fields(string(output)))
	})

	t.Run("Result", func(t *testing.T) {
		db, err := bolt.Open(dbPath, 0600, nil)
		require.NoError(t, err)
		defer db.Close()

		scaled, err := boltdb.NewBoltStore(db).Load(context.Background(), "scaled")
		require.NoError(t, err)
		asym, err := scaled.MillerIndices(reflection.ColumnMillerIndexAsymmetric)
		require.NoError(t, err)
		assert.Equal(t, reflection.MillerIndexColumn{{1, 2, 3}, {1, 2, 3}}, asym)
	})

	t.Run("MissingExperiments", func(t *testing.T) {
		output, err := exec.Command(binary, "-config", configPath).CombinedOutput()
		assert.Error(t, err)
		assert.Contains(t, string(output), "-experiments is required")
	})
}

// TestASUShell drives the interactive shell in stdin mode.
func TestASUShell(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test; set INTEGRATION_TESTS=true to run")
	}

	binary := buildBinary(t, "../../cmd/asu-shell")
	cmd := exec.Command(binary, "-s", "-group", "P 43 21 2")
	cmd.Stdin = strings.NewReader("!patterson\n-2 3 -1\n!anomalous on\n-2 3 -1\n!quit\n")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "Command failed: %s", output)

	assert.Contains(t, string(output), "P 43 21 2 (No. 96) -> P 4/m m m (No. 123)")
	assert.Contains(t, string(output), "(-2,3,-1) -> (3,2,1)")
	assert.Contains(t, string(output), "(-2,3,-1) -> (-3,-2,-1)")
	assert.Contains(t, string(output), "Goodbye!")
}
