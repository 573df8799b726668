// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmerge/bench"
	"github.com/katalvlaran/kmerge/config"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoot_SmallSizeSweep(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "series.csv")
	out, _, err := execute(t, "--n", "10,20,40", "--seed", "3", "--csv", csvPath, "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "n = 10, Total merge cost = ")
	assert.Contains(t, out, "n = 40, Total merge cost = ")
	assert.Contains(t, out, "Scaling constant (c) = ")
	assert.Contains(t, out, "Number of lists (n)")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "n,cost,"))
}

func TestRoot_SequencesPresetWithOverrides(t *testing.T) {
	out, _, err := execute(t, "--preset", "sequences", "--n", "8,16,32", "--max-len", "4", "--chart=false")
	require.NoError(t, err)

	assert.Contains(t, out, "fit: midpoint-ratio")
	assert.NotContains(t, out, "Number of lists (n)")
}

func TestRoot_InvalidScale(t *testing.T) {
	_, errOut, err := execute(t, "--n", "1,10")
	assert.ErrorIs(t, err, bench.ErrScaleTooSmall)
	assert.Contains(t, errOut, "scale values must be at least 2")
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud")
	assert.Error(t, err)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n_values: [4, 8]\nmax_size: 5\nchart: false\n"), 0o600))

	out, _, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "n = 4, ")
	assert.Contains(t, out, "n = 8, ")
	assert.NotContains(t, out, "n = 1000, ")
}

func TestPresetsCmd(t *testing.T) {
	out, _, err := execute(t, "presets")
	require.NoError(t, err)
	for _, name := range config.PresetNames() {
		assert.Contains(t, out, name)
	}
}
