package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		require.NoError(t, rootCmd.PersistentFlags().Set("config", ""))
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func brokenConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planet-field.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: [1\n"), 0o644))
	return path
}

func TestVersion_IgnoresBrokenConfig(t *testing.T) {
	out, err := execute(t, "version", "--config", brokenConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "planet-field "+version+"\n", out)
}

func TestParams_BrokenConfig(t *testing.T) {
	_, err := execute(t, "params", "--config", brokenConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
