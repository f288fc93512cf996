package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 600, cfg.Count)
	assert.Equal(t, 30.0, cfg.Radius)
	assert.Equal(t, 40.0, cfg.Camera.Distance)
	assert.Equal(t, 15000.0, cfg.Camera.TimeScale)
	assert.False(t, cfg.Hum.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"zero count", func(c *Config) { c.Count = 0 }, "count must be positive"},
		{"negative radius", func(c *Config) { c.Radius = -3 }, "radius must be positive"},
		{"empty window", func(c *Config) { c.Window.Height = 0 }, "window size"},
		{"zero distance", func(c *Config) { c.Camera.Distance = 0 }, "camera distance"},
		{"zero time scale", func(c *Config) { c.Camera.TimeScale = 0 }, "time scale"},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }, "fov"},
		{"far before near", func(c *Config) { c.Camera.Far = 0.5 }, "clip planes"},
		{"negative bloom", func(c *Config) { c.Bloom.Strength = -1 }, "bloom strength"},
		{"threshold of one", func(c *Config) { c.Bloom.Threshold = 1 }, "bloom threshold"},
		{"loud hum", func(c *Config) { c.Hum.Enabled = true; c.Hum.Volume = 2 }, "hum volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Count = -1
	cfg.Radius = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be positive")
	assert.Contains(t, err.Error(), "radius must be positive")
}

func TestValidate_IgnoresDisabledHum(t *testing.T) {
	cfg := Default()
	cfg.Hum.Frequency = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planet-field.yaml")
	data := "count: 120\nradius: 12.5\nwindow:\n  width: 800\ncamera:\n  time_scale: 5000\nbloom:\n  strength: 0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Count)
	assert.Equal(t, 12.5, cfg.Radius)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, WindowHeight, cfg.Window.Height)
	assert.Equal(t, 5000.0, cfg.Camera.TimeScale)
	assert.Equal(t, 0.5, cfg.Bloom.Strength)
	assert.Equal(t, BloomThreshold, cfg.Bloom.Threshold)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planet-field.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 0\n"), 0o644))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be positive")
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv("PLANET_FIELD_RADIUS", "18")
	t.Setenv("PLANET_FIELD_WINDOW_HEIGHT", "300")
	t.Chdir(t.TempDir())

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("count", StarCount, "")
	fs.Bool("hum", false, "")
	require.NoError(t, fs.Parse([]string{"--count", "50", "--hum"}))

	v := viper.New()
	require.NoError(t, BindFlags(v, fs))
	cfg, err := Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Count)
	assert.True(t, cfg.Hum.Enabled)
	assert.Equal(t, 18.0, cfg.Radius)
	assert.Equal(t, 300, cfg.Window.Height)
}
