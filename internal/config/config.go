package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Planet Field"

	// Point field
	StarCount   = 600
	ShellRadius = 30

	// Camera
	CameraDistance = 40
	TimeScale      = 15000
	FieldOfView    = 45
	NearPlane      = 1
	FarPlane       = 1000

	// Bloom pass
	BloomStrength  = 0.29
	BloomRadius    = 1
	BloomThreshold = 0.1

	// Ambient hum
	HumFrequency = 55
	HumVolume    = 0.08
	HumPulse     = 3
)

// Config is the effective configuration after defaults, config file,
// environment and flags have been merged.
type Config struct {
	Count  int     `mapstructure:"count" yaml:"count"`
	Radius float64 `mapstructure:"radius" yaml:"radius"`
	// Seed for the point field; 0 picks one from the clock.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	Window Window `mapstructure:"window" yaml:"window"`
	Camera Camera `mapstructure:"camera" yaml:"camera"`
	Bloom  Bloom  `mapstructure:"bloom" yaml:"bloom"`
	Hum    Hum    `mapstructure:"hum" yaml:"hum"`

	ShowPlanet bool `mapstructure:"planet" yaml:"planet"`
}

type Window struct {
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Title  string `mapstructure:"title" yaml:"title"`
}

type Camera struct {
	Distance  float64 `mapstructure:"distance" yaml:"distance"`
	TimeScale float64 `mapstructure:"time_scale" yaml:"time_scale"`
	FOV       float64 `mapstructure:"fov" yaml:"fov"`
	Near      float64 `mapstructure:"near" yaml:"near"`
	Far       float64 `mapstructure:"far" yaml:"far"`
	// ResetRoll tilts each frame by its own wobble instead of carrying the
	// accumulated roll forward.
	ResetRoll bool `mapstructure:"reset_roll" yaml:"reset_roll"`
}

type Bloom struct {
	Strength  float64 `mapstructure:"strength" yaml:"strength"`
	Radius    float64 `mapstructure:"radius" yaml:"radius"`
	Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
}

type Hum struct {
	Enabled   bool    `mapstructure:"enabled" yaml:"enabled"`
	Frequency float64 `mapstructure:"frequency" yaml:"frequency"`
	Volume    float64 `mapstructure:"volume" yaml:"volume"`
	// Pulse scales the hum level before it is added to the bloom strength.
	Pulse float64 `mapstructure:"pulse" yaml:"pulse"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Count:  StarCount,
		Radius: ShellRadius,
		Window: Window{Width: WindowWidth, Height: WindowHeight, Title: WindowTitle},
		Camera: Camera{
			Distance:  CameraDistance,
			TimeScale: TimeScale,
			FOV:       FieldOfView,
			Near:      NearPlane,
			Far:       FarPlane,
		},
		Bloom: Bloom{Strength: BloomStrength, Radius: BloomRadius, Threshold: BloomThreshold},
		Hum:   Hum{Frequency: HumFrequency, Volume: HumVolume, Pulse: HumPulse},
	}
}

// SetDefaults registers Default() with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("count", d.Count)
	v.SetDefault("radius", d.Radius)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("planet", d.ShowPlanet)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("camera.distance", d.Camera.Distance)
	v.SetDefault("camera.time_scale", d.Camera.TimeScale)
	v.SetDefault("camera.fov", d.Camera.FOV)
	v.SetDefault("camera.near", d.Camera.Near)
	v.SetDefault("camera.far", d.Camera.Far)
	v.SetDefault("camera.reset_roll", d.Camera.ResetRoll)
	v.SetDefault("bloom.strength", d.Bloom.Strength)
	v.SetDefault("bloom.radius", d.Bloom.Radius)
	v.SetDefault("bloom.threshold", d.Bloom.Threshold)
	v.SetDefault("hum.enabled", d.Hum.Enabled)
	v.SetDefault("hum.frequency", d.Hum.Frequency)
	v.SetDefault("hum.volume", d.Hum.Volume)
	v.SetDefault("hum.pulse", d.Hum.Pulse)
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"count":  "count",
	"radius": "radius",
	"seed":   "seed",
	"width":  "window.width",
	"height": "window.height",
	"hum":    "hum.enabled",
	"planet": "planet",
}

// BindFlags binds the known flags present in fs to their config keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file (an explicit path, or planet-field.yaml in the
// working directory or ~/.config/planet-field) and the PLANET_FIELD_*
// environment. A missing default config file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("planet-field")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "planet-field"))
		}
	}
	v.SetEnvPrefix("PLANET_FIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(c.Count > 0, "count must be positive, got %d", c.Count)
	check(c.Radius > 0, "radius must be positive, got %v", c.Radius)
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Camera.Distance > 0, "camera distance must be positive, got %v", c.Camera.Distance)
	check(c.Camera.TimeScale > 0, "camera time scale must be positive, got %v", c.Camera.TimeScale)
	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera fov must be in (0, 180), got %v", c.Camera.FOV)
	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near, "camera clip planes must satisfy 0 < near < far, got %v..%v", c.Camera.Near, c.Camera.Far)
	check(c.Bloom.Strength >= 0 && c.Bloom.Radius >= 0, "bloom strength and radius must not be negative")
	check(c.Bloom.Threshold >= 0 && c.Bloom.Threshold < 1, "bloom threshold must be in [0, 1), got %v", c.Bloom.Threshold)
	if c.Hum.Enabled {
		check(c.Hum.Frequency > 0, "hum frequency must be positive, got %v", c.Hum.Frequency)
		check(c.Hum.Volume >= 0 && c.Hum.Volume <= 1, "hum volume must be in [0, 1], got %v", c.Hum.Volume)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
