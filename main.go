package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iburimskiy/planet-field/internal/config"
	"github.com/iburimskiy/planet-field/internal/field"
	"github.com/iburimskiy/planet-field/internal/game"
	"github.com/iburimskiy/planet-field/internal/hum"
	"github.com/iburimskiy/planet-field/internal/render"
	"github.com/iburimskiy/planet-field/internal/scene"
	"github.com/iburimskiy/planet-field/internal/trajectory"
)

// version is set at build time via ldflags.
var version = "dev"

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "planet-field",
	Short: "A rotating planet of linked stars",
	Long: `planet-field opens a window showing a shell of small cube stars, linked by
lines where two stars are close, seen from a slowly orbiting camera through a
bloom pass.

Settings come from flags, PLANET_FIELD_* environment variables and an optional
planet-field.yaml in the working directory or ~/.config/planet-field/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if err := config.BindFlags(v, cmd.Flags()); err != nil {
			return err
		}
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		c, err := config.Load(v, path)
		if err != nil {
			return err
		}
		if used := v.ConfigFileUsed(); used != "" {
			log.Println("using config file:", used)
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runScene(cfg)
		if err != nil {
			showError(err)
		}
		return err
	},
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("planet-field: ")

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./planet-field.yaml or ~/.config/planet-field/planet-field.yaml)")
	pf.Int("count", config.StarCount, "number of stars")
	pf.Float64("radius", config.ShellRadius, "outer radius of the star shell")
	pf.Int64("seed", 0, "random seed for the star field (0 picks one from the clock)")

	f := rootCmd.Flags()
	f.Int("width", config.WindowWidth, "window width")
	f.Int("height", config.WindowHeight, "window height")
	f.Bool("hum", false, "play an ambient hum that pulses the glow")
	f.Bool("planet", false, "draw the planet and its satellites")
}

// generate builds the star field for c.
func generate(c config.Config) (*field.ParameterSet, error) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return field.NewGenerator(rand.New(rand.NewSource(seed))).Generate(c.Count, c.Radius)
}

func runScene(c config.Config) error {
	start := time.Now()
	ps, err := generate(c)
	if err != nil {
		return err
	}
	st := ps.Stats()
	log.Printf("generated %d stars and %d links in %v", st.Count, st.Connections, time.Since(start).Round(time.Millisecond))

	sc := scene.Builder{Palette: scene.DefaultPalette, ShowPlanet: c.ShowPlanet}.Assemble(ps)
	lens := render.Projector{
		FOV:  c.Camera.FOV,
		Near: c.Camera.Near,
		Far:  c.Camera.Far,
	}
	bloom := render.NewBloom(c.Bloom.Strength, c.Bloom.Radius, c.Bloom.Threshold)

	opts := game.Options{
		Scene:    sc,
		Renderer: render.NewRenderer(lens, bloom),
		Trajectory: &trajectory.Trajectory{
			Distance:  c.Camera.Distance,
			ResetRoll: c.Camera.ResetRoll,
		},
		TimeScale: c.Camera.TimeScale,
		Pulse:     c.Hum.Pulse,
	}
	if c.Hum.Enabled {
		player, err := hum.Start(c.Hum.Frequency, c.Hum.Volume)
		if err != nil {
			log.Printf("hum disabled: %v", err)
		} else {
			defer player.Stop()
			opts.Level = player.Level
		}
	}

	return game.Run(game.New(opts), c.Window.Width, c.Window.Height, c.Window.Title)
}

// showError reports a fatal error in a native dialog as well as on stderr.
func showError(err error) {
	if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle)); derr != nil {
		log.Printf("error dialog: %v", derr)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
