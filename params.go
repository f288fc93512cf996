package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/iburimskiy/planet-field/internal/config"
	"github.com/iburimskiy/planet-field/internal/field"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Generate the star field and print it as YAML",
	Long: `Params runs the same generation step as the scene and prints a summary:
star count, shell radius, link threshold, number of links and the spread of
star distances from the centre. With --points every star and link is listed
too. Pass --seed to get the same field as a seeded run of the scene.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, _ := cmd.Flags().GetBool("points")
		ps, err := generate(cfg)
		if err != nil {
			return err
		}
		return writeParams(os.Stdout, cfg, ps, points)
	},
}

func init() {
	paramsCmd.Flags().Bool("points", false, "list every star and link")
	rootCmd.AddCommand(paramsCmd)
}

type starDump struct {
	Position [3]float64 `yaml:"position,flow"`
	Rotation [3]float64 `yaml:"rotation,flow"`
	Scale    float64    `yaml:"scale"`
}

type paramsDump struct {
	Seed        int64              `yaml:"seed,omitempty"`
	Stats       field.Stats        `yaml:"stats"`
	Stars       []starDump         `yaml:"stars,omitempty"`
	Connections []field.Connection `yaml:"connections,omitempty,flow"`
}

func writeParams(w io.Writer, c config.Config, ps *field.ParameterSet, points bool) error {
	d := paramsDump{Seed: c.Seed, Stats: ps.Stats()}
	if points {
		d.Stars = make([]starDump, ps.Count)
		for i, p := range ps.Points {
			r := ps.Rotations[i]
			d.Stars[i] = starDump{
				Position: [3]float64{p.X, p.Y, p.Z},
				Rotation: [3]float64{r.X, r.Y, r.Z},
				Scale:    ps.Scales[i],
			}
		}
		d.Connections = ps.Connections
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding params: %w", err)
	}
	return enc.Close()
}
