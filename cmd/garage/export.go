// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/garagekit/garage/pkg/garagefile"
)

const (
	formatTOML = "toml"
	formatYAML = "yaml"
	formatCUE  = "cue"
)

func newExportCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the selected car as TOML, YAML or CUE",
		Long: `Print the selected car.

The TOML and YAML forms are a plain snapshot of make, model, engine, body
and wheels.
The CUE form is a garage file holding just this car and can be loaded back
with --file.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case formatTOML, formatYAML, formatCUE:
			default:
				return badArgument("format", format, fmt.Errorf("must be %s, %s or %s", formatTOML, formatYAML, formatCUE))
			}
			sel, err := app.selectCar()
			if err != nil {
				return err
			}
			snap := sel.car.Snapshot()

			var out []byte
			switch format {
			case formatTOML:
				out, err = toml.Marshal(snap)
			case formatYAML:
				out, err = yaml.Marshal(snap)
			case formatCUE:
				gf := &garagefile.GarageFile{Cars: []garagefile.CarEntry{garagefile.EntryFromSnapshot(sel.name, snap)}}
				out, err = gf.Format()
			}
			if err != nil {
				return commandError("export car", sel.name, err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", formatTOML, "output format: toml, yaml or cue")
	return cmd
}
