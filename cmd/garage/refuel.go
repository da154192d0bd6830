// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garagekit/garage/pkg/car"
)

func newRefuelCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refuel <fuel>",
		Short: "Change the engine's fuel type (Petrol or Diesel)",
		Long: `Change the engine's fuel type.

Combustion engines can switch between Petrol and Diesel. An Electro engine
cannot change fuel and no engine can be converted to Electro; both cases
exit with status 3.`,
		Args:      exactArgs(1),
		ValidArgs: []string{"petrol", "diesel", "electro"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fuel, err := car.ParseFuelType(args[0])
			if err != nil {
				return commandError("parse fuel type", args[0], err)
			}
			sel, err := app.selectCar()
			if err != nil {
				return err
			}

			from := sel.car.Engine().FuelType()
			if _, err := sel.car.Engine().ChangeFuelType(fuel); err != nil {
				return commandError("change fuel type", sel.name, err)
			}
			app.Logger.Debug("fuel changed", "car", sel.name, "from", from, "to", fuel)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("✓"), sel.car.DisplayEngineInfo())
			return nil
		},
	}
}
