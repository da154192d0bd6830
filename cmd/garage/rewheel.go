// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garagekit/garage/pkg/car"
	"github.com/garagekit/garage/pkg/types"
)

func newRewheelCommand(app *App) *cobra.Command {
	var wheel int

	cmd := &cobra.Command{
		Use:   "rewheel <diameter> <tires>",
		Short: "Fit new wheels to the car",
		Long: `Fit new wheels to the car.

Without --wheel every wheel gets the new diameter (14-30 inches) and tires
(Summer, Winter or All-Seasoned). With --wheel only that wheel, counted from
1, is changed; the wheel check then fails with status 4 unless it matches
the others.`,
		Example: `  garage rewheel 19 summer
  garage rewheel 20 all-seasoned --wheel 2`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return badArgument("diameter", args[0], err)
			}
			d, err := types.NewDiameter(n)
			if err != nil {
				return commandError("parse diameter", args[0], err)
			}
			tires, err := car.ParseTireType(args[1])
			if err != nil {
				return commandError("parse tire type", args[1], err)
			}

			sel, err := app.selectCar()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if wheel == 0 {
				if _, _, err := sel.car.ChangeAllWheels(d, tires); err != nil {
					return commandError("change wheels", sel.name, err)
				}
				app.Logger.Debug("wheels changed", "car", sel.name, "diameter", d, "tires", tires)
				return printWheels(out, sel)
			}

			w, err := sel.car.Wheel(wheel - 1)
			if err != nil {
				return commandError("select wheel", strconv.Itoa(wheel), err)
			}
			if _, _, err := w.ChangeWheel(d, tires); err != nil {
				return commandError("change wheel", strconv.Itoa(wheel), err)
			}
			app.Logger.Debug("wheel changed", "car", sel.name, "wheel", wheel, "diameter", d, "tires", tires)
			fmt.Fprintln(out, wheelLine(wheel, w))
			return printWheels(out, sel)
		},
	}
	cmd.Flags().IntVar(&wheel, "wheel", 0, "change only this wheel (1-based)")
	return cmd
}
