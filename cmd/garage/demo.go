// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/garagekit/garage/pkg/car"
	"github.com/garagekit/garage/pkg/garagefile"
	"github.com/garagekit/garage/pkg/types"
)

func newDemoCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk the built-in BMW X5 through a fuel change and two wheel changes",
		Long: `Walk the built-in BMW X5 through the model's operations.

The car is shown, switched to Petrol, fitted with four 19" summer wheels and
then given a mixed set (three 20" and one 18" winter wheel). The final wheel
check is expected to fail and is reported as a warning.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := garagefile.Default().Build("")
			if err != nil {
				return commandError("build demo car", "x5", err)
			}
			return runDemo(cmd.OutOrStdout(), selectedCar{name: "x5", car: c})
		},
	}
}

func runDemo(w io.Writer, sel selectedCar) error {
	step := func(title string) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, TitleStyle.Render("# "+title))
	}

	step("Initial state")
	if err := showCar(w, sel); err != nil {
		return err
	}

	step("Refuel to Petrol")
	if _, err := sel.car.Engine().ChangeFuelType(car.FuelPetrol); err != nil {
		return commandError("change fuel type", sel.name, err)
	}
	fmt.Fprintln(w, sel.car.DisplayEngineInfo())

	step("Fit four 19\" summer wheels")
	if _, _, err := sel.car.ChangeAllWheels(types.Diameter(19), car.TireSummer); err != nil {
		return commandError("change wheels", sel.name, err)
	}
	if err := printWheels(w, sel); err != nil {
		return err
	}

	step("Fit a mixed winter set")
	mixed := []types.Diameter{20, 20, 18, 20}
	for i, d := range mixed {
		wheel, err := sel.car.Wheel(i)
		if err != nil {
			return commandError("select wheel", fmt.Sprint(i+1), err)
		}
		if _, _, err := wheel.ChangeWheel(d, car.TireWinter); err != nil {
			return commandError("change wheel", fmt.Sprint(i+1), err)
		}
	}
	if _, err := sel.car.DisplayWheelInfo(); err != nil {
		fmt.Fprintln(w, WarningStyle.Render("Wheel check failed: ")+err.Error())
		return nil
	}
	return fmt.Errorf("mixed wheel set passed the wheel check")
}
