// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/garagekit/garage/pkg/car"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the cars in the garage",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			gf, err := app.loadGarage()
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(SubtitleStyle).
				StyleFunc(func(row, _ int) lipgloss.Style {
					if row == table.HeaderRow {
						return tableHeaderStyle
					}
					return tableCellStyle
				}).
				Headers("NAME", "MAKE", "MODEL", "FUEL", "WHEELS")
			for _, e := range gf.Cars {
				t.Row(e.Name, e.Make, e.Model, e.Fuel, strconv.Itoa(e.WheelCount()))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func newShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the car's engine, body and wheels",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := app.selectCar()
			if err != nil {
				return err
			}
			return showCar(cmd.OutOrStdout(), sel)
		},
	}
}

// showCar prints the four display lines in order. The wheel line is the
// only one that can fail.
func showCar(w io.Writer, sel selectedCar) error {
	if err := sel.car.DisplayInfo(w); err != nil {
		return err
	}
	fmt.Fprintln(w, sel.car.DisplayEngineInfo())
	fmt.Fprintln(w, sel.car.DisplayCarBodyInfo())
	return printWheels(w, sel)
}

func printWheels(w io.Writer, sel selectedCar) error {
	info, err := sel.car.DisplayWheelInfo()
	if err != nil {
		return commandError("display wheel info", sel.name, err)
	}
	fmt.Fprintln(w, info)
	return nil
}

// wheelLine describes a single wheel in the DisplayWheelInfo format.
func wheelLine(n int, w *car.Wheel) string {
	return fmt.Sprintf("Wheel%d Diameter: %d inch, Wheel%d Tires: %s", n, w.Diameter(), n, w.TireType())
}
