// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/garagekit/garage/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "garage",
		Short: "Inspect and modify the cars in a garage file",
		Long: TitleStyle.Render("garage") + SubtitleStyle.Render(" - a small car model with validated parts") + `

Cars are declared in a garage.cue file. Each command builds the selected car
from scratch, applies the requested change and prints the result.
Without a garage file the built-in BMW X5 is used.

` + SubtitleStyle.Render("Examples:") + `
  garage list                     List the cars in the garage
  garage show --car x5            Show engine, body and wheels
  garage refuel petrol            Switch a combustion engine to Petrol
  garage rewheel 19 summer        Fit four 19" summer wheels
  garage export --format toml     Print the car as TOML`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.setup(cmd.Context())
		},
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: types.ExitBadInput, Err: err}
	})

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringVar(&app.flags.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/garage/config.cue)")
	flags.StringVarP(&app.flags.garageFile, "file", "f", "", "garage file (default is the garage_file setting, then ./garage.cue)")
	flags.StringVarP(&app.flags.carName, "car", "c", "", "car to use (default is the default_car setting, then the first car)")

	rootCmd.AddCommand(
		newListCommand(app),
		newShowCommand(app),
		newRefuelCommand(app),
		newRewheelCommand(app),
		newExportCommand(app),
		newDemoCommand(app),
		newConfigCommand(app),
	)
	return rootCmd
}

// exactArgs is cobra.ExactArgs with the bad-input exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &ExitError{Code: types.ExitBadInput, Err: err}
		}
		return nil
	}
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Run executes the CLI with args and returns the exit code.
func Run(ctx context.Context, app *App, args []string) types.ExitCode {
	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(args)
	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	)
	return exitCodeFor(err)
}

// Execute is called by main.main.
func Execute() {
	os.Exit(int(Run(context.Background(), NewApp(Dependencies{}), os.Args[1:])))
}
