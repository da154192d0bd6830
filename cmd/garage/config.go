// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garagekit/garage/internal/config"
	"github.com/garagekit/garage/internal/issue"
)

// newConfigCommand creates the `garage config` command tree. Subcommands
// that read configuration go through the App's config.Provider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage garage configuration",
		Long: `Manage garage configuration.

Configuration is stored in:
  - Linux: ~/.config/garage/config.cue
  - macOS: ~/Library/Application Support/garage/config.cue
  - Windows: %APPDATA%\garage\config.cue

GARAGE_* environment variables override the file, for example
GARAGE_DEFAULT_CAR or GARAGE_UI_VERBOSE.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app, cmd.OutOrStdout())
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.CreateDefaultConfig()
			if err != nil {
				return issue.WrapWithContext(err, "create config", "")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Args:      exactArgs(2),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.Context(), app, cmd.OutOrStdout(), args[0], args[1])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: app.flags.configFile})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, w io.Writer) error {
	cfg, path, err := config.LoadWithPath(ctx, config.LoadOptions{ConfigFilePath: app.flags.configFile})
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	defaultCar := cfg.DefaultCar
	if defaultCar == "" {
		defaultCar = "(first car)"
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("garage_file"), valueStyle.Render(cfg.GarageFile))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("default_car"), valueStyle.Render(defaultCar))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))
	return nil
}

// setConfigValue updates one key and writes the file back to where it was
// read from, or to the standard location.
func setConfigValue(ctx context.Context, app *App, w io.Writer, key, value string) error {
	cfg, path, err := config.LoadWithPath(ctx, config.LoadOptions{ConfigFilePath: app.flags.configFile})
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return badArgument(key, value, err)
	}
	if err := config.Save(cfg, path); err != nil {
		return issue.WrapWithContext(err, "save config", path)
	}
	if path == "" {
		if path, err = config.ConfigFilePath(); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%s Set %s = %s in %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(key), value, path)
	return nil
}
