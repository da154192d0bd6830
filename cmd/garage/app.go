// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"github.com/garagekit/garage/internal/config"
	"github.com/garagekit/garage/internal/issue"
	"github.com/garagekit/garage/pkg/car"
	"github.com/garagekit/garage/pkg/garagefile"
)

type (
	// App wires CLI services and shared dependencies. Every Cobra handler
	// receives the App and reaches configuration and garage files through it.
	App struct {
		Config config.Provider
		Logger *log.Logger
		stdout io.Writer
		stderr io.Writer

		flags   rootFlags
		cfg     *config.Config
		cfgPath string
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}

	rootFlags struct {
		verbose    bool
		configFile string
		garageFile string
		carName    string
	}

	// selectedCar is a freshly built car together with its garage file name.
	selectedCar struct {
		name string
		car  *car.Car
	}
)

func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	return &App{
		Config: deps.Config,
		Logger: log.NewWithOptions(deps.Stderr, log.Options{Prefix: config.AppName, Level: log.WarnLevel}),
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
	}
}

// setup loads configuration and configures logging. A broken config file is
// reported but does not stop the command: defaults apply instead.
func (a *App) setup(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.flags.configFile})
	if err != nil {
		a.Logger.Warn(formatErrorForDisplay(err, a.flags.verbose))
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	if a.verbose() {
		a.Logger.SetLevel(log.DebugLevel)
	}
	slog.SetDefault(slog.New(a.Logger))
	a.Logger.Debug("configuration loaded", "garage_file", a.cfg.GarageFile, "default_car", a.cfg.DefaultCar)
}

func (a *App) verbose() bool {
	return a.flags.verbose || (a.cfg != nil && a.cfg.UI.Verbose)
}

// glamourStyle maps ui.color_scheme onto a glamour standard style name.
func (a *App) glamourStyle() string {
	if a.cfg == nil || a.cfg.UI.ColorScheme == "" {
		return string(config.ColorSchemeAuto)
	}
	return string(a.cfg.UI.ColorScheme)
}

// loadGarage reads the garage file named by --file or garage_file. When the
// default file is absent the built-in garage is used; an explicitly named
// file must exist.
func (a *App) loadGarage() (*garagefile.GarageFile, error) {
	path := a.flags.garageFile
	explicit := path != ""
	if !explicit {
		path = a.cfg.GarageFile
		explicit = path != garagefile.FileName
	}

	gf, err := garagefile.Load(path)
	switch {
	case err == nil:
		a.Logger.Debug("loaded garage file", "path", path, "cars", len(gf.Cars))
		return gf, nil
	case errors.Is(err, os.ErrNotExist) && !explicit:
		a.Logger.Debug("no garage file, using the built-in garage", "path", path)
		return garagefile.Default(), nil
	case errors.Is(err, os.ErrNotExist):
		return nil, &ExitError{Code: exitCodeFor(err), Err: issue.NewErrorContext().
			WithOperation("load garage file").
			WithResource(path).
			WithIssue(issue.GarageFileNotFoundId).
			WithSuggestion("Check the --file flag or the garage_file setting").
			Wrap(err).
			Build()}
	default:
		return nil, &ExitError{Code: exitCodeFor(err), Err: issue.NewErrorContext().
			WithOperation("load garage file").
			WithResource(path).
			WithIssue(issue.GarageFileInvalidId).
			WithSuggestion("Fix the reported field; the file is checked against the garage schema").
			Wrap(err).
			Build()}
	}
}

// selectCar builds the car chosen by --car, then default_car, then the
// first car in the garage.
func (a *App) selectCar() (selectedCar, error) {
	gf, err := a.loadGarage()
	if err != nil {
		return selectedCar{}, err
	}
	name := a.flags.carName
	if name == "" {
		name = a.cfg.DefaultCar
	}
	entry, err := gf.Lookup(name)
	if err != nil {
		return selectedCar{}, commandError("select car", name, err)
	}
	c, err := entry.Build()
	if err != nil {
		return selectedCar{}, commandError("build car", entry.Name, err)
	}
	a.Logger.Debug("selected car", "name", entry.Name, "wheels", entry.WheelCount())
	return selectedCar{name: entry.Name, car: c}, nil
}
