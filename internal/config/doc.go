// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/garage/config.cue (XDG_CONFIG_HOME on Linux,
// ~/Library/Application Support/garage/config.cue on macOS, %APPDATA%\garage\config.cue
// on Windows), falling back to ./config.cue. Values can be overridden with GARAGE_*
// environment variables (GARAGE_DEFAULT_CAR, GARAGE_UI_VERBOSE, ...).
//
// The file is validated against the embedded CUE schema (config_schema.cue) before it
// is merged into Viper.
package config
