// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the garage CLI commands.
//
// Every command rebuilds its car from the garage file, so changes made by
// refuel or rewheel last only for the run that made them.
package cmd
