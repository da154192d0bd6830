// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/fang"

	"github.com/garagekit/garage/internal/issue"
)

// formatErrorForDisplay formats an error for user display. ActionableErrors
// get their suggestions, and the cause chain in verbose mode.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// renderIssue prints the catalog page attached to err, if any, using the
// glamour style named by style.
func renderIssue(w io.Writer, err error, style string) {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		return
	}
	entry := ae.Issue()
	if entry == nil {
		return
	}
	rendered, renderErr := entry.Render(style)
	if renderErr != nil {
		slog.Warn("failed to render issue catalog entry", "issueId", ae.IssueId, "error", renderErr)
		return
	}
	fmt.Fprint(w, rendered)
}

// handleError replaces fang's default error printer.
func (a *App) handleError(w io.Writer, _ fang.Styles, err error) {
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose()))
	if a.verbose() {
		renderIssue(w, err, a.glamourStyle())
	}
}
