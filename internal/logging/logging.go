// Package logging builds the slog logger used for diagnostics.
package logging

import (
	"io"
	"log/slog"
)

// New returns a logger writing to w. format "json" selects the JSON
// handler; anything else writes text.
func New(format string, w io.Writer) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
