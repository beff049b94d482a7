package portcheck

import (
	"log/slog"

	"github.com/giantswarm/portcheck/internal/probe"
)

// SetLogger replaces the package-level logger. Failed binds, refused
// connects and resolution errors are expected outcomes here, so portcheck
// only logs them at Debug level.
//
// If l is nil, the logger resets to slog.Default() with a
// "component"="portcheck" attribute. Call SetLogger(nil) after
// slog.SetDefault() to pick up the new default.
//
// A Checker built WithLogger ignores the package-level logger.
func SetLogger(l *slog.Logger) {
	probe.SetLogger(l)
}
