package portcheck

import (
	"fmt"
	"log/slog"

	"github.com/giantswarm/portcheck/internal/netutil"
)

// Resolver looks up the IP addresses of a host name. *net.Resolver
// satisfies it.
type Resolver = netutil.Resolver

// checkerConfig holds the settings NewChecker applies.
type checkerConfig struct {
	Resolver Resolver
	Logger   *slog.Logger
}

// requireNonNil panics if v is nil with a descriptive message.
func requireNonNil[T any](name string, v *T) {
	if v == nil {
		panic(fmt.Sprintf("portcheck: %s must not be nil", name))
	}
}

// Option configures a Checker during construction via NewChecker.
//
// The With* functions panic on nil input. Options are normally built from
// package-level values at startup, so a nil indicates a programmer error.
type Option func(*checkerConfig)

// WithResolver sets the resolver used to turn host names into candidate
// addresses for reachability checks. IP literals never reach the resolver.
//
// Default: net.DefaultResolver.
//
// Panics if r is nil.
func WithResolver(r Resolver) Option {
	if r == nil {
		panic("portcheck: resolver must not be nil")
	}
	return func(c *checkerConfig) {
		c.Resolver = r
	}
}

// WithLogger sets the logger the Checker reports failed probes to at Debug
// level, instead of the package-level logger set by SetLogger.
//
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	requireNonNil("logger", l)
	return func(c *checkerConfig) {
		c.Logger = l
	}
}
