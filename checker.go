package portcheck

import (
	"context"
	"time"

	"github.com/giantswarm/portcheck/internal/probe"
)

// Checker runs reachability and free-port checks with a fixed resolver and
// logger. The package-level functions use a Checker built with no options.
//
// A Checker holds no mutable state and is safe for concurrent use. Concurrent
// checks of the same local port may still observe each other's short-lived
// listeners; serialize them externally if that matters.
type Checker struct {
	prober probe.Prober
}

// NewChecker returns a Checker configured by opts.
func NewChecker(opts ...Option) *Checker {
	var cfg checkerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Checker{prober: probe.Prober{
		Resolver: cfg.Resolver,
		Logger:   cfg.Logger,
	}}
}

// IsPortReachable resolves address ("host:port") and reports whether a TCP
// connection to the first resolved candidate succeeds. Only the operating
// system's connect timeout bounds the attempt. Resolution failure, refusal
// and timeout all report false.
func (c *Checker) IsPortReachable(address string) bool {
	return c.prober.Reachable(context.Background(), address) == nil
}

// IsPortReachableWithTimeout resolves address and tries each candidate in
// resolver order, giving every connect up to timeout. It reports true on the
// first success, so the call can take timeout times the number of
// candidates. A timeout <= 0 reports false.
func (c *Checker) IsPortReachableWithTimeout(address string, timeout time.Duration) bool {
	return c.prober.ReachableWithin(context.Background(), address, timeout) == nil
}

// IsLocalPortFree reports whether p can be bound on the loopback address of
// its family. The listener is released before returning. Port 0 is never
// free.
func (c *Checker) IsLocalPortFree(p Port) bool {
	return c.prober.Bind(p.Version, p.Number) == nil
}

// FreeLocalPortFor asks the kernel for an ephemeral port on the loopback
// address of v and releases it. It reports false only if the bind fails.
func (c *Checker) FreeLocalPortFor(v IPVersion) (uint16, bool) {
	port, err := c.prober.Ephemeral(v)
	if err != nil {
		return 0, false
	}
	return port, true
}

// FreeLocalPortInRange returns the lowest port of r that IsLocalPortFree
// accepts for r's family, checking one port at a time. It reports false when
// no port in r is free or r is empty.
func (c *Checker) FreeLocalPortInRange(r PortRange) (uint16, bool) {
	port, err := c.prober.Scan(r.Version, r.Ports())
	if err != nil {
		return 0, false
	}
	return port, true
}
