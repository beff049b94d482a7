package portcheck

import (
	"github.com/giantswarm/portcheck/internal/sentinel"
)

// ErrInvalidPortRange is returned by ParsePortRange for input that is not a
// port or a "low-high" pair of ports.
const ErrInvalidPortRange = sentinel.Error("invalid port range")
