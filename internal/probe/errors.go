package probe

import (
	"github.com/giantswarm/portcheck/internal/netutil"
	"github.com/giantswarm/portcheck/internal/sentinel"
)

const (
	// ErrTimeoutNotPositive is returned by ReachableWithin for a zero or
	// negative per-candidate timeout.
	ErrTimeoutNotPositive = sentinel.Error("timeout must be positive")

	// ErrInvalidPort is returned by Bind for port 0, which asks the kernel
	// for an ephemeral port instead of naming one.
	ErrInvalidPort = sentinel.Error("port 0 is not a bindable port")

	// ErrInvalidVersion is returned for an IPVersion outside IPv4 and IPv6.
	ErrInvalidVersion = sentinel.Error("unknown IP version")

	// ErrRangeExhausted is returned by Scan when no port in the range could
	// be bound.
	ErrRangeExhausted = sentinel.Error("no free port in range")

	// ErrUnreachable is returned by ReachableWithin when every resolved
	// candidate failed to connect.
	ErrUnreachable = sentinel.Error("no candidate accepted a connection")

	// ErrNoCandidates mirrors netutil.ErrNoCandidates.
	ErrNoCandidates = netutil.ErrNoCandidates

	// ErrInvalidAddress mirrors netutil.ErrInvalidAddress.
	ErrInvalidAddress = netutil.ErrInvalidAddress
)
