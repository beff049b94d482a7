package portcheck

import "github.com/giantswarm/portcheck/internal/netutil"

// IPVersion selects the IP family a local port operation targets.
//
// IPVersion is a type alias so that the IsValid and String methods of the
// underlying type are part of the public API.
type IPVersion = netutil.IPVersion

const (
	// IPv4 targets 127.0.0.1. It is the zero value, so a Port or PortRange
	// built without an explicit version targets IPv4.
	IPv4 = netutil.IPv4

	// IPv6 targets ::1.
	IPv6 = netutil.IPv6
)
