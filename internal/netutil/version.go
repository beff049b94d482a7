package netutil

import (
	"fmt"
	"net/netip"
)

// IPVersion selects the IP family a local port operation targets.
type IPVersion int

const (
	// IPv4 targets 127.0.0.1 over tcp4. It is the zero value, so a bare
	// port number defaults to IPv4.
	IPv4 IPVersion = iota

	// IPv6 targets ::1 over tcp6. Listeners bound for IPv6 are v6-only and
	// never occupy the IPv4 port of the same number.
	IPv6
)

var (
	loopbackIPv4 = netip.AddrFrom4([4]byte{127, 0, 0, 1})
	loopbackIPv6 = netip.IPv6Loopback()
)

// IsValid reports whether v is a recognized IPVersion value.
func (v IPVersion) IsValid() bool {
	switch v {
	case IPv4, IPv6:
		return true
	default:
		return false
	}
}

// String returns the name of the IP family.
func (v IPVersion) String() string {
	switch v {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return fmt.Sprintf("IPVersion(%d)", int(v))
	}
}

// Network returns the Go network name for v ("tcp4" or "tcp6").
// Unknown values map to "tcp4".
func (v IPVersion) Network() string {
	if v == IPv6 {
		return "tcp6"
	}
	return "tcp4"
}

// Loopback returns the loopback address of the family.
// Unknown values map to the IPv4 loopback.
func (v IPVersion) Loopback() netip.Addr {
	if v == IPv6 {
		return loopbackIPv6
	}
	return loopbackIPv4
}

// LoopbackAddrPort returns the loopback endpoint for port on the family.
func (v IPVersion) LoopbackAddrPort(port uint16) netip.AddrPort {
	return netip.AddrPortFrom(v.Loopback(), port)
}

// VersionOf returns the family of addr. IPv4-mapped IPv6 addresses are IPv4.
func VersionOf(addr netip.Addr) IPVersion {
	if addr.Unmap().Is4() {
		return IPv4
	}
	return IPv6
}
