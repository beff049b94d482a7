package portcheck

import "time"

var defaultChecker = NewChecker()

// IsPortReachable reports whether a TCP connection to the first address
// that address ("host:port") resolves to succeeds. See
// Checker.IsPortReachable.
func IsPortReachable(address string) bool {
	return defaultChecker.IsPortReachable(address)
}

// IsPortReachableWithTimeout reports whether any address that address
// resolves to accepts a TCP connection within timeout. See
// Checker.IsPortReachableWithTimeout.
func IsPortReachableWithTimeout(address string, timeout time.Duration) bool {
	return defaultChecker.IsPortReachableWithTimeout(address, timeout)
}

// IsLocalPortFree reports whether p is free on the loopback address of its
// family. Use NewPort(n) or IPv4Port(n) for IPv4 and IPv6Port(n) for IPv6.
func IsLocalPortFree(p Port) bool {
	return defaultChecker.IsLocalPortFree(p)
}

// IsLocalIPv4PortFree reports whether port is free on 127.0.0.1.
func IsLocalIPv4PortFree(port uint16) bool {
	return defaultChecker.IsLocalPortFree(IPv4Port(port))
}

// IsLocalIPv6PortFree reports whether port is free on ::1.
func IsLocalIPv6PortFree(port uint16) bool {
	return defaultChecker.IsLocalPortFree(IPv6Port(port))
}

// FreeLocalPort returns an ephemeral IPv4 port that was free when checked.
func FreeLocalPort() (uint16, bool) {
	return defaultChecker.FreeLocalPortFor(IPv4)
}

// FreeLocalPortFor returns an ephemeral port for v that was free when
// checked.
func FreeLocalPortFor(v IPVersion) (uint16, bool) {
	return defaultChecker.FreeLocalPortFor(v)
}

// FreeLocalIPv4Port returns an ephemeral port free on 127.0.0.1.
func FreeLocalIPv4Port() (uint16, bool) {
	return defaultChecker.FreeLocalPortFor(IPv4)
}

// FreeLocalIPv6Port returns an ephemeral port free on ::1.
func FreeLocalIPv6Port() (uint16, bool) {
	return defaultChecker.FreeLocalPortFor(IPv6)
}

// FreeLocalPortInRange returns the lowest free port of r for r's family.
// Build r with InclusiveRange or ExclusiveRange, which default to IPv4, and
// call WithVersion(IPv6) to scan ::1.
func FreeLocalPortInRange(r PortRange) (uint16, bool) {
	return defaultChecker.FreeLocalPortInRange(r)
}

// FreeLocalIPv4PortInRange returns the lowest port in [lo, hi] free on
// 127.0.0.1.
func FreeLocalIPv4PortInRange(lo, hi uint16) (uint16, bool) {
	return defaultChecker.FreeLocalPortInRange(InclusiveRange(lo, hi))
}

// FreeLocalIPv6PortInRange returns the lowest port in [lo, hi] free on ::1.
func FreeLocalIPv6PortInRange(lo, hi uint16) (uint16, bool) {
	return defaultChecker.FreeLocalPortInRange(InclusiveRange(lo, hi).WithVersion(IPv6))
}
