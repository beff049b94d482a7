package portcheck

import (
	"fmt"
	"iter"
	"net/netip"
	"strings"

	"github.com/docker/go-connections/nat"
)

// Port is a TCP port number tagged with the IP family it refers to. The same
// number can be free on one family and busy on the other.
type Port struct {
	Number  uint16
	Version IPVersion
}

// NewPort returns an IPv4 port.
func NewPort(n uint16) Port {
	return Port{Number: n, Version: IPv4}
}

// IPv4Port returns an IPv4 port.
func IPv4Port(n uint16) Port {
	return Port{Number: n, Version: IPv4}
}

// IPv6Port returns an IPv6 port.
func IPv6Port(n uint16) Port {
	return Port{Number: n, Version: IPv6}
}

// AddrPort returns the loopback endpoint of p.
func (p Port) AddrPort() netip.AddrPort {
	return p.Version.LoopbackAddrPort(p.Number)
}

// String returns the loopback endpoint of p, e.g. "127.0.0.1:80" or "[::1]:80".
func (p Port) String() string {
	return p.AddrPort().String()
}

// PortRange is a span of ports tagged with an IP family. Min is always part
// of the range; Max is part of it unless Exclusive is set. A range whose
// bounds are inverted, or an exclusive range with Min == Max, is empty.
type PortRange struct {
	Min       uint16
	Max       uint16
	Exclusive bool
	Version   IPVersion
}

// InclusiveRange returns the IPv4 range [lo, hi].
func InclusiveRange(lo, hi uint16) PortRange {
	return PortRange{Min: lo, Max: hi}
}

// ExclusiveRange returns the IPv4 range [lo, hi).
func ExclusiveRange(lo, hi uint16) PortRange {
	return PortRange{Min: lo, Max: hi, Exclusive: true}
}

// WithVersion returns a copy of r tagged with v.
func (r PortRange) WithVersion(v IPVersion) PortRange {
	r.Version = v
	return r
}

// last returns the highest port in r, or false if r is empty.
func (r PortRange) last() (uint16, bool) {
	if r.Exclusive {
		if r.Max <= r.Min {
			return 0, false
		}
		return r.Max - 1, true
	}
	if r.Max < r.Min {
		return 0, false
	}
	return r.Max, true
}

// Empty reports whether r contains no ports.
func (r PortRange) Empty() bool {
	_, ok := r.last()
	return !ok
}

// Len returns the number of ports in r.
func (r PortRange) Len() int {
	last, ok := r.last()
	if !ok {
		return 0
	}
	return int(last) - int(r.Min) + 1
}

// Contains reports whether port lies within r.
func (r PortRange) Contains(port uint16) bool {
	last, ok := r.last()
	return ok && port >= r.Min && port <= last
}

// Ports yields the ports of r in ascending order. It stops at 65535 and
// never wraps around.
func (r PortRange) Ports() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		last, ok := r.last()
		if !ok {
			return
		}
		for port := r.Min; ; port++ {
			if !yield(port) || port == last {
				return
			}
		}
	}
}

// String renders r in interval notation with its family,
// e.g. "[8000, 8100] IPv4" or "[8000, 8100) IPv6".
func (r PortRange) String() string {
	closing := "]"
	if r.Exclusive {
		closing = ")"
	}
	return fmt.Sprintf("[%d, %d%s %v", r.Min, r.Max, closing, r.Version)
}

// ParsePortRange parses a single port ("8080") or an inclusive range
// ("8000-8100") tagged with v.
func ParsePortRange(s string, v IPVersion) (PortRange, error) {
	if !v.IsValid() {
		return PortRange{}, fmt.Errorf("%w %q: unknown IP version %v", ErrInvalidPortRange, s, v)
	}
	lo, hi, err := nat.ParsePortRange(strings.TrimSpace(s))
	if err != nil {
		return PortRange{}, fmt.Errorf("%w %q: %w", ErrInvalidPortRange, s, err)
	}
	return PortRange{Min: uint16(lo), Max: uint16(hi), Version: v}, nil
}
