package netutil

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"github.com/giantswarm/portcheck/internal/sentinel"
	utilnet "k8s.io/utils/net"
)

// Sentinel errors returned by Resolve.
const (
	// ErrInvalidAddress indicates the address is not a "host:port" pair.
	ErrInvalidAddress = sentinel.Error("invalid address")

	// ErrNoCandidates indicates name resolution succeeded but produced no
	// usable endpoint.
	ErrNoCandidates = sentinel.Error("address resolved to no candidates")
)

// Resolver looks up the IP addresses of a host. *net.Resolver satisfies it.
type Resolver interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

// SplitAddress splits address into its host and a non-zero port.
func SplitAddress(address string) (string, uint16, error) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return "", 0, fmt.Errorf("%w %q: %w", ErrInvalidAddress, address, err)
	}
	port, err := utilnet.ParsePort(portStr, false)
	if err != nil {
		return "", 0, fmt.Errorf("%w %q: %w", ErrInvalidAddress, address, err)
	}
	return host, uint16(port), nil
}

// Resolve returns the candidate endpoints for address in resolver order.
// IP literals (including zoned IPv6) bypass the resolver and yield exactly
// one candidate. The order of mixed-family results is whatever r returns,
// which depends on the platform resolver.
func Resolve(ctx context.Context, r Resolver, address string) ([]netip.AddrPort, error) {
	host, port, err := SplitAddress(address)
	if err != nil {
		return nil, err
	}

	if ip, err := netip.ParseAddr(host); err == nil {
		return []netip.AddrPort{netip.AddrPortFrom(ip.Unmap(), port)}, nil
	}

	if r == nil {
		r = net.DefaultResolver
	}
	ips, err := r.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", host, err)
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("resolve %q: %w", host, ErrNoCandidates)
	}

	candidates := make([]netip.AddrPort, 0, len(ips))
	for _, ip := range ips {
		candidates = append(candidates, netip.AddrPortFrom(ip.Unmap(), port))
	}
	return candidates, nil
}
