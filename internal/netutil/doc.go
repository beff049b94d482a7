// Package netutil provides the address plumbing shared by portcheck probes.
//
// IPVersion maps an IP family to its Go network name and loopback address.
// Resolve turns a "host:port" string into the ordered list of candidate
// endpoints a reachability probe should try, consulting a Resolver only when
// the host is not already an IP literal.
package netutil
