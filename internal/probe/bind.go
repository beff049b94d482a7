package probe

import (
	"fmt"
	"iter"
	"net"

	"github.com/giantswarm/portcheck/internal/netutil"
)

// listen binds a TCP listener on the loopback address of v. The IPv6
// listener is v6-only, so it never occupies the IPv4 port of the same
// number.
func listen(v netutil.IPVersion, port uint16) (*net.TCPListener, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("listen on port %d: %w: %v", port, ErrInvalidVersion, v)
	}
	addr := net.TCPAddrFromAddrPort(v.LoopbackAddrPort(port))
	l, err := net.ListenTCP(v.Network(), addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return l, nil
}

// Bind reports whether port can be bound on the loopback address of v by
// binding it and releasing it before returning. A nil error means the port
// was free at the moment of the check.
func (p *Prober) Bind(v netutil.IPVersion, port uint16) error {
	if port == 0 {
		return fmt.Errorf("bind %v: %w", v, ErrInvalidPort)
	}
	l, err := listen(v, port)
	if err != nil {
		return err
	}
	if err := l.Close(); err != nil {
		p.log().Debug("close listener after bind check", "port", port, "version", v, "err", err)
	}
	return nil
}

// Ephemeral binds port 0 on the loopback address of v, reads back the port
// the kernel assigned, and releases it.
func (p *Prober) Ephemeral(v netutil.IPVersion) (uint16, error) {
	l, err := listen(v, 0)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := l.Close(); err != nil {
			p.log().Debug("close ephemeral listener", "version", v, "err", err)
		}
	}()

	tcpAddr, ok := l.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("unexpected address type: %T", l.Addr())
	}
	if tcpAddr.Port <= 0 || tcpAddr.Port > 65535 {
		return 0, fmt.Errorf("unexpected port %d", tcpAddr.Port)
	}
	return uint16(tcpAddr.Port), nil
}

// Scan returns the first port yielded by ports that Bind accepts. Ports are
// checked one at a time in the order the sequence yields them.
func (p *Prober) Scan(v netutil.IPVersion, ports iter.Seq[uint16]) (uint16, error) {
	if !v.IsValid() {
		return 0, fmt.Errorf("scan: %w: %v", ErrInvalidVersion, v)
	}
	checked := 0
	for port := range ports {
		checked++
		if err := p.Bind(v, port); err == nil {
			return port, nil
		}
	}
	p.log().Debug("port range exhausted", "version", v, "checked", checked)
	return 0, fmt.Errorf("scan %d %v ports: %w", checked, v, ErrRangeExhausted)
}
