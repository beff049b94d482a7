package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/netip"
	"time"

	"github.com/giantswarm/portcheck/internal/netutil"
)

// Prober holds the collaborators of a reachability check. The zero value
// uses net.DefaultResolver and the package logger.
type Prober struct {
	Resolver netutil.Resolver
	Logger   *slog.Logger
}

func (p *Prober) log() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return Logger()
}

func (p *Prober) resolver() netutil.Resolver {
	if p.Resolver != nil {
		return p.Resolver
	}
	return net.DefaultResolver
}

// Reachable resolves address and connects to the first candidate only. The
// connect is bounded by ctx and otherwise by the operating system's connect
// timeout.
func (p *Prober) Reachable(ctx context.Context, address string) error {
	candidates, err := netutil.Resolve(ctx, p.resolver(), address)
	if err != nil {
		p.log().Debug("resolve failed", "address", address, "err", err)
		return err
	}

	first := candidates[0]
	if err := dial(ctx, &net.Dialer{}, first); err != nil {
		p.log().Debug("connect failed", "address", address, "candidate", first, "err", err)
		return err
	}
	return nil
}

// ReachableWithin resolves address and tries each candidate in resolver
// order, giving every connect up to timeout. It returns nil on the first
// successful connect. The worst case takes timeout times the number of
// candidates.
func (p *Prober) ReachableWithin(ctx context.Context, address string, timeout time.Duration) error {
	if timeout <= 0 {
		return fmt.Errorf("probe %s: %w", address, ErrTimeoutNotPositive)
	}

	candidates, err := netutil.Resolve(ctx, p.resolver(), address)
	if err != nil {
		p.log().Debug("resolve failed", "address", address, "err", err)
		return err
	}

	d := &net.Dialer{Timeout: timeout}
	var errs []error
	for _, c := range candidates {
		err := dial(ctx, d, c)
		if err == nil {
			return nil
		}
		p.log().Debug("connect failed", "address", address, "candidate", c, "timeout", timeout, "err", err)
		errs = append(errs, err)
	}
	return fmt.Errorf("probe %s: %w: %w", address, ErrUnreachable, errors.Join(errs...))
}

// dial opens a TCP connection to c and closes it straight away.
func dial(ctx context.Context, d *net.Dialer, c netip.AddrPort) error {
	network := netutil.VersionOf(c.Addr()).Network()
	conn, err := d.DialContext(ctx, network, c.String())
	if err != nil {
		return fmt.Errorf("connect %s: %w", c, err)
	}
	_ = conn.Close()
	return nil
}
