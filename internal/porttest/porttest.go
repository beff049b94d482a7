// Package porttest provides helpers for tests that bind, listen on, or
// probe real loopback ports.
//
// The port namespace is global to the host, and go test runs each package in
// its own process, so tests that assert on whether a specific port is free
// must hold LockPorts for their duration.
package porttest

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/netip"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/giantswarm/portcheck/internal/netutil"
	"github.com/giantswarm/portcheck/internal/poll"
	"github.com/giantswarm/portcheck/internal/probe"
	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"
)

const (
	// lockFileName lives in os.TempDir so every test process on the host
	// contends on the same file.
	lockFileName = "portcheck-ports.lock"

	// lockRetryInterval is the interval between attempts to take the lock.
	lockRetryInterval = 50 * time.Millisecond

	// lockTimeout bounds how long a test waits for another process to
	// release the lock.
	lockTimeout = 2 * time.Minute

	pollInterval = 10 * time.Millisecond
	pollTimeout  = 10 * time.Second

	// firstUnprivilegedPort is where DualStackFreePort starts scanning.
	firstUnprivilegedPort = 1024
)

// prober backs the helpers; it logs through the package logger.
var prober = &probe.Prober{}

// SetupTestLogging routes portcheck debug logs to stderr when
// PORTCHECK_TEST_DEBUG is set, and discards them otherwise.
func SetupTestLogging() {
	level := slog.LevelWarn
	if os.Getenv("PORTCHECK_TEST_DEBUG") != "" {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	probe.SetLogger(slog.New(h).With("component", "portcheck"))
}

// LockPorts takes a host-wide exclusive lock on the loopback port namespace
// and releases it when the test finishes.
func LockPorts(t testing.TB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	path := filepath.Join(os.TempDir(), lockFileName)
	fl := flock.New(path)
	locked, err := fl.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		t.Fatalf("acquiring port lock %s: %v", path, err)
	}
	if !locked {
		t.Fatalf("acquiring port lock %s: lock not acquired", path)
	}

	// The lock file stays on disk; removing it could invalidate a lock
	// another process has just taken on the same path.
	t.Cleanup(func() {
		if err := fl.Close(); err != nil {
			t.Logf("releasing port lock %s: %v", path, err)
		}
	})
}

// RequireIPv6 skips the test when the host cannot bind the IPv6 loopback.
func RequireIPv6(t testing.TB) {
	t.Helper()

	if _, err := prober.Ephemeral(netutil.IPv6); err != nil {
		t.Skipf("IPv6 loopback unavailable: %v", err)
	}
}

// Listener is a running TCP listener that accepts and immediately closes
// every connection.
type Listener struct {
	Port uint16
	Addr netip.AddrPort

	ln   net.Listener
	g    *errgroup.Group
	once sync.Once
}

// Close stops the listener and waits for its accept loop to exit.
func (l *Listener) Close() error {
	var err error
	l.once.Do(func() {
		_ = l.ln.Close()
		err = l.g.Wait()
	})
	return err
}

// Listen binds a listener on addr for the family v, waits until it accepts
// connections, and closes it when the test finishes.
func Listen(t testing.TB, v netutil.IPVersion, addr string) *Listener {
	t.Helper()

	ln, err := net.Listen(v.Network(), addr)
	if err != nil {
		t.Fatalf("listen on %s %s: %v", v.Network(), addr, err)
	}
	tcpAddr, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		_ = ln.Close()
		t.Fatalf("unexpected address type: %T", ln.Addr())
	}

	l := &Listener{
		Port: uint16(tcpAddr.Port),
		Addr: netip.AddrPortFrom(tcpAddr.AddrPort().Addr().Unmap(), uint16(tcpAddr.Port)),
		ln:   ln,
		g:    &errgroup.Group{},
	}
	l.g.Go(func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					return nil
				}
				return err
			}
			_ = conn.Close()
		}
	})
	t.Cleanup(func() {
		if err := l.Close(); err != nil {
			t.Errorf("accept loop on %s: %v", l.Addr, err)
		}
	})

	WaitReachable(t, l.Addr.String())
	return l
}

// DualStackFreePort returns the lowest port from 1024 upwards that is free
// on both the IPv4 and the IPv6 loopback. Callers should hold LockPorts.
func DualStackFreePort(t testing.TB) uint16 {
	t.Helper()

	for port := firstUnprivilegedPort; port <= 65535; port++ {
		p := uint16(port)
		if prober.Bind(netutil.IPv4, p) == nil && prober.Bind(netutil.IPv6, p) == nil {
			return p
		}
	}
	t.Fatal("no port free on both IPv4 and IPv6 loopback")
	return 0
}

// WaitReachable polls until address accepts a TCP connection.
func WaitReachable(t testing.TB, address string) {
	t.Helper()
	waitFor(t, "reachable "+address, address, true)
}

// WaitUnreachable polls until address refuses TCP connections.
func WaitUnreachable(t testing.TB, address string) {
	t.Helper()
	waitFor(t, "unreachable "+address, address, false)
}

func waitFor(t testing.TB, name, address string, reachable bool) {
	t.Helper()

	err := poll.Until(context.Background(), poll.Config{
		Interval: pollInterval,
		Timeout:  pollTimeout,
		Name:     name,
		Logger:   probe.Logger(),
	}, func(ctx context.Context, _ int) (bool, error) {
		err := prober.ReachableWithin(ctx, address, pollInterval)
		return (err == nil) == reachable, nil
	})
	if err != nil {
		t.Fatalf("waiting until %s: %v", name, err)
	}
}
