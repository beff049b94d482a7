package probe_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/giantswarm/portcheck/internal/netutil"
	"github.com/giantswarm/portcheck/internal/porttest"
	"github.com/giantswarm/portcheck/internal/probe"
)

func TestBind_PortZero(t *testing.T) {
	t.Parallel()

	if err := prober.Bind(netutil.IPv4, 0); !errors.Is(err, probe.ErrInvalidPort) {
		t.Fatalf("Bind(IPv4, 0) error = %v, want ErrInvalidPort", err)
	}
}

func TestBind_InvalidVersion(t *testing.T) {
	t.Parallel()

	if err := prober.Bind(netutil.IPVersion(9), 8080); !errors.Is(err, probe.ErrInvalidVersion) {
		t.Fatalf("Bind(9, 8080) error = %v, want ErrInvalidVersion", err)
	}
	if _, err := prober.Ephemeral(netutil.IPVersion(9)); !errors.Is(err, probe.ErrInvalidVersion) {
		t.Fatalf("Ephemeral(9) error = %v, want ErrInvalidVersion", err)
	}
}

func TestBind_OccupiedPort(t *testing.T) {
	porttest.LockPorts(t)

	l := porttest.Listen(t, netutil.IPv4, "127.0.0.1:0")
	if err := prober.Bind(netutil.IPv4, l.Port); err == nil {
		t.Fatalf("Bind(IPv4, %d) succeeded on an occupied port", l.Port)
	}

	if err := l.Close(); err != nil {
		t.Fatalf("closing listener: %v", err)
	}
	if err := prober.Bind(netutil.IPv4, l.Port); err != nil {
		t.Fatalf("Bind(IPv4, %d) after release: %v", l.Port, err)
	}
}

func TestEphemeral(t *testing.T) {
	porttest.LockPorts(t)

	for _, v := range []netutil.IPVersion{netutil.IPv4, netutil.IPv6} {
		t.Run(v.String(), func(t *testing.T) {
			if v == netutil.IPv6 {
				porttest.RequireIPv6(t)
			}

			port, err := prober.Ephemeral(v)
			if err != nil {
				t.Fatalf("Ephemeral(%v) error: %v", v, err)
			}
			if port == 0 {
				t.Fatal("Ephemeral returned port 0")
			}
			if err := prober.Bind(v, port); err != nil {
				t.Errorf("Bind(%v, %d) after Ephemeral: %v", v, port, err)
			}
		})
	}
}

func TestScan(t *testing.T) {
	porttest.LockPorts(t)

	busy := porttest.Listen(t, netutil.IPv4, "127.0.0.1:0")

	t.Run("skips occupied port", func(t *testing.T) {
		free, err := prober.Ephemeral(netutil.IPv4)
		if err != nil {
			t.Fatalf("Ephemeral: %v", err)
		}
		got, err := prober.Scan(netutil.IPv4, slices.Values([]uint16{busy.Port, free}))
		if err != nil {
			t.Fatalf("Scan error: %v", err)
		}
		if got != free {
			t.Errorf("Scan = %d, want %d", got, free)
		}
	})

	t.Run("exhausted", func(t *testing.T) {
		_, err := prober.Scan(netutil.IPv4, slices.Values([]uint16{busy.Port}))
		if !errors.Is(err, probe.ErrRangeExhausted) {
			t.Fatalf("Scan error = %v, want ErrRangeExhausted", err)
		}
	})

	t.Run("empty sequence", func(t *testing.T) {
		_, err := prober.Scan(netutil.IPv4, slices.Values([]uint16(nil)))
		if !errors.Is(err, probe.ErrRangeExhausted) {
			t.Fatalf("Scan error = %v, want ErrRangeExhausted", err)
		}
	})

	t.Run("stops at first free port", func(t *testing.T) {
		free, err := prober.Ephemeral(netutil.IPv4)
		if err != nil {
			t.Fatalf("Ephemeral: %v", err)
		}
		var yielded []uint16
		seq := func(yield func(uint16) bool) {
			for _, p := range []uint16{free, busy.Port} {
				yielded = append(yielded, p)
				if !yield(p) {
					return
				}
			}
		}
		if _, err := prober.Scan(netutil.IPv4, seq); err != nil {
			t.Fatalf("Scan error: %v", err)
		}
		if len(yielded) != 1 {
			t.Errorf("Scan pulled %v from the sequence, want only the first port", yielded)
		}
	})
}
