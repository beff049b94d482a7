package netutil

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeResolver answers lookups from a fixed table and records every host it
// was asked about.
type fakeResolver struct {
	answers map[string][]netip.Addr
	err     error
	asked   []string
}

func (f *fakeResolver) LookupNetIP(_ context.Context, _, host string) ([]netip.Addr, error) {
	f.asked = append(f.asked, host)
	if f.err != nil {
		return nil, f.err
	}
	return f.answers[host], nil
}

func TestSplitAddress(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		address  string
		wantHost string
		wantPort uint16
		wantErr  bool
	}{
		"ipv4 literal":  {address: "127.0.0.1:8080", wantHost: "127.0.0.1", wantPort: 8080},
		"ipv6 literal":  {address: "[::1]:443", wantHost: "::1", wantPort: 443},
		"hostname":      {address: "localhost:65535", wantHost: "localhost", wantPort: 65535},
		"missing port":  {address: "localhost", wantErr: true},
		"zero port":     {address: "localhost:0", wantErr: true},
		"port too big":  {address: "localhost:65536", wantErr: true},
		"named port":    {address: "localhost:http", wantErr: true},
		"empty address": {address: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			host, port, err := SplitAddress(tc.address)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidAddress) {
					t.Fatalf("SplitAddress(%q) error = %v, want ErrInvalidAddress", tc.address, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitAddress(%q) unexpected error: %v", tc.address, err)
			}
			if host != tc.wantHost || port != tc.wantPort {
				t.Errorf("SplitAddress(%q) = (%q, %d), want (%q, %d)", tc.address, host, port, tc.wantHost, tc.wantPort)
			}
		})
	}
}

func TestResolve_LiteralBypassesResolver(t *testing.T) {
	t.Parallel()

	r := &fakeResolver{}
	got, err := Resolve(context.Background(), r, "[::ffff:127.0.0.1]:9000")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want := []netip.AddrPort{netip.MustParseAddrPort("127.0.0.1:9000")}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b netip.AddrPort) bool { return a == b })); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
	if len(r.asked) != 0 {
		t.Errorf("resolver consulted for literal: %v", r.asked)
	}
}

func TestResolve_KeepsResolverOrder(t *testing.T) {
	t.Parallel()

	r := &fakeResolver{answers: map[string][]netip.Addr{
		"dual.test": {
			netip.MustParseAddr("::1"),
			netip.MustParseAddr("::ffff:127.0.0.1"),
			netip.MustParseAddr("192.0.2.7"),
		},
	}}

	got, err := Resolve(context.Background(), r, "dual.test:8443")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want := []string{"[::1]:8443", "127.0.0.1:8443", "192.0.2.7:8443"}
	gotStr := make([]string, 0, len(got))
	for _, ap := range got {
		gotStr = append(gotStr, ap.String())
	}
	if diff := cmp.Diff(want, gotStr); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	lookupErr := errors.New("no such host")

	tests := map[string]struct {
		resolver *fakeResolver
		address  string
		wantErr  error
	}{
		"invalid address": {resolver: &fakeResolver{}, address: "nope", wantErr: ErrInvalidAddress},
		"lookup failure":  {resolver: &fakeResolver{err: lookupErr}, address: "gone.test:80", wantErr: lookupErr},
		"empty answer":    {resolver: &fakeResolver{}, address: "empty.test:80", wantErr: ErrNoCandidates},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Resolve(context.Background(), tc.resolver, tc.address)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Resolve(%q) error = %v, want %v", tc.address, err, tc.wantErr)
			}
		})
	}
}
