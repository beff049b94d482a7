// Package portcheck answers two questions about TCP ports: can a remote
// endpoint be reached, and which local port is free to bind.
//
// # Reachability
//
//	if portcheck.IsPortReachable("db.internal:5432") {
//	    // the first address db.internal resolves to accepted a connection
//	}
//
//	// Try every resolved address, giving each one up to 500ms.
//	ok := portcheck.IsPortReachableWithTimeout("localhost:8080", 500*time.Millisecond)
//
// When a name resolves to several addresses of mixed families, candidates
// are tried in the order the platform resolver returns them. That order is
// not deterministic across hosts.
//
// # Free local ports
//
//	port, ok := portcheck.FreeLocalPort()                       // IPv4 ephemeral port
//	port, ok = portcheck.FreeLocalPortFor(portcheck.IPv6)       // IPv6 ephemeral port
//	port, ok = portcheck.FreeLocalPortInRange(portcheck.InclusiveRange(8000, 8100))
//	free := portcheck.IsLocalPortFree(portcheck.IPv6Port(8080))
//
// A bare port or range targets IPv4; tag it with IPv6 to probe ::1 instead.
// IPv4 and IPv6 ports are independent: a listener on 127.0.0.1:8080 does not
// make [::1]:8080 busy.
//
// A port reported free is only known to have been free when it was checked.
// Another process may bind it before the caller does.
//
// Every operation is synchronous, performs a single bind or connect per
// candidate, and never retries.
package portcheck
