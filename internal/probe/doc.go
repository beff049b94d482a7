// Package probe implements the socket-level checks behind portcheck.
//
// Every check returns a wrapped error describing why it failed; the public
// package collapses those into booleans. Prober.Reachable and
// Prober.ReachableWithin connect to remote endpoints. Bind, Ephemeral and
// Scan bind and immediately release loopback listeners. Nothing here retries,
// caches, or probes concurrently.
package probe
