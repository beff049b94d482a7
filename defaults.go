package portcheck

// Networks and loopback hosts used for local port operations.
const (
	// NetworkIPv4 is the Go network name used for IPv4 binds and connects.
	NetworkIPv4 = "tcp4"

	// NetworkIPv6 is the Go network name used for IPv6 binds and connects.
	NetworkIPv6 = "tcp6"

	// LoopbackIPv4 is the host IPv4 free-port checks bind to.
	LoopbackIPv4 = "127.0.0.1"

	// LoopbackIPv6 is the host IPv6 free-port checks bind to.
	LoopbackIPv6 = "::1"

	// MinPort is the lowest bindable port. Port 0 requests an ephemeral
	// port and is never reported free.
	MinPort uint16 = 1

	// MaxPort is the highest TCP port.
	MaxPort uint16 = 65535
)
