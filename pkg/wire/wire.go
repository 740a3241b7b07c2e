// Package wire holds the handful of constants both staffd and staffctl must
// agree on, since nothing else coordinates them: the default port, the
// shared line-buffer size, and the connection-table capacity.
package wire

const (
	// DefaultPort is the TCP port the dispatcher listens on unless
	// overridden.
	DefaultPort = 16166

	// BufferSize bounds one line in either direction. Client and server
	// must use the same value so that a single read never straddles two
	// messages.
	BufferSize = 8192

	// MaxClients is the size of the dispatcher's connection table.
	MaxClients = 8
)
