package pulse

import "time"

const (
	// DefaultTimeout bounds every pactl invocation.
	DefaultTimeout = 5 * time.Second
	// DefaultBinary is looked up in PATH.
	DefaultBinary = "pactl"
)

// ClientOption is a functional option for configuring a Client.
type ClientOption func(*Client)

// WithBinary sets the pactl executable.
func WithBinary(path string) ClientOption {
	return func(c *Client) {
		if path != "" {
			c.binary = path
		}
	}
}

// WithTimeout sets the timeout for each pactl command.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRunner replaces command execution, mainly for tests.
func WithRunner(r Runner) ClientOption {
	return func(c *Client) {
		c.runner = r
	}
}
