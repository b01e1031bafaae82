package tx

import "time"

const (
	DefaultPollInterval        = time.Second
	DefaultMaxInclusionRetries = 5
)

// Option configures a TxClient.
type Option func(*TxClient)

// WithPollInterval sets how long to sleep between block height polls.
func WithPollInterval(interval time.Duration) Option {
	return func(c *TxClient) {
		c.broadcaster.pollInterval = interval
	}
}

// WithMaxInclusionRetries sets how many failed inclusion lookups are tolerated after broadcast.
func WithMaxInclusionRetries(retries int) Option {
	return func(c *TxClient) {
		c.broadcaster.maxInclusionRetries = retries
	}
}

// WithHeightWaitTimeout bounds how long a single wait for the next block may take. Zero waits
// indefinitely.
func WithHeightWaitTimeout(timeout time.Duration) Option {
	return func(c *TxClient) {
		c.broadcaster.heightWaitTimeout = timeout
	}
}
