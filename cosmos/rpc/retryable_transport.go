package rpc

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/cosmos/gogoproto/proto"

	"github.com/tessellated-io/txclient/log"
)

// Retries idempotent reads against a wrapped Transport and returns the last error.
//
// Broadcasts and tx lookups are passed through untouched: the broadcast state machine owns the
// retry policy for those.
type retryableTransport struct {
	wrappedTransport Transport

	attempts retry.Option
	delay    retry.Option

	logger *log.Logger
}

// Ensure that retryableTransport implements Transport
var _ Transport = (*retryableTransport)(nil)

// NewRetryableTransport returns a Transport that retries block fetches and queries. Every call is
// attempted at least once.
func NewRetryableTransport(attempts uint, delay time.Duration, transport Transport, logger *log.Logger) Transport {
	// retry-go treats zero attempts as unlimited.
	if attempts == 0 {
		attempts = 1
	}

	return &retryableTransport{
		wrappedTransport: transport,

		attempts: retry.Attempts(attempts),
		delay:    retry.Delay(delay),

		logger: logger.ApplyPrefix("[retry]"),
	}
}

func (r *retryableTransport) ChainID() string {
	return r.wrappedTransport.ChainID()
}

func (r *retryableTransport) BroadcastTxSync(ctx context.Context, txBytes []byte) (*BroadcastResult, error) {
	return r.wrappedTransport.BroadcastTxSync(ctx, txBytes)
}

func (r *retryableTransport) TxByHash(ctx context.Context, hash []byte) (*TxResult, error) {
	return r.wrappedTransport.TxByHash(ctx, hash)
}

func (r *retryableTransport) Block(ctx context.Context, height *int64) (*Block, error) {
	var result *Block
	var err error

	err = retry.Do(func() error {
		result, err = r.wrappedTransport.Block(ctx, height)
		return err
	}, r.delay, r.attempts, retry.Context(ctx), retry.LastErrorOnly(true), r.onRetry("block"))

	return result, err
}

func (r *retryableTransport) Query(ctx context.Context, path string, req, resp proto.Message) error {
	return retry.Do(func() error {
		return r.wrappedTransport.Query(ctx, path, req, resp)
	}, r.delay, r.attempts, retry.Context(ctx), retry.LastErrorOnly(true), retry.RetryIf(isRetryableQueryError), r.onRetry(path))
}

func (r *retryableTransport) onRetry(operation string) retry.Option {
	return retry.OnRetry(func(attempt uint, err error) {
		r.logger.Debug("retrying transport call", "operation", operation, "attempt", attempt+1, "error", err)
	})
}

// Queries the node answered, successfully or not, are not retried.
func isRetryableQueryError(err error) bool {
	var queryErr *QueryError
	return !errors.As(err, &queryErr)
}
