package tx

import (
	"bytes"
	"context"
	"errors"
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/tessellated-io/txclient/coding"
	"github.com/tessellated-io/txclient/cosmos/rpc"
	"github.com/tessellated-io/txclient/log"
)

type broadcastState int

const (
	stateNotSubmitted broadcastState = iota
	stateSubmitted
	stateIncluded
	stateFailed
	stateInclusionUnknown
)

func (s broadcastState) String() string {
	switch s {
	case stateNotSubmitted:
		return "not_submitted"
	case stateSubmitted:
		return "submitted"
	case stateIncluded:
		return "included"
	case stateFailed:
		return "failed"
	case stateInclusionUnknown:
		return "inclusion_unknown"
	default:
		return "unknown"
	}
}

// broadcaster submits a signed transaction and waits for it to land in a block.
type broadcaster struct {
	transport rpc.Transport

	pollInterval        time.Duration
	maxInclusionRetries int
	heightWaitTimeout   time.Duration

	logger *log.Logger
}

// broadcastAndConfirm returns the execution result of signed, broadcasting it only if the chain
// does not already have it.
func (b *broadcaster) broadcastAndConfirm(ctx context.Context, signed *SignedTx) (*rpc.TxResult, error) {
	hash := signed.Hash()
	logger := b.logger.With("tx_hash", coding.FormatTxHash(hash))

	if included, err := b.transport.TxByHash(ctx, hash); err == nil {
		logger.Debug("transaction already on chain, not broadcasting", "height", included.Height)
		return b.settle(logger, hash, included)
	}

	result, err := b.transport.BroadcastTxSync(ctx, signed.Bytes())
	if err != nil {
		logger.Error("failed to broadcast transaction", "state", stateNotSubmitted, "error", err)
		return nil, errorsmod.Wrap(err, "broadcasting transaction")
	}

	if !bytes.Equal(result.Hash, hash) {
		return nil, errorsmod.Wrapf(ErrInvariantViolation, "node reported hash %s for transaction %s", coding.FormatTxHash(result.Hash), coding.FormatTxHash(hash))
	}

	logger.Info("📣 broadcast transaction", "check_tx_code", result.Code, "codespace", result.Codespace)
	if result.Code != 0 {
		logger.Error("transaction rejected in check tx", "state", stateFailed, "log", result.Log)
		return nil, &TxFailedError{
			Hash:      hash,
			Codespace: result.Codespace,
			Code:      result.Code,
			Log:       result.Log,
		}
	}
	logger.Debug("awaiting inclusion", "state", stateSubmitted)

	latest, err := b.transport.Block(ctx, nil)
	if err != nil {
		return nil, err
	}
	targetHeight := latest.Height

	attempts := 0
	for {
		reachedHeight, err := b.waitForHeight(ctx, targetHeight)
		if err != nil {
			return nil, err
		}

		included, lookupErr := b.transport.TxByHash(ctx, hash)
		if lookupErr == nil {
			return b.settle(logger, hash, included)
		}

		attempts++
		if attempts > b.maxInclusionRetries {
			logger.Error("gave up waiting for inclusion", "state", stateInclusionUnknown, "attempts", attempts, "error", lookupErr)
			return nil, &InclusionError{
				Attempts: attempts,
				Hash:     hash,
				Cause:    lookupErr,
			}
		}

		logger.Debug("transaction not yet included", "attempt", attempts, "max_retries", b.maxInclusionRetries, "height", reachedHeight, "error", lookupErr)
		targetHeight = reachedHeight + 1
	}
}

// settle classifies an included transaction by its execution code.
func (b *broadcaster) settle(logger *log.Logger, hash []byte, included *rpc.TxResult) (*rpc.TxResult, error) {
	logger = logger.With("height", included.Height, "gas_wanted", included.GasWanted, "gas_used", included.GasUsed)

	if !included.IsSuccess() {
		logger.Error("transaction included but failed", "state", stateFailed, "code", included.Code, "codespace", included.Codespace, "log", included.Log)
		return nil, &TxFailedError{
			Hash:      hash,
			Codespace: included.Codespace,
			Code:      included.Code,
			Log:       included.Log,
		}
	}

	logger.Info("✅ transaction included", "state", stateIncluded)
	return included, nil
}

// waitForHeight polls the latest block until it reaches target, returning the height reached.
func (b *broadcaster) waitForHeight(ctx context.Context, target int64) (int64, error) {
	waitCtx := ctx
	if b.heightWaitTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeoutCause(ctx, b.heightWaitTimeout, ErrHeightWaitTimeout)
		defer cancel()
	}

	for {
		block, err := b.transport.Block(waitCtx, nil)
		if err != nil {
			if cause := context.Cause(waitCtx); cause != nil {
				return 0, b.waitError(cause, target)
			}
			return 0, err
		}

		if block.Height >= target {
			return block.Height, nil
		}

		select {
		case <-waitCtx.Done():
			return 0, b.waitError(context.Cause(waitCtx), target)
		case <-time.After(b.pollInterval):
		}
	}
}

func (b *broadcaster) waitError(cause error, target int64) error {
	if errors.Is(cause, ErrHeightWaitTimeout) {
		return errorsmod.Wrapf(ErrHeightWaitTimeout, "height %d not reached within %s", target, b.heightWaitTimeout)
	}
	return cause
}
