package tx

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tessellated-io/txclient/arrays"
	"github.com/tessellated-io/txclient/coding"
	"github.com/tessellated-io/txclient/cosmos/envelope"
	"github.com/tessellated-io/txclient/cosmos/rpc"
	"github.com/tessellated-io/txclient/crypto"
	"github.com/tessellated-io/txclient/log"
)

// TxClient submits transactions for a single wallet and waits for them to be included.
//
// A TxClient holds no mutable state and may be shared between goroutines. Concurrent
// submissions from the same wallet will race for the account sequence; callers that need
// ordering must serialize them.
type TxClient struct {
	wallet    crypto.Wallet
	transport rpc.Transport
	gasPolicy GasPolicy

	signer      *signer
	broadcaster *broadcaster

	logger *log.Logger
}

func NewTxClient(
	wallet crypto.Wallet,
	transport rpc.Transport,
	gasPolicy GasPolicy,
	logger *log.Logger,
	opts ...Option,
) *TxClient {
	logger = logger.ApplyPrefix("[txclient]")

	client := &TxClient{
		wallet:    wallet,
		transport: transport,
		gasPolicy: gasPolicy,

		signer: &signer{
			wallet:  wallet,
			chainID: transport.ChainID(),
		},
		broadcaster: &broadcaster{
			transport:           transport,
			pollInterval:        DefaultPollInterval,
			maxInclusionRetries: DefaultMaxInclusionRetries,
			logger:              logger.ApplyPrefix("[broadcast]"),
		},

		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *TxClient) Wallet() crypto.Wallet {
	return c.wallet
}

func (c *TxClient) Transport() rpc.Transport {
	return c.transport
}

// BroadcastTxCommit signs msgs with the next account sequence, broadcasts them in a single
// transaction and waits until the transaction is included in a block.
//
// With simulate set, gas is estimated by simulating the transaction. Otherwise the gas policy's
// ceiling is used.
func (c *TxClient) BroadcastTxCommit(ctx context.Context, msgs []sdk.Msg, memo string, simulate bool) (*rpc.TxResult, error) {
	logger := c.logger.With("signer", c.wallet.Address(), "memo", memo, "msg_types", arrays.Map(msgs, sdk.MsgTypeURL))

	metadata, err := c.signingMetadata(ctx)
	if err != nil {
		return nil, err
	}

	unsigned, err := assembleTx(msgs, memo, c.wallet.PublicKey(), metadata)
	if err != nil {
		return nil, err
	}

	_, gasInfo, err := c.estimateGas(ctx, unsigned, simulate)
	if err != nil {
		logger.Error("failed to estimate gas", "simulate", simulate, "error", err)
		return nil, err
	}
	logger.Info("estimated gas", "simulate", simulate, "gas_used", gasInfo.GasUsed, "gas_wanted", gasInfo.GasWanted)

	fee, err := c.gasPolicy.FeeFor(gasInfo.GasUsed)
	if err != nil {
		return nil, err
	}

	signed, err := c.signer.signFinal(unsigned, unsigned.finalize(fee))
	if err != nil {
		return nil, err
	}
	logger.Info("signed transaction",
		"tx_hash", coding.FormatTxHash(signed.Hash()),
		"fee", fee.Amount.String(),
		"gas_limit", fee.GasLimit,
		"sequence", metadata.Sequence(),
		"account_number", metadata.AccountNumber(),
	)
	logger.Debug("transaction bytes", "tx_bytes", coding.PayloadFingerprint(signed.Bytes()), "size", len(signed.Bytes()))

	return c.broadcaster.broadcastAndConfirm(ctx, signed)
}

// SimulateTx estimates the gas msgs would use, without broadcasting anything.
func (c *TxClient) SimulateTx(ctx context.Context, msgs []sdk.Msg, memo string) (*Estimate, error) {
	metadata, err := c.signingMetadata(ctx)
	if err != nil {
		return nil, err
	}

	unsigned, err := assembleTx(msgs, memo, c.wallet.PublicKey(), metadata)
	if err != nil {
		return nil, err
	}

	draft, gasInfo, err := c.estimateGas(ctx, unsigned, true)
	if err != nil {
		return nil, err
	}

	return &Estimate{
		Body:     unsigned.body,
		AuthInfo: draft.authInfo,
		GasInfo:  gasInfo,
	}, nil
}

// BroadcastBatches splits msgs into transactions of at most batchSize messages and commits them
// one after another. It stops at the first failure, returning the results committed so far.
func (c *TxClient) BroadcastBatches(ctx context.Context, msgs []sdk.Msg, batchSize int, memo string, simulate bool) ([]*rpc.TxResult, error) {
	if batchSize <= 0 {
		return nil, errorsmod.Wrapf(ErrInvalidBatchSize, "%d", batchSize)
	}

	batches := arrays.Batch(msgs, batchSize)
	results := make([]*rpc.TxResult, 0, len(batches))
	for i, batch := range batches {
		result, err := c.BroadcastTxCommit(ctx, batch, memo, simulate)
		if err != nil {
			c.logger.Error("batch failed", "batch", i+1, "batches", len(batches), "error", err)
			return results, errorsmod.Wrapf(err, "batch %d of %d", i+1, len(batches))
		}
		results = append(results, result)
	}

	return results, nil
}

// Tx commits a single message and decodes the chain's typed response to it.
//
// Go doesn't support type parameters on methods, so this takes the client as an argument.
func Tx[T any, PT envelope.Message[T]](ctx context.Context, client *TxClient, msg sdk.Msg, memo string, simulate bool) ([]byte, PT, error) {
	result, err := client.BroadcastTxCommit(ctx, []sdk.Msg{msg}, memo, simulate)
	if err != nil {
		return nil, nil, err
	}

	response, err := DecodeMsgResponse[T, PT](result.Data)
	if err != nil {
		return result.Hash, nil, err
	}

	return result.Hash, response, nil
}
