package main

import (
	"context"
	"fmt"

	"github.com/tessellated-io/txclient/config"
	"github.com/tessellated-io/txclient/cosmos/rpc"
	"github.com/tessellated-io/txclient/cosmos/tx"
	"github.com/tessellated-io/txclient/crypto"
	"github.com/tessellated-io/txclient/log"
)

// loadConfig reads the configuration and builds a logger at its level.
func loadConfig() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log.NewLogger(cfg.LogLevel), nil
}

// newTransport prefers gRPC when an endpoint is configured and wraps the result in retries.
func newTransport(ctx context.Context, cfg *config.Config, logger *log.Logger) (rpc.Transport, error) {
	var (
		transport rpc.Transport
		err       error
	)
	if cfg.GrpcEndpoint != "" {
		transport, err = rpc.NewGrpcTransport(ctx, cfg.GrpcEndpoint, cfg.ChainID, logger)
	} else {
		transport, err = rpc.NewCometTransport(ctx, cfg.RpcEndpoint, cfg.ChainID, cfg.RpcTimeout, logger)
	}
	if err != nil {
		return nil, err
	}

	if cfg.ChainID != "" && transport.ChainID() != cfg.ChainID {
		return nil, fmt.Errorf("configured chain id %s does not match node chain id %s", cfg.ChainID, transport.ChainID())
	}

	return rpc.NewRetryableTransport(cfg.TransportRetryAttempts, cfg.TransportRetryDelay, transport, logger), nil
}

func newTxClient(ctx context.Context, cfg *config.Config, logger *log.Logger) (*tx.TxClient, error) {
	mnemonic, err := cfg.ReadMnemonic()
	if err != nil {
		return nil, err
	}

	wallet, err := crypto.NewWalletForSlip44(cfg.CoinType, mnemonic, cfg.AddressPrefix)
	if err != nil {
		return nil, err
	}

	gasPolicy, err := tx.NewLinearGasPolicy(cfg.MaxGas, cfg.GasPrice, cfg.GasMultiplier)
	if err != nil {
		return nil, err
	}

	transport, err := newTransport(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return tx.NewTxClient(
		wallet,
		transport,
		gasPolicy,
		logger,
		tx.WithPollInterval(cfg.PollInterval),
		tx.WithMaxInclusionRetries(cfg.MaxInclusionRetries),
		tx.WithHeightWaitTimeout(cfg.HeightWaitTimeout),
	), nil
}
