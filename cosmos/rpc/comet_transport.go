package rpc

import (
	"context"
	"fmt"
	"time"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	libclient "github.com/cometbft/cometbft/rpc/jsonrpc/client"
	"github.com/cosmos/gogoproto/proto"

	"github.com/tessellated-io/txclient/log"
)

// cometTransport talks to a CometBFT node over JSON-RPC.
type cometTransport struct {
	client  *rpchttp.HTTP
	chainID string

	logger *log.Logger
}

// Ensure that cometTransport implements Transport
var _ Transport = (*cometTransport)(nil)

// NewCometTransport connects to a CometBFT RPC endpoint. If chainID is empty, it is read from the
// node's status.
func NewCometTransport(ctx context.Context, endpoint, chainID string, timeout time.Duration, logger *log.Logger) (Transport, error) {
	httpClient, err := libclient.DefaultHTTPClient(endpoint)
	if err != nil {
		return nil, err
	}
	httpClient.Timeout = timeout

	client, err := rpchttp.NewWithClient(endpoint, "/websocket", httpClient)
	if err != nil {
		return nil, err
	}

	if chainID == "" {
		status, err := client.Status(ctx)
		if err != nil {
			logger.Error("unable to fetch node status", "rpc_url", endpoint, "error", err)
			return nil, err
		}
		chainID = status.NodeInfo.Network
	}

	return &cometTransport{
		client:  client,
		chainID: chainID,
		logger:  logger.ApplyPrefix("[comet]"),
	}, nil
}

func (t *cometTransport) ChainID() string {
	return t.chainID
}

func (t *cometTransport) BroadcastTxSync(ctx context.Context, txBytes []byte) (*BroadcastResult, error) {
	res, err := t.client.BroadcastTxSync(ctx, txBytes)
	if err != nil {
		return nil, err
	}

	return &BroadcastResult{
		Hash:      res.Hash,
		Code:      res.Code,
		Codespace: res.Codespace,
		Log:       res.Log,
	}, nil
}

func (t *cometTransport) TxByHash(ctx context.Context, hash []byte) (*TxResult, error) {
	res, err := t.client.Tx(ctx, hash, false)
	if err != nil {
		return nil, err
	}

	return &TxResult{
		Hash:      res.Hash,
		Height:    res.Height,
		Code:      res.TxResult.Code,
		Codespace: res.TxResult.Codespace,
		Log:       res.TxResult.Log,
		Data:      res.TxResult.Data,
		GasWanted: res.TxResult.GasWanted,
		GasUsed:   res.TxResult.GasUsed,
	}, nil
}

func (t *cometTransport) Block(ctx context.Context, height *int64) (*Block, error) {
	res, err := t.client.Block(ctx, height)
	if err != nil {
		return nil, err
	}
	if res.Block == nil {
		return nil, fmt.Errorf("node returned no block for height %v", height)
	}

	return &Block{
		Height: res.Block.Header.Height,
		Hash:   res.BlockID.Hash,
		Time:   res.Block.Header.Time,
	}, nil
}

func (t *cometTransport) Query(ctx context.Context, path string, req, resp proto.Message) error {
	data, err := proto.Marshal(req)
	if err != nil {
		return err
	}

	res, err := t.client.ABCIQuery(ctx, path, data)
	if err != nil {
		return err
	}

	if res.Response.Code != 0 {
		return &QueryError{
			Path:      path,
			Code:      res.Response.Code,
			Codespace: res.Response.Codespace,
			Log:       res.Response.Log,
		}
	}

	// A response whose fields are all defaults encodes to no bytes and decodes as such.
	t.logger.Debug("abci query complete", "path", path, "height", res.Response.Height, "response_bytes", len(res.Response.Value))

	return proto.Unmarshal(res.Response.Value, resp)
}
