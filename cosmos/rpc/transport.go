package rpc

import (
	"context"
	"time"

	"github.com/cosmos/gogoproto/proto"
)

// Transport is the node capability the transaction client needs. Implementations exist for
// CometBFT JSON-RPC and Cosmos SDK gRPC.
type Transport interface {
	// ChainID returns the chain id that sign documents are bound to.
	ChainID() string

	// BroadcastTxSync submits raw tx bytes and returns once CheckTx has run.
	BroadcastTxSync(ctx context.Context, txBytes []byte) (*BroadcastResult, error)

	// TxByHash looks up an included transaction. Implementations return an error when the
	// transaction is not (yet) known to the node.
	TxByHash(ctx context.Context, hash []byte) (*TxResult, error)

	// Block fetches the block at the given height, or the latest block if height is nil.
	Block(ctx context.Context, height *int64) (*Block, error)

	// Query performs a unary ABCI/gRPC query. Application level failures are returned as a
	// *QueryError, everything else is a transport error.
	Query(ctx context.Context, path string, req, resp proto.Message) error
}

// BroadcastResult is the outcome of CheckTx for a submitted transaction.
type BroadcastResult struct {
	Hash      []byte
	Code      uint32
	Codespace string
	Log       string
}

// TxResult is the outcome of executing an included transaction.
type TxResult struct {
	Hash      []byte
	Height    int64
	Code      uint32
	Codespace string
	Log       string

	// Data is the raw, protobuf encoded TxMsgData
	Data []byte

	GasWanted int64
	GasUsed   int64
}

// IsSuccess reports whether the transaction executed successfully.
func (r *TxResult) IsSuccess() bool {
	return r.Code == 0
}

type Block struct {
	Height int64
	Hash   []byte
	Time   time.Time
}
