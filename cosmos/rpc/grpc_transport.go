package rpc

import (
	"context"
	"errors"
	"strings"

	"github.com/cosmos/gogoproto/proto"
	googlegrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/client/grpc/cmtservice"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"

	"github.com/tessellated-io/txclient/coding"
	"github.com/tessellated-io/txclient/grpc"
	"github.com/tessellated-io/txclient/log"
)

// grpcTransport talks to the Cosmos SDK gRPC services of a node.
type grpcTransport struct {
	conn googlegrpc.ClientConnInterface

	txClient    txtypes.ServiceClient
	cometClient cmtservice.ServiceClient

	chainID string

	logger *log.Logger
}

// Ensure that grpcTransport implements Transport
var _ Transport = (*grpcTransport)(nil)

// NewGrpcTransport dials a node's gRPC endpoint. If chainID is empty, it is read from the node info.
func NewGrpcTransport(ctx context.Context, nodeGrpcUri, chainID string, logger *log.Logger) (Transport, error) {
	conn, err := grpc.GetGrpcConnection(nodeGrpcUri)
	if err != nil {
		logger.Error("unable to connect to gRPC", "grpc_url", nodeGrpcUri, "error", err)
		return nil, err
	}

	transport, err := newGrpcTransport(ctx, conn, chainID, logger)
	if err != nil {
		return nil, err
	}
	return transport, nil
}

func newGrpcTransport(ctx context.Context, conn googlegrpc.ClientConnInterface, chainID string, logger *log.Logger) (*grpcTransport, error) {
	transport := &grpcTransport{
		conn:        conn,
		txClient:    txtypes.NewServiceClient(conn),
		cometClient: cmtservice.NewServiceClient(conn),
		chainID:     chainID,
		logger:      logger.ApplyPrefix("[grpc]"),
	}

	if transport.chainID == "" {
		nodeInfo, err := transport.cometClient.GetNodeInfo(ctx, &cmtservice.GetNodeInfoRequest{})
		if err != nil {
			logger.Error("unable to fetch node info", "error", err)
			return nil, err
		}
		transport.chainID = nodeInfo.GetDefaultNodeInfo().GetNetwork()
	}

	return transport, nil
}

func (t *grpcTransport) ChainID() string {
	return t.chainID
}

func (t *grpcTransport) BroadcastTxSync(ctx context.Context, txBytes []byte) (*BroadcastResult, error) {
	request := &txtypes.BroadcastTxRequest{
		TxBytes: txBytes,
		Mode:    txtypes.BroadcastMode_BROADCAST_MODE_SYNC,
	}

	response, err := t.txClient.BroadcastTx(ctx, request)
	if err != nil {
		return nil, err
	}

	if response.GetTxResponse() == nil {
		return nil, errors.New("node returned no broadcast response")
	}

	hash, err := coding.DecodeHex(response.TxResponse.TxHash)
	if err != nil {
		return nil, err
	}

	return &BroadcastResult{
		Hash:      hash,
		Code:      response.TxResponse.Code,
		Codespace: response.TxResponse.Codespace,
		Log:       response.TxResponse.RawLog,
	}, nil
}

func (t *grpcTransport) TxByHash(ctx context.Context, hash []byte) (*TxResult, error) {
	request := &txtypes.GetTxRequest{
		Hash: coding.FormatTxHash(hash),
	}

	response, err := t.txClient.GetTx(ctx, request)
	if err != nil {
		return nil, err
	}

	txResponse := response.GetTxResponse()
	if txResponse == nil {
		return nil, errors.New("node returned no tx response")
	}
	data, err := coding.DecodeHex(txResponse.Data)
	if err != nil {
		return nil, err
	}

	return &TxResult{
		Hash:      hash,
		Height:    txResponse.Height,
		Code:      txResponse.Code,
		Codespace: txResponse.Codespace,
		Log:       txResponse.RawLog,
		Data:      data,
		GasWanted: txResponse.GasWanted,
		GasUsed:   txResponse.GasUsed,
	}, nil
}

func (t *grpcTransport) Block(ctx context.Context, height *int64) (*Block, error) {
	if height == nil {
		response, err := t.cometClient.GetLatestBlock(ctx, &cmtservice.GetLatestBlockRequest{})
		if err != nil {
			return nil, err
		}
		return toBlock(response.GetBlockId().GetHash(), response.GetSdkBlock())
	}

	response, err := t.cometClient.GetBlockByHeight(ctx, &cmtservice.GetBlockByHeightRequest{Height: *height})
	if err != nil {
		return nil, err
	}
	return toBlock(response.GetBlockId().GetHash(), response.GetSdkBlock())
}

func toBlock(hash []byte, block *cmtservice.Block) (*Block, error) {
	if block == nil {
		return nil, errors.New("node returned no block")
	}

	return &Block{
		Height: block.Header.Height,
		Hash:   hash,
		Time:   block.Header.Time,
	}, nil
}

func (t *grpcTransport) Query(ctx context.Context, path string, req, resp proto.Message) error {
	err := t.conn.Invoke(ctx, path, req, resp)
	if err == nil {
		t.logger.Debug("grpc query complete", "path", path)
		return nil
	}

	return grpcErrorToQueryError(path, err)
}

// grpcErrorToQueryError recovers the SDK error a node reported over gRPC. The SDK folds its
// registered errors into gRPC status codes, so only the codes it produces are mapped back.
func grpcErrorToQueryError(path string, err error) error {
	grpcStatus, ok := status.FromError(err)
	if !ok {
		return err
	}

	var sdkErr interface {
		ABCICode() uint32
		Codespace() string
	}
	switch grpcStatus.Code() {
	case codes.NotFound:
		sdkErr = sdkerrors.ErrKeyNotFound
	case codes.InvalidArgument:
		sdkErr = sdkerrors.ErrInvalidRequest
	case codes.Unimplemented:
		sdkErr = sdkerrors.ErrUnknownRequest
	default:
		return err
	}

	return &QueryError{
		Path:      path,
		Code:      sdkErr.ABCICode(),
		Codespace: sdkErr.Codespace(),
		Log:       strings.TrimSpace(grpcStatus.Message()),
	}
}
