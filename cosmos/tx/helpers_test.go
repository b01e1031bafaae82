package tx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	comettypes "github.com/cometbft/cometbft/types"
	"github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/tessellated-io/txclient/cosmos/envelope"
	"github.com/tessellated-io/txclient/cosmos/rpc"
	"github.com/tessellated-io/txclient/cosmos/rpc/mock"
	"github.com/tessellated-io/txclient/cosmos/tx"
	"github.com/tessellated-io/txclient/crypto"
	"github.com/tessellated-io/txclient/log"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testChainID  = "testchain-1"

	accountPath  = "/cosmos.auth.v1beta1.Query/Account"
	simulatePath = "/cosmos.tx.v1beta1.Service/Simulate"

	maxGas = uint64(200_000)
)

var errTxNotFound = errors.New("tx not found")

type fixture struct {
	t         *testing.T
	transport *mock.MockTransport
	wallet    *crypto.KeyPair
	policy    *tx.LinearGasPolicy
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	wallet, err := crypto.NewKeyPairFromMnemonic(testMnemonic, "cosmos", crypto.CosmosCoinType)
	require.NoError(t, err)

	policy, err := tx.NewLinearGasPolicy(maxGas, "0.025uatom", 1.5)
	require.NoError(t, err)

	transport := mock.NewMockTransport(gomock.NewController(t))
	transport.EXPECT().ChainID().Return(testChainID).AnyTimes()

	return &fixture{
		t:         t,
		transport: transport,
		wallet:    wallet,
		policy:    policy,
	}
}

func (f *fixture) client(opts ...tx.Option) *tx.TxClient {
	opts = append([]tx.Option{tx.WithPollInterval(time.Millisecond)}, opts...)
	return tx.NewTxClient(f.wallet, f.transport, f.policy, log.Discard(), opts...)
}

func (f *fixture) sendMsg() *banktypes.MsgSend {
	return &banktypes.MsgSend{
		FromAddress: f.wallet.Address(),
		ToAddress:   "cosmos1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5lzv7xu",
		Amount:      sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000)),
	}
}

func (f *fixture) expectAccount(accountNumber, sequence uint64) *gomock.Call {
	return f.transport.EXPECT().Query(gomock.Any(), accountPath, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req, resp proto.Message) error {
			require.Equal(f.t, f.wallet.Address(), req.(*authtypes.QueryAccountRequest).Address)

			wrapped, err := envelope.Wrap(&authtypes.BaseAccount{
				Address:       f.wallet.Address(),
				AccountNumber: accountNumber,
				Sequence:      sequence,
			})
			if err != nil {
				return err
			}
			resp.(*authtypes.QueryAccountResponse).Account = wrapped
			return nil
		})
}

func (f *fixture) expectAccountNotFound() *gomock.Call {
	return f.transport.EXPECT().Query(gomock.Any(), accountPath, gomock.Any(), gomock.Any()).
		Return(&rpc.QueryError{Path: accountPath, Code: 22, Codespace: "sdk", Log: "key not found"})
}

// expectBroadcast accepts a broadcast, echoing the CometBFT hash of the bytes, and records them.
func (f *fixture) expectBroadcast(captured *[]byte) *gomock.Call {
	return f.transport.EXPECT().BroadcastTxSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txBytes []byte) (*rpc.BroadcastResult, error) {
			if captured != nil {
				*captured = txBytes
			}
			return &rpc.BroadcastResult{Hash: comettypes.Tx(txBytes).Hash()}, nil
		})
}

// expectAdvancingChain produces one new block per height poll.
func (f *fixture) expectAdvancingChain() {
	height := int64(100)
	f.transport.EXPECT().Block(gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ *int64) (*rpc.Block, error) {
			height++
			return &rpc.Block{Height: height}, nil
		}).AnyTimes()
}

// expectLookups fails the pre-check and the first `failures` inclusion lookups, then returns result.
func (f *fixture) expectLookups(failures int, result func(hash []byte) *rpc.TxResult) *int {
	lookups := 0
	f.transport.EXPECT().TxByHash(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hash []byte) (*rpc.TxResult, error) {
			lookups++
			if lookups <= failures+1 {
				return nil, errTxNotFound
			}
			return result(hash), nil
		}).AnyTimes()
	return &lookups
}

func successResult(t *testing.T, responses ...proto.Message) func(hash []byte) *rpc.TxResult {
	data := msgData(t, responses...)
	return func(hash []byte) *rpc.TxResult {
		return &rpc.TxResult{
			Hash:      hash,
			Height:    102,
			Data:      data,
			GasWanted: 200_000,
			GasUsed:   81_234,
		}
	}
}

func msgData(t *testing.T, responses ...proto.Message) []byte {
	t.Helper()

	wrapped := make([]*codectypes.Any, 0, len(responses))
	for _, response := range responses {
		wrappedResponse, err := envelope.Wrap(response)
		require.NoError(t, err)
		wrapped = append(wrapped, wrappedResponse)
	}

	data, err := (&sdk.TxMsgData{MsgResponses: wrapped}).Marshal()
	require.NoError(t, err)
	return data
}

type decodedTx struct {
	raw      *txtypes.TxRaw
	body     *txtypes.TxBody
	authInfo *txtypes.AuthInfo
}

func decodeTx(t *testing.T, txBytes []byte) *decodedTx {
	t.Helper()

	raw := &txtypes.TxRaw{}
	require.NoError(t, raw.Unmarshal(txBytes))

	body := &txtypes.TxBody{}
	require.NoError(t, body.Unmarshal(raw.BodyBytes))

	authInfo := &txtypes.AuthInfo{}
	require.NoError(t, authInfo.Unmarshal(raw.AuthInfoBytes))

	return &decodedTx{raw: raw, body: body, authInfo: authInfo}
}

// verifySignature checks the single signature against the SIGN_MODE_DIRECT sign doc.
func (f *fixture) verifySignature(decoded *decodedTx, accountNumber uint64) {
	f.t.Helper()

	signDoc := &txtypes.SignDoc{
		BodyBytes:     decoded.raw.BodyBytes,
		AuthInfoBytes: decoded.raw.AuthInfoBytes,
		ChainId:       testChainID,
		AccountNumber: accountNumber,
	}
	signDocBytes, err := signDoc.Marshal()
	require.NoError(f.t, err)

	require.Len(f.t, decoded.raw.Signatures, 1)
	require.True(f.t, f.wallet.PublicKey().VerifySignature(signDocBytes, decoded.raw.Signatures[0]))
}
