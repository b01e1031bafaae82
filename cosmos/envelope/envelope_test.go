package envelope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/tessellated-io/txclient/cosmos/envelope"
)

func TestTypeURL(t *testing.T) {
	require.Equal(t, "/cosmos.bank.v1beta1.MsgSend", envelope.TypeURL(&banktypes.MsgSend{}))
	require.Equal(t, "/cosmos.auth.v1beta1.BaseAccount", envelope.TypeURL(&authtypes.BaseAccount{}))
}

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	account := &authtypes.BaseAccount{
		Address:       "cosmos1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5lzv7xu",
		AccountNumber: 42,
		Sequence:      7,
	}

	wrapped, err := envelope.Wrap(account)
	require.NoError(t, err)
	require.Equal(t, "/cosmos.auth.v1beta1.BaseAccount", wrapped.TypeUrl)

	unwrapped, err := envelope.Unwrap[authtypes.BaseAccount](wrapped)
	require.NoError(t, err)
	require.Equal(t, account.Address, unwrapped.Address)
	require.Equal(t, uint64(42), unwrapped.AccountNumber)
	require.Equal(t, uint64(7), unwrapped.Sequence)
}

func TestUnwrap_TypeMismatch(t *testing.T) {
	wrapped, err := envelope.Wrap(&banktypes.MsgSendResponse{})
	require.NoError(t, err)

	_, err = envelope.Unwrap[banktypes.MsgMultiSendResponse](wrapped)
	require.ErrorIs(t, err, envelope.ErrTypeMismatch)

	var mismatch *envelope.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "/cosmos.bank.v1beta1.MsgMultiSendResponse", mismatch.Expected)
	require.Equal(t, "/cosmos.bank.v1beta1.MsgSendResponse", mismatch.Actual)
}

func TestUnwrap_Empty(t *testing.T) {
	_, err := envelope.Unwrap[banktypes.MsgSendResponse](nil)
	require.ErrorIs(t, err, envelope.ErrEmptyEnvelope)
}

func TestUnwrap_MalformedValue(t *testing.T) {
	malformed := &codectypes.Any{
		TypeUrl: "/cosmos.auth.v1beta1.BaseAccount",
		Value:   []byte{0xff, 0xff, 0xff},
	}

	_, err := envelope.Unwrap[authtypes.BaseAccount](malformed)
	require.ErrorIs(t, err, envelope.ErrDecode)
}

func TestWrapAll_PreservesOrder(t *testing.T) {
	msgs := []sdk.Msg{
		&banktypes.MsgSend{FromAddress: "a"},
		&banktypes.MsgMultiSend{},
	}

	wrapped, err := envelope.WrapAll(msgs)
	require.NoError(t, err)
	require.Len(t, wrapped, 2)
	require.Equal(t, "/cosmos.bank.v1beta1.MsgSend", wrapped[0].TypeUrl)
	require.Equal(t, "/cosmos.bank.v1beta1.MsgMultiSend", wrapped[1].TypeUrl)
}
