package tx

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tessellated-io/txclient/cosmos/envelope"
)

// DecodeMsgResponse extracts the response to the last message of a transaction from the
// transaction's result data.
func DecodeMsgResponse[T any, PT envelope.Message[T]](data []byte) (PT, error) {
	var msgData sdk.TxMsgData
	if err := msgData.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTxMsgDataDecode, err)
	}

	if len(msgData.MsgResponses) == 0 {
		return nil, errorsmod.Wrap(ErrInvariantViolation, "successful transaction carried no message responses")
	}

	last := msgData.MsgResponses[len(msgData.MsgResponses)-1]
	response, err := envelope.Unwrap[T, PT](last)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMsgResponseDecode, err)
	}

	return response, nil
}
