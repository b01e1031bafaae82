package tx

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"

	"github.com/tessellated-io/txclient/cosmos/envelope"
)

// unsignedTx is a transaction body and signer, waiting for a fee.
type unsignedTx struct {
	body      *txtypes.TxBody
	bodyBytes []byte

	signerInfo *txtypes.SignerInfo
	metadata   *SigningMetadata
}

// draftAuthInfo carries the placeholder fee used during estimation.
type draftAuthInfo struct {
	authInfo *txtypes.AuthInfo
}

// finalAuthInfo carries the fee that will be broadcast.
type finalAuthInfo struct {
	authInfo *txtypes.AuthInfo
}

// assembleTx builds the body and single signer info for msgs. It does no I/O.
func assembleTx(msgs []sdk.Msg, memo string, publicKey cryptotypes.PubKey, metadata *SigningMetadata) (*unsignedTx, error) {
	wrappedMsgs, err := envelope.WrapAll(msgs)
	if err != nil {
		return nil, err
	}

	body := &txtypes.TxBody{
		Messages:                    wrappedMsgs,
		Memo:                        memo,
		TimeoutHeight:               0,
		ExtensionOptions:            []*codectypes.Any{},
		NonCriticalExtensionOptions: []*codectypes.Any{},
	}
	bodyBytes, err := body.Marshal()
	if err != nil {
		return nil, err
	}

	wrappedPublicKey, err := envelope.Wrap(publicKey)
	if err != nil {
		return nil, err
	}

	signerInfo := &txtypes.SignerInfo{
		PublicKey: wrappedPublicKey,
		ModeInfo: &txtypes.ModeInfo{
			Sum: &txtypes.ModeInfo_Single_{
				Single: &txtypes.ModeInfo_Single{
					Mode: signing.SignMode_SIGN_MODE_DIRECT,
				},
			},
		},
		Sequence: metadata.Sequence(),
	}

	return &unsignedTx{
		body:       body,
		bodyBytes:  bodyBytes,
		signerInfo: signerInfo,
		metadata:   metadata,
	}, nil
}

func (u *unsignedTx) draft(fee txtypes.Fee) draftAuthInfo {
	return draftAuthInfo{authInfo: u.authInfo(fee)}
}

func (u *unsignedTx) finalize(fee txtypes.Fee) finalAuthInfo {
	return finalAuthInfo{authInfo: u.authInfo(fee)}
}

func (u *unsignedTx) authInfo(fee txtypes.Fee) *txtypes.AuthInfo {
	return &txtypes.AuthInfo{
		SignerInfos: []*txtypes.SignerInfo{u.signerInfo},
		Fee:         &fee,
	}
}
