package tx

import (
	comettypes "github.com/cometbft/cometbft/types"

	txtypes "github.com/cosmos/cosmos-sdk/types/tx"

	"github.com/tessellated-io/txclient/crypto"
)

// simulationSignature commits to a draft auth info. It is only ever sent to the simulator.
type simulationSignature []byte

// finalSignature commits to the auth info with the real fee.
type finalSignature []byte

// SignedTx is a transaction ready to broadcast.
type SignedTx struct {
	bytes []byte
	hash  []byte
	fee   txtypes.Fee
}

// Bytes returns the protobuf encoded TxRaw.
func (s *SignedTx) Bytes() []byte {
	return s.bytes
}

// Hash returns the SHA-256 hash CometBFT indexes the transaction under.
func (s *SignedTx) Hash() []byte {
	return s.hash
}

func (s *SignedTx) Fee() txtypes.Fee {
	return s.fee
}

// signer produces SIGN_MODE_DIRECT signatures bound to a chain.
type signer struct {
	wallet  crypto.Wallet
	chainID string
}

// signForSimulation returns the encoded transaction to simulate.
func (s *signer) signForSimulation(unsigned *unsignedTx, draft draftAuthInfo) ([]byte, error) {
	authInfoBytes, err := draft.authInfo.Marshal()
	if err != nil {
		return nil, err
	}

	signature, err := s.sign(unsigned, authInfoBytes)
	if err != nil {
		return nil, err
	}

	return encodeTxRaw(unsigned.bodyBytes, authInfoBytes, simulationSignature(signature))
}

// signFinal signs the transaction that will be broadcast.
func (s *signer) signFinal(unsigned *unsignedTx, final finalAuthInfo) (*SignedTx, error) {
	authInfoBytes, err := final.authInfo.Marshal()
	if err != nil {
		return nil, err
	}

	signature, err := s.sign(unsigned, authInfoBytes)
	if err != nil {
		return nil, err
	}

	return newSignedTx(unsigned.bodyBytes, authInfoBytes, finalSignature(signature), *final.authInfo.Fee)
}

func (s *signer) sign(unsigned *unsignedTx, authInfoBytes []byte) ([]byte, error) {
	signDoc := &txtypes.SignDoc{
		BodyBytes:     unsigned.bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainId:       s.chainID,
		AccountNumber: unsigned.metadata.AccountNumber(),
	}

	signDocBytes, err := signDoc.Marshal()
	if err != nil {
		return nil, err
	}

	return s.wallet.Sign(signDocBytes)
}

func newSignedTx(bodyBytes, authInfoBytes []byte, signature finalSignature, fee txtypes.Fee) (*SignedTx, error) {
	txBytes, err := encodeTxRaw(bodyBytes, authInfoBytes, signature)
	if err != nil {
		return nil, err
	}

	return &SignedTx{
		bytes: txBytes,
		hash:  comettypes.Tx(txBytes).Hash(),
		fee:   fee,
	}, nil
}

func encodeTxRaw(bodyBytes, authInfoBytes []byte, signature []byte) ([]byte, error) {
	txRaw := &txtypes.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{signature},
	}
	return txRaw.Marshal()
}
