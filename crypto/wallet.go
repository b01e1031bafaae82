package crypto

import (
	"fmt"

	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
)

// Wallet signs transactions for a single account.
type Wallet interface {
	// Address is the bech32 account address.
	Address() string
	PublicKey() cryptotypes.PubKey
	Sign(bytesToSign []byte) ([]byte, error)
}

// Commonly used SLIP-44 coin types.
const (
	CosmosCoinType uint32 = 118
	TerraCoinType  uint32 = 330
)

// NewWalletForSlip44 derives a wallet from a mnemonic for the given SLIP-44 coin type.
func NewWalletForSlip44(slip44 uint32, mnemonic, prefix string) (Wallet, error) {
	if slip44 == 60 {
		return nil, fmt.Errorf("coin type 60 uses eth_secp256k1 keys, which are not supported")
	}

	return NewKeyPairFromMnemonic(mnemonic, prefix, slip44)
}
