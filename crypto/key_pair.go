package crypto

import (
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/tessellated-io/txclient/coding"
)

// KeyPair is an in-memory secp256k1 wallet.
type KeyPair struct {
	Public  cryptotypes.PubKey
	Private cryptotypes.PrivKey

	address string
}

var _ Wallet = (*KeyPair)(nil)

// NewKeyPairFromMnemonic derives the first key (account 0, index 0) for the coin type.
func NewKeyPairFromMnemonic(mnemonic, prefix string, coinType uint32) (*KeyPair, error) {
	bip44Path := hd.CreateHDPath(coinType, 0, 0).String()

	algo := hd.Secp256k1
	derivedPriv, err := algo.Derive()(strings.TrimSpace(mnemonic), keyring.DefaultBIP39Passphrase, bip44Path)
	if err != nil {
		return nil, fmt.Errorf("deriving key at %s: %w", bip44Path, err)
	}

	return newKeyPair(algo.Generate()(derivedPriv), prefix)
}

// NewKeyPairFromPrivateKey loads a raw, hex encoded secp256k1 private key.
func NewKeyPairFromPrivateKey(privateKeyHex, prefix string) (*KeyPair, error) {
	keyBytes, err := coding.DecodeHex(strings.TrimSpace(privateKeyHex))
	if err != nil {
		return nil, fmt.Errorf("decoding private key: %w", err)
	}
	if len(keyBytes) != secp256k1.PrivKeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", secp256k1.PrivKeySize, len(keyBytes))
	}

	return newKeyPair(&secp256k1.PrivKey{Key: keyBytes}, prefix)
}

func newKeyPair(privKey cryptotypes.PrivKey, prefix string) (*KeyPair, error) {
	pubKey := privKey.PubKey()

	address, err := bech32.ConvertAndEncode(prefix, sdk.AccAddress(pubKey.Address()))
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		Public:  pubKey,
		Private: privKey,
		address: address,
	}, nil
}

func (kp *KeyPair) Address() string {
	return kp.address
}

func (kp *KeyPair) Sign(bytesToSign []byte) ([]byte, error) {
	return kp.Private.Sign(bytesToSign)
}

func (kp *KeyPair) PublicKey() cryptotypes.PubKey {
	return kp.Public
}
