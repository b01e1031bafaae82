package tx

import (
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// SigningMetadata is the account state a signature commits to.
type SigningMetadata struct {
	address       string
	accountNumber uint64
	sequence      uint64
}

func (sm *SigningMetadata) Address() string {
	return sm.address
}

func (sm *SigningMetadata) AccountNumber() uint64 {
	return sm.accountNumber
}

func (sm *SigningMetadata) Sequence() uint64 {
	return sm.sequence
}

type GasInfo struct {
	GasWanted uint64
	GasUsed   uint64
}

// Estimate is the outcome of gas estimation: the transaction as it was estimated and its gas.
// AuthInfo carries the placeholder fee, not the fee that will be broadcast.
type Estimate struct {
	Body     *txtypes.TxBody
	AuthInfo *txtypes.AuthInfo
	GasInfo  GasInfo
}
