package tx

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/tessellated-io/txclient/coding"
)

const codespace = "txclient"

var (
	ErrNoResponse         = errorsmod.Register(codespace, 2, "node returned no response")
	ErrAccountDecode      = errorsmod.Register(codespace, 3, "failed to decode account")
	ErrTxFailed           = errorsmod.Register(codespace, 4, "transaction failed")
	ErrInclusion          = errorsmod.Register(codespace, 5, "transaction inclusion could not be confirmed")
	ErrTxMsgDataDecode    = errorsmod.Register(codespace, 6, "failed to decode tx msg data")
	ErrMsgResponseDecode  = errorsmod.Register(codespace, 7, "failed to decode msg response")
	ErrInvariantViolation = errorsmod.Register(codespace, 8, "invariant violation")
	ErrHeightWaitTimeout  = errorsmod.Register(codespace, 9, "timed out waiting for block height")
	ErrInvalidGasPolicy   = errorsmod.Register(codespace, 10, "invalid gas policy")
	ErrInvalidBatchSize   = errorsmod.Register(codespace, 11, "invalid batch size")
)

// TxFailedError is a transaction the chain rejected, either in CheckTx or during execution.
// It is never retried.
type TxFailedError struct {
	Hash      []byte
	Codespace string
	Code      uint32
	Log       string
}

func (e *TxFailedError) Error() string {
	return fmt.Sprintf("transaction %s failed with code %d (codespace: %s): %s", coding.FormatTxHash(e.Hash), e.Code, e.Codespace, e.Log)
}

func (e *TxFailedError) Unwrap() error {
	return ErrTxFailed
}

// IsGasRelated reports whether the failure was caused by the fee or gas limit.
func (e *TxFailedError) IsGasRelated() bool {
	return IsGasRelatedError(e.Codespace, e.Code)
}

// InclusionError means a broadcast succeeded but the transaction could not be found on chain
// within the retry budget. The transaction may still be included later.
type InclusionError struct {
	Attempts int
	Hash     []byte
	Cause    error
}

func (e *InclusionError) Error() string {
	return fmt.Sprintf("transaction %s not found after %d attempts: %v", coding.FormatTxHash(e.Hash), e.Attempts, e.Cause)
}

func (e *InclusionError) Unwrap() []error {
	return []error{ErrInclusion, e.Cause}
}
