package tx

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// GasPolicy decides the gas ceiling and prices gas into a fee.
type GasPolicy interface {
	// MaxGas is the most gas a transaction may use. It is used as the limit when no simulation
	// is performed.
	MaxGas() uint64

	// FeeFor returns the fee for a transaction that is expected to use gasUsed units.
	FeeFor(gasUsed uint64) (txtypes.Fee, error)
}

// LinearGasPolicy prices gas at a fixed rate, padding estimates by a multiplier.
type LinearGasPolicy struct {
	maxGas        uint64
	gasPrice      sdk.DecCoin
	gasMultiplier float64
}

var _ GasPolicy = (*LinearGasPolicy)(nil)

// NewLinearGasPolicy creates a policy. gasPrice is a decimal coin, for instance "0.025uatom".
func NewLinearGasPolicy(maxGas uint64, gasPrice string, gasMultiplier float64) (*LinearGasPolicy, error) {
	price, err := sdk.ParseDecCoin(gasPrice)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidGasPolicy, "gas price %q: %s", gasPrice, err)
	}
	if maxGas == 0 {
		return nil, errorsmod.Wrap(ErrInvalidGasPolicy, "max gas must be positive")
	}
	if gasMultiplier < 1 || math.IsInf(gasMultiplier, 0) || math.IsNaN(gasMultiplier) {
		return nil, errorsmod.Wrapf(ErrInvalidGasPolicy, "gas multiplier must be at least 1, got %f", gasMultiplier)
	}

	return &LinearGasPolicy{
		maxGas:        maxGas,
		gasPrice:      price,
		gasMultiplier: gasMultiplier,
	}, nil
}

func (p *LinearGasPolicy) MaxGas() uint64 {
	return p.maxGas
}

// FeeFor pads gasUsed by the multiplier, capped at MaxGas, and charges the gas price per unit,
// rounding up.
func (p *LinearGasPolicy) FeeFor(gasUsed uint64) (txtypes.Fee, error) {
	gasLimit := uint64(math.Ceil(float64(gasUsed) * p.gasMultiplier))
	if gasLimit > p.maxGas {
		gasLimit = p.maxGas
	}
	if gasLimit > math.MaxInt64 {
		return txtypes.Fee{}, errorsmod.Wrapf(ErrInvalidGasPolicy, "gas limit %d overflows", gasLimit)
	}

	amount := p.gasPrice.Amount.MulInt64(int64(gasLimit)).Ceil().TruncateInt()

	return txtypes.Fee{
		Amount:   sdk.NewCoins(sdk.NewCoin(p.gasPrice.Denom, amount)),
		GasLimit: gasLimit,
	}, nil
}

// GasPrice returns the configured price per unit of gas.
func (p *LinearGasPolicy) GasPrice() sdk.DecCoin {
	return p.gasPrice
}

// Helper function to know if an error had to do with gas.
func IsGasRelatedError(codespace string, code uint32) bool {
	return IsGasPriceError(codespace, code) || IsGasAmountError(codespace, code)
}

// Helper function to determine if an error is related to too small of a gas price
func IsGasPriceError(codespace string, code uint32) bool {
	return (codespace == "sdk" && code == 13) || (codespace == "gaia" && code == 4)
}

// Helper function to determine if an error is related to too few gas units
func IsGasAmountError(codespace string, code uint32) bool {
	return (codespace == "sdk" && code == 11)
}
