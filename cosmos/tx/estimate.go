package tx

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

const simulateQueryPath = "/cosmos.tx.v1beta1.Service/Simulate"

// estimateGas fills in gas info for an unsigned transaction. With simulate set, the chain runs
// the transaction signed with the placeholder fee; otherwise the policy's ceiling is used as is.
func (c *TxClient) estimateGas(ctx context.Context, unsigned *unsignedTx, simulate bool) (draftAuthInfo, GasInfo, error) {
	maxGas := c.gasPolicy.MaxGas()
	placeholderFee, err := c.gasPolicy.FeeFor(maxGas)
	if err != nil {
		return draftAuthInfo{}, GasInfo{}, err
	}
	draft := unsigned.draft(placeholderFee)

	if !simulate {
		return draft, GasInfo{GasWanted: maxGas, GasUsed: maxGas}, nil
	}

	simulationBytes, err := c.signer.signForSimulation(unsigned, draft)
	if err != nil {
		return draftAuthInfo{}, GasInfo{}, err
	}

	gasInfo, err := c.simulate(ctx, simulationBytes)
	if err != nil {
		return draftAuthInfo{}, GasInfo{}, err
	}

	return draft, *gasInfo, nil
}

func (c *TxClient) simulate(ctx context.Context, txBytes []byte) (*GasInfo, error) {
	request := &txtypes.SimulateRequest{
		TxBytes: txBytes,
	}
	response := &txtypes.SimulateResponse{}

	if err := c.transport.Query(ctx, simulateQueryPath, request, response); err != nil {
		return nil, err
	}

	if response.GasInfo == nil {
		return nil, errorsmod.Wrap(ErrNoResponse, "simulation returned no gas info")
	}

	gasInfo := &GasInfo{
		GasWanted: response.GasInfo.GasWanted,
		GasUsed:   response.GasInfo.GasUsed,
	}
	if gasInfo.GasWanted != 0 && gasInfo.GasWanted < gasInfo.GasUsed {
		c.logger.Warn("simulation reported less gas wanted than used", "gas_wanted", gasInfo.GasWanted, "gas_used", gasInfo.GasUsed)
	}

	return gasInfo, nil
}
