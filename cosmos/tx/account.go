package tx

import (
	"context"
	"errors"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/tessellated-io/txclient/cosmos/envelope"
	"github.com/tessellated-io/txclient/cosmos/rpc"
)

const accountQueryPath = "/cosmos.auth.v1beta1.Query/Account"

// AccountInfo fetches an account from the chain. An account the chain has never seen is not an
// error: it returns (nil, nil).
func (c *TxClient) AccountInfo(ctx context.Context, address string) (*authtypes.BaseAccount, error) {
	request := &authtypes.QueryAccountRequest{
		Address: address,
	}
	response := &authtypes.QueryAccountResponse{}

	err := c.transport.Query(ctx, accountQueryPath, request, response)
	if err != nil {
		var queryErr *rpc.QueryError
		if errors.As(err, &queryErr) && queryErr.IsNotFound() {
			c.logger.Debug("account not found on chain", "address", address)
			return nil, nil
		}
		return nil, err
	}

	if response.Account == nil {
		return nil, errorsmod.Wrap(ErrNoResponse, accountQueryPath)
	}

	account, err := envelope.Unwrap[authtypes.BaseAccount](response.Account)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccountDecode, err)
	}

	c.logger.Debug("fetched account", "address", address, "account_number", account.AccountNumber, "sequence", account.Sequence)
	return account, nil
}

// signingMetadata resolves the wallet's current account number and sequence. A fresh account
// signs with zero for both.
func (c *TxClient) signingMetadata(ctx context.Context) (*SigningMetadata, error) {
	address := c.wallet.Address()

	account, err := c.AccountInfo(ctx, address)
	if err != nil {
		return nil, err
	}

	metadata := &SigningMetadata{
		address: address,
	}
	if account != nil {
		metadata.accountNumber = account.AccountNumber
		metadata.sequence = account.Sequence
	}

	return metadata, nil
}
