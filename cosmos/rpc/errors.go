package rpc

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// QueryError is an application level failure reported by a query, as opposed to a failure to
// reach the node at all.
type QueryError struct {
	Path      string
	Code      uint32
	Codespace string
	Log       string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s failed with code %d (codespace: %s): %s", e.Path, e.Code, e.Codespace, e.Log)
}

// IsNotFound reports whether the error is the SDK's "key not found" error, which is how the auth
// module reports an account that has never received funds.
func (e *QueryError) IsNotFound() bool {
	return e.Codespace == sdkerrors.ErrKeyNotFound.Codespace() && e.Code == sdkerrors.ErrKeyNotFound.ABCICode()
}
