package envelope

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

const codespace = "envelope"

var (
	ErrEmptyEnvelope = errorsmod.Register(codespace, 2, "envelope is empty")
	ErrTypeMismatch  = errorsmod.Register(codespace, 3, "envelope type mismatch")
	ErrDecode        = errorsmod.Register(codespace, 4, "failed to decode envelope value")
)

// TypeMismatchError is returned when an envelope carries a different type than the caller asked for.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %q, got %q", ErrTypeMismatch.Error(), e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
