// Package envelope converts protobuf messages to and from the self-describing "Any" envelope
// used throughout Cosmos SDK transactions and responses.
package envelope

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/gogoproto/proto"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message is satisfied by a pointer to a generated protobuf type.
type Message[T any] interface {
	*T
	proto.Message
}

// TypeURL returns the envelope type url for the message, "/" followed by its fully qualified name.
func TypeURL(msg proto.Message) string {
	return "/" + proto.MessageName(msg)
}

// Wrap encodes a message into an envelope.
func Wrap(msg proto.Message) (*codectypes.Any, error) {
	wrapped, err := codectypes.NewAnyWithValue(msg)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "wrapping %s", TypeURL(msg))
	}
	return wrapped, nil
}

// WrapAll encodes every message, in order.
func WrapAll(msgs []sdk.Msg) ([]*codectypes.Any, error) {
	wrapped := make([]*codectypes.Any, 0, len(msgs))
	for _, msg := range msgs {
		envelope, err := Wrap(msg)
		if err != nil {
			return nil, err
		}
		wrapped = append(wrapped, envelope)
	}
	return wrapped, nil
}

// Unwrap decodes an envelope into T. The envelope's type url must name T exactly.
//
// Note that Go doesn't allow type parameters on methods, so this is a function.
func Unwrap[T any, PT Message[T]](envelope *codectypes.Any) (PT, error) {
	if envelope == nil {
		return nil, ErrEmptyEnvelope
	}

	msg := PT(new(T))
	expected := TypeURL(msg)
	if envelope.TypeUrl != expected {
		return nil, &TypeMismatchError{
			Expected: expected,
			Actual:   envelope.TypeUrl,
		}
	}

	if err := proto.Unmarshal(envelope.Value, msg); err != nil {
		return nil, errorsmod.Wrapf(ErrDecode, "%s: %s", expected, err)
	}
	return msg, nil
}
