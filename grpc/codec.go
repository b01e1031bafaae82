package grpc

import (
	"fmt"

	gogoproto "github.com/cosmos/gogoproto/proto"
)

// Codec moves gogoproto messages over gRPC. Any values stay packed; callers unwrap the concrete
// types they expect, so no interface registry is needed.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(gogoproto.Message)
	if !ok {
		return nil, fmt.Errorf("cannot marshal %T: not a gogoproto message", v)
	}
	return gogoproto.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(gogoproto.Message)
	if !ok {
		return fmt.Errorf("cannot unmarshal into %T: not a gogoproto message", v)
	}
	return gogoproto.Unmarshal(data, msg)
}

// Name is the content subtype every gRPC server understands.
func (Codec) Name() string {
	return "proto"
}
