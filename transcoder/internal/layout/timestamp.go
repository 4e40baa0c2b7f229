package layout

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var marshalOpts = proto.MarshalOptions{Deterministic: true}

// Encode returns the canonical layout of (seconds, nanos).
func Encode(seconds int64, nanos int32) ([]byte, error) {
	return EncodeProto(&timestamppb.Timestamp{Seconds: seconds, Nanos: nanos})
}

// EncodeProto returns the canonical layout of ts.
func EncodeProto(ts *timestamppb.Timestamp) ([]byte, error) {
	if ts == nil {
		return nil, fmt.Errorf("nil timestamp")
	}
	b, err := marshalOpts.Marshal(ts)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// Decode parses the canonical layout. Unknown fields are rejected.
func Decode(b []byte) (*timestamppb.Timestamp, error) {
	ts := &timestamppb.Timestamp{}
	if err := proto.Unmarshal(b, ts); err != nil {
		return nil, err
	}
	if len(ts.ProtoReflect().GetUnknown()) > 0 {
		return nil, fmt.Errorf("unexpected fields in timestamp layout")
	}
	return ts, nil
}

// Validate reports whether ts lies within the representable range
// (0001-01-01 to 9999-12-31, nanos in [0, 1e9)).
func Validate(ts *timestamppb.Timestamp) error {
	return ts.CheckValid()
}
