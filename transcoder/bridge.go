package transcoder

import (
	"reflect"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/wippyai/firestore-codec/errors"
	"github.com/wippyai/firestore-codec/transcoder/internal/layout"
)

// bridgeEncode turns the byte payload of a TimestampMarker newtype into a
// timestamp wire value.
func bridgeEncode(payload any, path []string) (*firestorepb.Value, error) {
	b, ok := payloadBytes(payload)
	if !ok {
		return nil, errors.Message(errors.PhaseEncode, path,
			"%s payload must be a byte slice, got %T", TimestampMarker, payload)
	}
	ts, err := layout.Decode(b)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, path, err, "malformed timestamp payload")
	}
	if err := layout.Validate(ts); err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, path, err, "timestamp out of range")
	}
	return timestampValue(ts.Seconds, ts.Nanos), nil
}

func payloadBytes(payload any) ([]byte, bool) {
	if b, ok := payload.([]byte); ok {
		return b, true
	}
	rv := reflect.ValueOf(payload)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return rv.Bytes(), true
	}
	return nil, false
}

// bridgeDecode re-serializes a timestamp wire value into the canonical layout
// for a byte-buffer target.
func bridgeDecode(ts *timestamppb.Timestamp, path []string) ([]byte, error) {
	b, err := layout.EncodeProto(ts)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, path, err, "timestamp layout")
	}
	return b, nil
}

// checkTimestamp reports a wire timestamp outside the representable range.
func checkTimestamp(ts *timestamppb.Timestamp, path []string) error {
	if layout.Validate(ts) == nil {
		return nil
	}
	if ts.Nanos < 0 || ts.Nanos >= 1e9 {
		return errors.IntRange(path, "timestamp.nanos", int64(ts.Nanos))
	}
	return errors.IntRange(path, "timestamp.seconds", ts.Seconds)
}

// TimestampLayout returns the bridge payload for (seconds, nanos): the
// protobuf encoding of google.protobuf.Timestamp.
func TimestampLayout(seconds int64, nanos int32) ([]byte, error) {
	return layout.Encode(seconds, nanos)
}

// ParseTimestampLayout is the inverse of TimestampLayout. The result is
// range checked.
func ParseTimestampLayout(b []byte) (int64, int32, error) {
	ts, err := layout.Decode(b)
	if err != nil {
		return 0, 0, err
	}
	if err := layout.Validate(ts); err != nil {
		return 0, 0, err
	}
	return ts.Seconds, ts.Nanos, nil
}
