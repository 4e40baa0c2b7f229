package timestamp

import (
	"fmt"
	"time"

	"cloud.google.com/go/firestore/apiv1/firestorepb"

	"github.com/wippyai/firestore-codec/errors"
	"github.com/wippyai/firestore-codec/transcoder"
)

// Timestamp is an instant with nanosecond precision, seconds counted from
// the Unix epoch.
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

var (
	_ transcoder.ShapeMarshaler   = Timestamp{}
	_ transcoder.ShapeUnmarshaler = (*Timestamp)(nil)
)

// New returns the Timestamp for t.
func New(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// Unix returns the Timestamp sec seconds and nsec nanoseconds after the epoch.
// nsec outside [0, 1e9) is normalized.
func Unix(sec, nsec int64) Timestamp {
	return New(time.Unix(sec, nsec))
}

// Now returns the current instant.
func Now() Timestamp {
	return New(time.Now())
}

// Time returns ts as a UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

func (ts Timestamp) String() string {
	return ts.Time().Format(time.RFC3339Nano)
}

// Bytes returns the bridge payload of ts.
func (ts Timestamp) Bytes() ([]byte, error) {
	return transcoder.TimestampLayout(ts.Seconds, ts.Nanos)
}

// FromBytes parses a bridge payload.
func FromBytes(b []byte) (Timestamp, error) {
	sec, nanos, err := transcoder.ParseTimestampLayout(b)
	if err != nil {
		return Timestamp{}, fmt.Errorf("timestamp: %w", err)
	}
	return Timestamp{Seconds: sec, Nanos: nanos}, nil
}

func (ts Timestamp) MarshalShape(s transcoder.Serializer) (*firestorepb.Value, error) {
	b, err := ts.Bytes()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, nil, err, "timestamp layout")
	}
	return s.SerializeNewtype(transcoder.TimestampMarker, b)
}

func (ts *Timestamp) UnmarshalShape(d transcoder.Deserializer) error {
	b, err := d.DeserializeByteBuf()
	if err != nil {
		return err
	}
	parsed, err := FromBytes(b)
	if err != nil {
		return errors.Wrap(errors.PhaseDecode, nil, err, "timestamp layout")
	}
	*ts = parsed
	return nil
}
