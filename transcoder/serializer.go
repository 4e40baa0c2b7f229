package transcoder

import (
	"unicode/utf8"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/wippyai/firestore-codec/errors"
	"github.com/wippyai/firestore-codec/transcoder/internal/numeric"
)

// serializer is the Serializer handed to each value; it carries the path of
// the value being encoded.
type serializer struct {
	e    *Encoder
	path []string
}

var _ Serializer = (*serializer)(nil)

func (s *serializer) child(segment string) []string {
	return append(append([]string{}, s.path...), segment)
}

func (s *serializer) encodeChild(v any, segment string) (*firestorepb.Value, error) {
	return s.e.encodeAny(v, s.child(segment))
}

func (s *serializer) SerializeBool(v bool) (*firestorepb.Value, error) {
	return boolValue(v), nil
}

func (s *serializer) SerializeInt(v int64) (*firestorepb.Value, error) {
	return intValue(v), nil
}

func (s *serializer) SerializeUint(v uint64) (*firestorepb.Value, error) {
	n, ok := numeric.UintToInt64(v)
	if !ok {
		return nil, errors.OutsideIntRange(s.path, v)
	}
	return intValue(n), nil
}

func (s *serializer) SerializeFloat32(v float32) (*firestorepb.Value, error) {
	return doubleValue(float64(v)), nil
}

func (s *serializer) SerializeFloat64(v float64) (*firestorepb.Value, error) {
	return doubleValue(v), nil
}

func (s *serializer) SerializeChar(v rune) (*firestorepb.Value, error) {
	if !utf8.ValidRune(v) {
		return nil, errors.Message(errors.PhaseEncode, s.path, "invalid char code point %#x", v)
	}
	return stringValue(string(v)), nil
}

func (s *serializer) SerializeString(v string) (*firestorepb.Value, error) {
	return stringValue(v), nil
}

func (s *serializer) SerializeBytes(v []byte) (*firestorepb.Value, error) {
	return bytesValue(v), nil
}

func (s *serializer) SerializeTimestamp(seconds int64, nanos int32) (*firestorepb.Value, error) {
	ts := &timestamppb.Timestamp{Seconds: seconds, Nanos: nanos}
	if err := ts.CheckValid(); err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, s.path, err, "timestamp out of range")
	}
	return timestampValue(seconds, nanos), nil
}

func (s *serializer) SerializeNone() (*firestorepb.Value, error) {
	return nullValue(), nil
}

func (s *serializer) SerializeSome(v any) (*firestorepb.Value, error) {
	return s.e.encodeAny(v, s.path)
}

func (s *serializer) SerializeUnit() (*firestorepb.Value, error) {
	return nil, errors.Unrepresentable(errors.PhaseEncode, s.path, "()")
}

func (s *serializer) SerializeUnitStruct(string) (*firestorepb.Value, error) {
	return nil, errors.Unrepresentable(errors.PhaseEncode, s.path, "unit_struct")
}

func (s *serializer) SerializeUnitVariant(_ string, _ int, variant string) (*firestorepb.Value, error) {
	return VariantToValue(ShapeUnit, variant, nil), nil
}

// SerializeNewtype is transparent, except that the TimestampMarker name sends
// the payload through the timestamp bridge.
func (s *serializer) SerializeNewtype(name string, v any) (*firestorepb.Value, error) {
	if name == TimestampMarker {
		return bridgeEncode(v, s.path)
	}
	return s.e.encodeAny(v, s.path)
}

func (s *serializer) SerializeNewtypeVariant(_ string, _ int, variant string, v any) (*firestorepb.Value, error) {
	payload, err := s.encodeChild(v, variant)
	if err != nil {
		return nil, err
	}
	return VariantToValue(ShapeNewtype, variant, payload), nil
}

func (s *serializer) SerializeSeq(n int) *ArrayBuilder {
	return newArrayBuilder(s, n)
}

func (s *serializer) SerializeTuple(n int) *ArrayBuilder {
	return newArrayBuilder(s, n)
}

func (s *serializer) SerializeTupleStruct(_ string, n int) *ArrayBuilder {
	return newArrayBuilder(s, n)
}

func (s *serializer) SerializeTupleVariant(_ string, _ int, variant string, n int) *TupleVariantBuilder {
	inner := &serializer{e: s.e, path: s.child(variant)}
	return &TupleVariantBuilder{ArrayBuilder: newArrayBuilder(inner, n), variant: variant}
}

func (s *serializer) SerializeMap(n int) *KVMapBuilder {
	return newKVMapBuilder(s, n)
}

func (s *serializer) SerializeStruct(_ string, n int) *StructBuilder {
	return newStructBuilder(s, n)
}

func (s *serializer) SerializeStructVariant(_ string, _ int, variant string, n int) *StructVariantBuilder {
	inner := &serializer{e: s.e, path: s.child(variant)}
	return &StructVariantBuilder{StructBuilder: newStructBuilder(inner, n), variant: variant}
}
