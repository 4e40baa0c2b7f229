package transcoder

import (
	"strconv"
	"unicode/utf8"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/wippyai/firestore-codec/errors"
	"github.com/wippyai/firestore-codec/transcoder/internal/numeric"
)

// deserializer is the Deserializer bound to one wire value.
type deserializer struct {
	d    *Decoder
	v    *firestorepb.Value
	path []string
}

var _ Deserializer = (*deserializer)(nil)

func (de *deserializer) child(segment string) []string {
	return append(append([]string{}, de.path...), segment)
}

func (de *deserializer) wrongType(expected string) error {
	var wire *firestorepb.Value
	if de.v != nil {
		wire = proto.Clone(de.v).(*firestorepb.Value)
	}
	return errors.WrongType(de.path, expected, KindName(de.v), wire)
}

func (de *deserializer) DeserializeBool() (bool, error) {
	if b, ok := de.v.GetValueType().(*firestorepb.Value_BooleanValue); ok {
		return b.BooleanValue, nil
	}
	return false, de.wrongType("bool")
}

func (de *deserializer) integer(kind TypeKind) (int64, error) {
	if n, ok := de.v.GetValueType().(*firestorepb.Value_IntegerValue); ok {
		return n.IntegerValue, nil
	}
	return 0, de.wrongType(kind.String())
}

func (de *deserializer) DeserializeInt(kind TypeKind) (int64, error) {
	n, err := de.integer(kind)
	if err != nil {
		return 0, err
	}
	if !numeric.FitsSigned(n, kind.Bits()) {
		return 0, errors.IntRange(de.path, kind.String(), n)
	}
	return n, nil
}

func (de *deserializer) DeserializeUint(kind TypeKind) (uint64, error) {
	n, err := de.integer(kind)
	if err != nil {
		return 0, err
	}
	if !numeric.FitsUnsigned(n, kind.Bits()) {
		return 0, errors.IntRange(de.path, kind.String(), n)
	}
	return uint64(n), nil
}

func (de *deserializer) DeserializeFloat32() (float32, error) {
	if f, ok := de.v.GetValueType().(*firestorepb.Value_DoubleValue); ok {
		return numeric.ToFloat32(f.DoubleValue), nil
	}
	return 0, de.wrongType("float32")
}

func (de *deserializer) DeserializeFloat64() (float64, error) {
	if f, ok := de.v.GetValueType().(*firestorepb.Value_DoubleValue); ok {
		return f.DoubleValue, nil
	}
	return 0, de.wrongType("float64")
}

// DeserializeChar accepts a string holding exactly one rune.
func (de *deserializer) DeserializeChar() (rune, error) {
	if s, ok := de.v.GetValueType().(*firestorepb.Value_StringValue); ok {
		if utf8.RuneCountInString(s.StringValue) == 1 {
			r, _ := utf8.DecodeRuneInString(s.StringValue)
			return r, nil
		}
	}
	return 0, de.wrongType("char")
}

func (de *deserializer) DeserializeString() (string, error) {
	if s, ok := de.v.GetValueType().(*firestorepb.Value_StringValue); ok {
		return s.StringValue, nil
	}
	return "", de.wrongType("string")
}

func (de *deserializer) DeserializeBytes() ([]byte, error) {
	if b, ok := de.v.GetValueType().(*firestorepb.Value_BytesValue); ok {
		return cloneBytes(b.BytesValue), nil
	}
	return nil, de.wrongType("bytes")
}

func (de *deserializer) DeserializeByteBuf() ([]byte, error) {
	switch t := de.v.GetValueType().(type) {
	case *firestorepb.Value_BytesValue:
		return cloneBytes(t.BytesValue), nil
	case *firestorepb.Value_TimestampValue:
		if t.TimestampValue != nil {
			if err := checkTimestamp(t.TimestampValue, de.path); err != nil {
				return nil, err
			}
			return bridgeDecode(t.TimestampValue, de.path)
		}
	}
	return nil, de.wrongType("byte_buf")
}

func (de *deserializer) DeserializeTimestamp() (*timestamppb.Timestamp, error) {
	t, ok := de.v.GetValueType().(*firestorepb.Value_TimestampValue)
	if !ok || t.TimestampValue == nil {
		return nil, de.wrongType("timestamp")
	}
	if err := checkTimestamp(t.TimestampValue, de.path); err != nil {
		return nil, err
	}
	return &timestamppb.Timestamp{Seconds: t.TimestampValue.Seconds, Nanos: t.TimestampValue.Nanos}, nil
}

func (de *deserializer) DeserializeOption() (bool, error) {
	switch KindName(de.v) {
	case "null":
		return false, nil
	case "malformed":
		return false, de.wrongType("option")
	}
	return true, nil
}

func (de *deserializer) DeserializeUnit() error {
	return errors.Unrepresentable(errors.PhaseDecode, de.path, "unit")
}

func (de *deserializer) DeserializeUnitStruct(string) error {
	return errors.Unrepresentable(errors.PhaseDecode, de.path, "unit_struct")
}

func (de *deserializer) DeserializeNewtype(_ string, out any) error {
	return de.Decode(out)
}

// DeserializeSeq offers each byte of a Bytes value as an Integer element.
func (de *deserializer) DeserializeSeq() ([]*firestorepb.Value, error) {
	switch t := de.v.GetValueType().(type) {
	case *firestorepb.Value_ArrayValue:
		if t.ArrayValue != nil {
			return t.ArrayValue.GetValues(), nil
		}
	case *firestorepb.Value_BytesValue:
		elems := make([]*firestorepb.Value, len(t.BytesValue))
		for i, b := range t.BytesValue {
			elems[i] = intValue(int64(b))
		}
		return elems, nil
	}
	return nil, de.wrongType("seq")
}

func (de *deserializer) DeserializeTuple(n int) ([]*firestorepb.Value, error) {
	t, ok := de.v.GetValueType().(*firestorepb.Value_ArrayValue)
	if !ok || t.ArrayValue == nil {
		return nil, de.wrongType("tuple")
	}
	elems := t.ArrayValue.GetValues()
	if err := de.checkLen(n, len(elems)); err != nil {
		return nil, err
	}
	return elems, nil
}

func (de *deserializer) DeserializeTupleStruct(_ string, n int) ([]*firestorepb.Value, error) {
	elems, err := de.DeserializeSeq()
	if err != nil {
		return nil, err
	}
	if err := de.checkLen(n, len(elems)); err != nil {
		return nil, err
	}
	return elems, nil
}

func (de *deserializer) checkLen(want, got int) error {
	if want >= 0 && want != got {
		return errors.Message(errors.PhaseDecode, de.path, "expected %d elements, got %d", want, got)
	}
	return nil
}

func (de *deserializer) DeserializeMap() (map[string]*firestorepb.Value, error) {
	t, ok := de.v.GetValueType().(*firestorepb.Value_MapValue)
	if !ok || t.MapValue == nil {
		return nil, de.wrongType("map")
	}
	return t.MapValue.GetFields(), nil
}

func (de *deserializer) DeserializeStruct(string, []string) (map[string]*firestorepb.Value, error) {
	return de.DeserializeMap()
}

func (de *deserializer) DeserializeEnum(string, []string) (*VariantAccess, error) {
	variant, payload, err := ValueToVariant(de.v)
	if err != nil {
		return nil, attachPath(err, de.path)
	}
	return &VariantAccess{d: de.d, path: de.path, variant: variant, payload: payload}, nil
}

func (de *deserializer) DeserializeIdentifier() (string, error) {
	return "", errors.Unrepresentable(errors.PhaseDecode, de.path, "identifier")
}

// DeserializeIgnored accepts any value without inspecting it.
func (de *deserializer) DeserializeIgnored() error {
	return nil
}

func (de *deserializer) DeserializeAny() (any, error) {
	return nil, errors.Unrepresentable(errors.PhaseDecode, de.path, "any")
}

func (de *deserializer) Decode(out any) error {
	return de.d.decodeInto(de.v, out, de.path)
}

func (de *deserializer) DecodeElement(v *firestorepb.Value, out any, segment string) error {
	return de.d.decodeInto(v, out, de.child(segment))
}

// VariantAccess exposes the variant chosen by an enum wire value and decodes
// its payload in the shape the caller selects.
type VariantAccess struct {
	d       *Decoder
	payload *firestorepb.Value
	variant string
	path    []string
}

// Variant returns the variant name.
func (a *VariantAccess) Variant() string {
	return a.variant
}

// Payload returns the raw payload, nil for a String-sourced unit variant.
func (a *VariantAccess) Payload() *firestorepb.Value {
	return a.payload
}

func (a *VariantAccess) payloadPath() []string {
	return append(append([]string{}, a.path...), a.variant)
}

func (a *VariantAccess) UnitVariant() error {
	if a.payload != nil {
		return errors.Message(errors.PhaseDecode, a.path, "variant %q takes no payload", a.variant)
	}
	return nil
}

func (a *VariantAccess) requirePayload() (*deserializer, error) {
	if a.payload == nil {
		return nil, errors.Message(errors.PhaseDecode, a.path, "variant %q requires a payload", a.variant)
	}
	return &deserializer{d: a.d, v: a.payload, path: a.payloadPath()}, nil
}

func (a *VariantAccess) NewtypeVariant(out any) error {
	de, err := a.requirePayload()
	if err != nil {
		return err
	}
	return de.Decode(out)
}

// TupleVariant returns the payload elements; the payload must be an Array of
// n elements (n < 0 skips the length check).
func (a *VariantAccess) TupleVariant(n int) ([]*firestorepb.Value, error) {
	de, err := a.requirePayload()
	if err != nil {
		return nil, err
	}
	t, ok := de.v.GetValueType().(*firestorepb.Value_ArrayValue)
	if !ok || t.ArrayValue == nil {
		return nil, de.wrongType("array")
	}
	elems := t.ArrayValue.GetValues()
	if err := de.checkLen(n, len(elems)); err != nil {
		return nil, err
	}
	return elems, nil
}

// StructVariant returns the payload fields; the payload must be a Map.
func (a *VariantAccess) StructVariant([]string) (map[string]*firestorepb.Value, error) {
	de, err := a.requirePayload()
	if err != nil {
		return nil, err
	}
	return de.DeserializeMap()
}

func cloneBytes(b []byte) []byte {
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}

func indexSegment(i int) string {
	return strconv.Itoa(i)
}
