package transcoder

import (
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Serializer receives one call per shape while a value describes itself.
// Scalar calls return the finished wire value; aggregate calls return a
// builder that accumulates children and produces the value on End.
type Serializer interface {
	SerializeBool(v bool) (*firestorepb.Value, error)
	SerializeInt(v int64) (*firestorepb.Value, error)
	SerializeUint(v uint64) (*firestorepb.Value, error)
	SerializeFloat32(v float32) (*firestorepb.Value, error)
	SerializeFloat64(v float64) (*firestorepb.Value, error)
	SerializeChar(v rune) (*firestorepb.Value, error)
	SerializeString(v string) (*firestorepb.Value, error)
	SerializeBytes(v []byte) (*firestorepb.Value, error)
	SerializeTimestamp(seconds int64, nanos int32) (*firestorepb.Value, error)

	SerializeNone() (*firestorepb.Value, error)
	SerializeSome(v any) (*firestorepb.Value, error)
	SerializeUnit() (*firestorepb.Value, error)
	SerializeUnitStruct(name string) (*firestorepb.Value, error)
	SerializeUnitVariant(name string, index int, variant string) (*firestorepb.Value, error)
	SerializeNewtype(name string, v any) (*firestorepb.Value, error)
	SerializeNewtypeVariant(name string, index int, variant string, v any) (*firestorepb.Value, error)

	SerializeSeq(n int) *ArrayBuilder
	SerializeTuple(n int) *ArrayBuilder
	SerializeTupleStruct(name string, n int) *ArrayBuilder
	SerializeTupleVariant(name string, index int, variant string, n int) *TupleVariantBuilder
	SerializeMap(n int) *KVMapBuilder
	SerializeStruct(name string, n int) *StructBuilder
	SerializeStructVariant(name string, index int, variant string, n int) *StructVariantBuilder
}

// Deserializer is bound to one wire value. The caller asks for the shape it
// expects and receives either the Go value or a WrongType error.
type Deserializer interface {
	DeserializeBool() (bool, error)
	// DeserializeInt reads a signed integer of the given kind's width.
	DeserializeInt(kind TypeKind) (int64, error)
	// DeserializeUint reads an unsigned integer of the given kind's width.
	DeserializeUint(kind TypeKind) (uint64, error)
	DeserializeFloat32() (float32, error)
	DeserializeFloat64() (float64, error)
	DeserializeChar() (rune, error)
	DeserializeString() (string, error)
	DeserializeBytes() ([]byte, error)
	// DeserializeByteBuf accepts bytes, and timestamps in their canonical layout.
	DeserializeByteBuf() ([]byte, error)
	DeserializeTimestamp() (*timestamppb.Timestamp, error)

	// DeserializeOption reports false for null.
	DeserializeOption() (bool, error)
	DeserializeUnit() error
	DeserializeUnitStruct(name string) error
	DeserializeNewtype(name string, out any) error
	// DeserializeSeq accepts arrays, and bytes as one integer element per byte.
	DeserializeSeq() ([]*firestorepb.Value, error)
	// DeserializeTuple accepts arrays of exactly n elements.
	DeserializeTuple(n int) ([]*firestorepb.Value, error)
	DeserializeTupleStruct(name string, n int) ([]*firestorepb.Value, error)
	DeserializeMap() (map[string]*firestorepb.Value, error)
	DeserializeStruct(name string, fields []string) (map[string]*firestorepb.Value, error)
	DeserializeEnum(name string, variants []string) (*VariantAccess, error)
	DeserializeIdentifier() (string, error)
	DeserializeIgnored() error
	DeserializeAny() (any, error)

	// Decode decodes the bound value into out, a non-nil pointer.
	Decode(out any) error
	// DecodeElement decodes v, a child of the bound value, into out.
	DecodeElement(v *firestorepb.Value, out any, segment string) error
}

// ShapeMarshaler is implemented by types that describe their own shape.
type ShapeMarshaler interface {
	MarshalShape(s Serializer) (*firestorepb.Value, error)
}

// ShapeUnmarshaler is implemented by pointer types that rebuild themselves
// from a Deserializer.
type ShapeUnmarshaler interface {
	UnmarshalShape(d Deserializer) error
}
