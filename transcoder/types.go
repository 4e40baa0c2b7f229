package transcoder

import (
	"github.com/wippyai/firestore-codec/transcoder/internal/types"
)

type TypeKind = types.Kind

const (
	KindBool        = types.KindBool
	KindInt8        = types.KindInt8
	KindInt16       = types.KindInt16
	KindInt32       = types.KindInt32
	KindInt64       = types.KindInt64
	KindUint8       = types.KindUint8
	KindUint16      = types.KindUint16
	KindUint32      = types.KindUint32
	KindUint64      = types.KindUint64
	KindFloat32     = types.KindFloat32
	KindFloat64     = types.KindFloat64
	KindChar        = types.KindChar
	KindString      = types.KindString
	KindBytes       = types.KindBytes
	KindOption      = types.KindOption
	KindUnit        = types.KindUnit
	KindUnitStruct  = types.KindUnitStruct
	KindNewtype     = types.KindNewtype
	KindList        = types.KindList
	KindTuple       = types.KindTuple
	KindTupleStruct = types.KindTupleStruct
	KindMap         = types.KindMap
	KindStruct      = types.KindStruct
	KindEnum        = types.KindEnum
	KindInterface   = types.KindInterface
	KindTime        = types.KindTime
	KindTimestamp   = types.KindTimestamp
	KindRaw         = types.KindRaw
	KindUnsupported = types.KindUnsupported
)

type VariantShape = types.VariantShape

const (
	ShapeUnit    = types.ShapeUnit
	ShapeNewtype = types.ShapeNewtype
	ShapeTuple   = types.ShapeTuple
	ShapeStruct  = types.ShapeStruct
)

type CompiledType = types.CompiledType
type CompiledField = types.Field
type CompiledCase = types.Case

// Reserved names of the wire conventions.
const (
	// TimestampMarker is the newtype name that routes a byte payload through
	// the timestamp bridge.
	TimestampMarker = "$TimestampValue"
	TypeField       = "type"
	ValueField      = "value"
	ValuesField     = "values"
)

// DefaultTag is the struct tag consulted for field names and options.
const DefaultTag = "firestore"

// Tuple marks a struct as a named ordered aggregate. Its fields encode, in
// declaration order, as an array.
//
//	type Pair struct {
//		transcoder.Tuple
//		Left  uint32
//		Right bool
//	}
type Tuple struct{}

// Newtype marks a struct as a transparent wrapper around its single field.
// The marker's tag name, if any, is the wrapper name.
//
//	type Stamp struct {
//		transcoder.Newtype `firestore:"$TimestampValue"`
//		Raw []byte
//	}
type Newtype struct{}

// Enum marks a struct as a sum type. Every other field is a pointer naming one
// variant; exactly one must be non-nil when encoding.
//
//	type Shape struct {
//		transcoder.Enum
//		Empty  *struct{}    `firestore:"Empty"`
//		Radius *float64     `firestore:"Circle"`
//		Rect   *RectPayload `firestore:"Rect"`
//	}
type Enum struct{}

// Char is a single Unicode scalar encoded as a one-rune string.
type Char rune
