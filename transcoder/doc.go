// Package transcoder converts Go values to and from Firestore wire values.
//
// The wire value is a closed tagged union (null, boolean, integer, double,
// timestamp, string, bytes, array, map, plus pass-through reference and
// geo-point kinds):
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Go value ←→ [Serializer / Deserializer] ←→ *firestorepb.Value │
//	└──────────────────────────────────────────────────────────────┘
//
// # Shape Mapping
//
//	Go type                         shape           wire value
//	────────────────────────────────────────────────────────────────
//	bool                            bool            Boolean
//	int8..int64, int                signed int      Integer
//	uint8..uint64, uint             unsigned int    Integer (uint64 > MaxInt64 fails)
//	float32, float64                float           Double
//	Char                            char            String (one rune)
//	string                          string          String
//	[]byte                          bytes           Bytes
//	*T                              option          Null or T
//	[]T                             seq             Array
//	[N]T                            tuple           Array (exactly N)
//	struct{ Tuple; ... }            tuple struct    Array
//	map[K]V                         map             Map (K must encode to String)
//	struct{ ... }                   struct          Map
//	struct{ Newtype; X }            newtype         X
//	struct{ Enum; ... }             enum            see below
//	time.Time, *timestamppb.Timestamp               Timestamp
//	*firestorepb.Value                              cloned as is
//
// # Enum Convention
//
// Each pointer field of an Enum struct is one variant. The pointee decides
// the payload shape:
//
//	unit     *struct{} or a unit struct   String(name)
//	newtype  anything else                {"type": name, "value": payload}
//	tuple    a Tuple struct               {"type": name, "values": [...]}
//	struct   a plain struct               {"type": name, "values": {...}}
//
// The `newtype` tag option forces the newtype shape.
//
// # Timestamp Bridge
//
// A Newtype named TimestampMarker whose payload is the protobuf encoding of
// google.protobuf.Timestamp encodes to a Timestamp wire value rather than
// Bytes. In the other direction a byte-slice target accepts a Timestamp and
// receives the same encoding back.
//
// # Struct Tags
//
//	`firestore:"name"`            wire key (default: the Go field name)
//	`firestore:"-"`               never encoded, ignored when decoding
//	`firestore:",omitempty"`      skipped when zero
//	`firestore:"Name,newtype"`    enum variant with a single payload
//
// # Custom Shapes
//
// Types implementing ShapeMarshaler or ShapeUnmarshaler describe themselves
// through the Serializer and Deserializer protocols instead of reflection.
//
// # Thread Safety
//
// Compiler, Encoder and Decoder are safe for concurrent use. Compiled plans
// are immutable once published.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[encode] outside_int_range at stats.count: 18446744073709551615 does not fit in a signed 64-bit integer
//	[decode] wrong_type at user.age: expected uint32, got string
//
// Recursion depth is not bounded; deeply nested input uses stack
// proportional to its depth.
package transcoder
