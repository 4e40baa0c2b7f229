// Package layout implements the canonical byte layout of a wire timestamp.
//
// A timestamp travelling through the newtype bridge is carried as the protobuf
// encoding of google.protobuf.Timestamp:
//
//	field 1 (seconds) varint, omitted when zero
//	field 2 (nanos)   varint, omitted when zero
//
// so the zero timestamp is the empty byte slice. Encode and Decode are exact
// inverses for valid timestamps.
//
// This package is internal to the transcoder.
package layout
