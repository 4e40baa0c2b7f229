// Package timestamp provides a UTC instant that encodes to a Firestore
// Timestamp through the transcoder's timestamp bridge.
//
// Timestamp describes itself as a newtype named transcoder.TimestampMarker
// wrapping the protobuf encoding of google.protobuf.Timestamp:
//
//	type Event struct {
//	    At timestamp.Timestamp `firestore:"at"`
//	}
//
// encodes At as a Timestamp wire value and decodes it back from one.
package timestamp
