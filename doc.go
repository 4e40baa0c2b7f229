// Package firestorecodec converts Go values to and from Firestore wire values
// and documents.
//
// # Architecture Overview
//
//	firestorecodec/      Root package: Encode, Decode, ToDocument, FromDocument
//	├── transcoder/      Shape compiler, Encoder, Decoder and traversal protocol
//	├── timestamp/       UTC instant carried through the timestamp bridge
//	├── errors/          Structured error types
//	└── cmd/fsvalue/     Command line inspector
//
// # Quick Start
//
//	type City struct {
//	    Name       string   `firestore:"name"`
//	    Population uint32   `firestore:"population"`
//	    Aliases    []string `firestore:"aliases,omitempty"`
//	}
//
//	doc, err := firestorecodec.ToDocument(City{Name: "Oslo", Population: 709037})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	city, err := firestorecodec.FromDocument[City](doc)
//
// # Value Mapping
//
// Scalars map to their natural wire kinds. Slices and arrays become Array,
// structs and string-keyed maps become Map, pointers are optional values and
// nil encodes to Null. Three marker types shape structs further:
//
//	struct{ transcoder.Tuple; A int; B string }    [A, B]
//	struct{ transcoder.Newtype; V uint32 }         V
//	struct{ transcoder.Enum; X *int; Y *struct{} } {"type": "X", "value": 1} or "Y"
//
// See the transcoder package for the complete table.
//
// # Integers
//
// The wire integer is a signed 64-bit value. Encoding a uint64 above
// math.MaxInt64 fails with an outside_int_range error; decoding checks the
// target width and fails with int_range.
//
// # Timestamps
//
// time.Time, *timestamppb.Timestamp and timestamp.Timestamp all encode to the
// Timestamp wire kind.
package firestorecodec
