package firestorecodec

import (
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"go.uber.org/zap"

	"github.com/wippyai/firestore-codec/transcoder"
)

// Reserved names of the wire conventions.
const (
	TimestampMarker = transcoder.TimestampMarker
	TypeField       = transcoder.TypeField
	ValueField      = transcoder.ValueField
	ValuesField     = transcoder.ValuesField
)

type (
	// Char is a single Unicode scalar; it encodes to a one-rune String.
	Char = transcoder.Char
	// Tuple marks a struct as an ordered aggregate.
	Tuple = transcoder.Tuple
	// Newtype marks a single-field struct as a transparent wrapper.
	Newtype = transcoder.Newtype
	// Enum marks a struct of pointer fields as a sum type.
	Enum = transcoder.Enum
)

var (
	compiler = transcoder.NewCompiler()
	encoder  = transcoder.NewEncoderWithCompiler(compiler)
	decoder  = transcoder.NewDecoderWithCompiler(compiler)
)

// Encode converts v to a wire value.
func Encode(v any) (*firestorepb.Value, error) {
	return encoder.Encode(v)
}

// Decode converts a wire value to a T.
func Decode[T any](v *firestorepb.Value) (T, error) {
	var out T
	err := decoder.Decode(v, &out)
	return out, err
}

// DecodeInto decodes v into out, which must be a non-nil pointer.
func DecodeInto(v *firestorepb.Value, out any) error {
	return decoder.Decode(v, out)
}

// SetLogger sets the logger used by the codec packages.
func SetLogger(l *zap.Logger) {
	transcoder.SetLogger(l)
}
