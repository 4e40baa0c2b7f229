package transcoder

import (
	"reflect"
	"testing"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/protobuf/proto"

	"github.com/wippyai/firestore-codec/errors"
)

type JustAnEnum struct {
	Enum
	TagUnitVariant  *struct{}             `firestore:"TagUnitVariant"`
	ANewtypeVariant *uint32               `firestore:"ANewtypeVariant"`
	ATupleVariant   *TupleVariantPayload  `firestore:"ATupleVariant"`
	ARecordVariant  *RecordVariantPayload `firestore:"ARecordVariant"`
}

type TupleVariantPayload struct {
	Tuple
	A uint8
	B bool
}

type RecordVariantPayload struct {
	AnInt uint32 `firestore:"an_int"`
	ABool bool   `firestore:"a_bool"`
}

type JustATupleStruct struct {
	Tuple
	A uint32
	B bool
	C string
}

type ARecordStruct struct {
	AnInt   uint32 `firestore:"an_int"`
	ABool   bool   `firestore:"a_bool"`
	Skipped string `firestore:"-"`
}

type ANewtypeStruct struct {
	Newtype
	Value uint32
}

type EmptyStruct struct{}

type sealedNote struct {
	Secret string `firestore:"-"`
}

type stamp struct {
	Newtype `firestore:"$TimestampValue"`
	Raw     []byte
}

type octet uint8

type linkedNode struct {
	Value int64       `firestore:"value"`
	Next  *linkedNode `firestore:"next"`
}

func ptr[T any](v T) *T {
	return &v
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func requireKind(t *testing.T, err error, kind errors.Kind) *errors.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	ce, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error %v is %T, want *errors.Error", err, err)
	}
	if ce.Kind != kind {
		t.Fatalf("Kind = %s, want %s (%v)", ce.Kind, kind, err)
	}
	return ce
}

func requireEqual(t *testing.T, got, want *firestorepb.Value) {
	t.Helper()
	if !proto.Equal(got, want) {
		t.Errorf("value = %v, want %v", got, want)
	}
}

func mustEncode(t *testing.T, v any) *firestorepb.Value {
	t.Helper()
	val, err := NewEncoder().Encode(v)
	if err != nil {
		t.Fatalf("Encode(%#v) failed: %v", v, err)
	}
	return val
}
