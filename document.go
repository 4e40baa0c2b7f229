package firestorecodec

import (
	"cloud.google.com/go/firestore/apiv1/firestorepb"

	"github.com/wippyai/firestore-codec/errors"
	"github.com/wippyai/firestore-codec/transcoder"
)

// ToDocument encodes v and wraps the resulting fields in a Document. v must
// encode to a Map; name, create and update times are left unset.
func ToDocument(v any) (*firestorepb.Document, error) {
	val, err := encoder.Encode(v)
	if err != nil {
		return nil, err
	}
	m, ok := val.GetValueType().(*firestorepb.Value_MapValue)
	if !ok || m.MapValue == nil {
		return nil, errors.NotAMap(transcoder.KindName(val))
	}
	return &firestorepb.Document{Fields: m.MapValue.GetFields()}, nil
}

// FromDocument decodes the fields of doc into a T.
func FromDocument[T any](doc *firestorepb.Document) (T, error) {
	var out T
	err := FromDocumentInto(doc, &out)
	return out, err
}

// FromDocumentInto decodes the fields of doc into out. Document metadata is
// ignored.
func FromDocumentInto(doc *firestorepb.Document, out any) error {
	return decoder.Decode(documentValue(doc), out)
}

func documentValue(doc *firestorepb.Document) *firestorepb.Value {
	return &firestorepb.Value{ValueType: &firestorepb.Value_MapValue{
		MapValue: &firestorepb.MapValue{Fields: doc.GetFields()},
	}}
}
