package transcoder

import (
	"cloud.google.com/go/firestore/apiv1/firestorepb"

	"github.com/wippyai/firestore-codec/errors"
)

// VariantToValue wraps an encoded payload in the enum envelope for shape.
// The payload is ignored for unit variants.
//
//	unit     String(variant)
//	newtype  {"type": variant, "value": payload}
//	tuple    {"type": variant, "values": payload}
//	struct   {"type": variant, "values": payload}
func VariantToValue(shape VariantShape, variant string, payload *firestorepb.Value) *firestorepb.Value {
	if shape == ShapeUnit {
		return stringValue(variant)
	}
	key := ValuesField
	if shape == ShapeNewtype {
		key = ValueField
	}
	return mapValue(map[string]*firestorepb.Value{
		TypeField: stringValue(variant),
		key:       payload,
	})
}

// ValueToVariant splits an enum wire value into its variant name and payload.
// A String source is a unit variant and yields a nil payload. For a Map
// source "value" is consulted before "values". Returned errors carry no path.
func ValueToVariant(v *firestorepb.Value) (string, *firestorepb.Value, error) {
	switch t := v.GetValueType().(type) {
	case *firestorepb.Value_StringValue:
		return t.StringValue, nil, nil
	case *firestorepb.Value_MapValue:
		if t.MapValue == nil {
			break
		}
		fields := t.MapValue.GetFields()

		tag, ok := fields[TypeField]
		if !ok {
			return "", nil, errors.MissingField(nil, TypeField)
		}
		name, ok := tag.GetValueType().(*firestorepb.Value_StringValue)
		if !ok {
			return "", nil, errors.WrongType(nil, "string", KindName(tag), tag)
		}

		if payload, ok := fields[ValueField]; ok {
			return name.StringValue, payload, nil
		}
		if payload, ok := fields[ValuesField]; ok {
			return name.StringValue, payload, nil
		}
		return "", nil, errors.MissingField(nil, ValueField)
	}
	return "", nil, errors.WrongType(nil, "enum", KindName(v), v)
}
