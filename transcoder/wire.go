package transcoder

import (
	"sort"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func nullValue() *firestorepb.Value {
	return &firestorepb.Value{ValueType: &firestorepb.Value_NullValue{NullValue: structpb.NullValue_NULL_VALUE}}
}

func boolValue(v bool) *firestorepb.Value {
	return &firestorepb.Value{ValueType: &firestorepb.Value_BooleanValue{BooleanValue: v}}
}

func intValue(v int64) *firestorepb.Value {
	return &firestorepb.Value{ValueType: &firestorepb.Value_IntegerValue{IntegerValue: v}}
}

func doubleValue(v float64) *firestorepb.Value {
	return &firestorepb.Value{ValueType: &firestorepb.Value_DoubleValue{DoubleValue: v}}
}

func stringValue(v string) *firestorepb.Value {
	return &firestorepb.Value{ValueType: &firestorepb.Value_StringValue{StringValue: v}}
}

func bytesValue(v []byte) *firestorepb.Value {
	cp := make([]byte, len(v))
	copy(cp, v)
	return &firestorepb.Value{ValueType: &firestorepb.Value_BytesValue{BytesValue: cp}}
}

func timestampValue(seconds int64, nanos int32) *firestorepb.Value {
	return &firestorepb.Value{ValueType: &firestorepb.Value_TimestampValue{
		TimestampValue: &timestamppb.Timestamp{Seconds: seconds, Nanos: nanos},
	}}
}

func arrayValue(values []*firestorepb.Value) *firestorepb.Value {
	return &firestorepb.Value{ValueType: &firestorepb.Value_ArrayValue{
		ArrayValue: &firestorepb.ArrayValue{Values: values},
	}}
}

func mapValue(fields map[string]*firestorepb.Value) *firestorepb.Value {
	return &firestorepb.Value{ValueType: &firestorepb.Value_MapValue{
		MapValue: &firestorepb.MapValue{Fields: fields},
	}}
}

// KindName names the populated kind of v for diagnostics. Values with no kind
// populated, or whose oneof wrapper holds a nil message, are "malformed".
func KindName(v *firestorepb.Value) string {
	if v == nil {
		return "malformed"
	}
	switch t := v.GetValueType().(type) {
	case *firestorepb.Value_NullValue:
		return "null"
	case *firestorepb.Value_BooleanValue:
		return "boolean"
	case *firestorepb.Value_IntegerValue:
		return "integer"
	case *firestorepb.Value_DoubleValue:
		return "double"
	case *firestorepb.Value_TimestampValue:
		if t.TimestampValue == nil {
			return "malformed"
		}
		return "timestamp"
	case *firestorepb.Value_StringValue:
		return "string"
	case *firestorepb.Value_BytesValue:
		return "bytes"
	case *firestorepb.Value_ReferenceValue:
		return "reference"
	case *firestorepb.Value_GeoPointValue:
		if t.GeoPointValue == nil {
			return "malformed"
		}
		return "geo_point"
	case *firestorepb.Value_ArrayValue:
		if t.ArrayValue == nil {
			return "malformed"
		}
		return "array"
	case *firestorepb.Value_MapValue:
		if t.MapValue == nil {
			return "malformed"
		}
		return "map"
	case nil:
		return "malformed"
	default:
		return "unsupported"
	}
}

// SortedKeys returns the keys of a wire map in lexical order.
func SortedKeys(fields map[string]*firestorepb.Value) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
