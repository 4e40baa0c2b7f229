package firestorecodec

import (
	stderrors "errors"
	"math"
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/protobuf/proto"

	"github.com/wippyai/firestore-codec/errors"
	"github.com/wippyai/firestore-codec/timestamp"
)

type city struct {
	Name       string              `firestore:"name"`
	Population uint32              `firestore:"population"`
	Aliases    []string            `firestore:"aliases,omitempty"`
	Capital    bool                `firestore:"capital"`
	Founded    timestamp.Timestamp `firestore:"founded"`
	Internal   string              `firestore:"-"`
}

func TestEncodeDecode(t *testing.T) {
	in := city{
		Name:       "Oslo",
		Population: 709037,
		Aliases:    []string{"Christiania"},
		Capital:    true,
		Founded:    timestamp.New(time.Date(1048, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	v, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	fields := v.GetMapValue().GetFields()
	if len(fields) != 5 {
		t.Errorf("len(fields) = %d, want 5", len(fields))
	}
	if fields["founded"].GetTimestampValue() == nil {
		t.Errorf("founded = %v, want a timestamp", fields["founded"])
	}

	out, err := Decode[city](v)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("Decode = %+v, want %+v", out, in)
	}

	var into city
	if err := DecodeInto(v, &into); err != nil {
		t.Fatalf("DecodeInto failed: %v", err)
	}
	if !reflect.DeepEqual(into, in) {
		t.Errorf("DecodeInto = %+v, want %+v", into, in)
	}
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(uint64(math.MaxUint64))
	if !stderrors.Is(err, errors.New(errors.PhaseEncode, errors.KindOutsideIntRange).Build()) {
		t.Errorf("Encode error = %v, want outside_int_range", err)
	}

	_, err = Decode[int8](&firestorepb.Value{ValueType: &firestorepb.Value_IntegerValue{IntegerValue: 128}})
	if !stderrors.Is(err, errors.New(errors.PhaseDecode, errors.KindIntRange).Build()) {
		t.Errorf("Decode error = %v, want int_range", err)
	}
}

func TestToDocument(t *testing.T) {
	doc, err := ToDocument(city{Name: "Bergen", Population: 291940})
	if err != nil {
		t.Fatalf("ToDocument failed: %v", err)
	}
	if doc.GetName() != "" || doc.GetCreateTime() != nil || doc.GetUpdateTime() != nil {
		t.Errorf("document metadata should be unset: %v", doc)
	}
	if doc.GetFields()["name"].GetStringValue() != "Bergen" {
		t.Errorf("name = %v, want Bergen", doc.GetFields()["name"])
	}
	if _, ok := doc.GetFields()["aliases"]; ok {
		t.Error("empty aliases should be omitted")
	}

	back, err := FromDocument[city](doc)
	if err != nil {
		t.Fatalf("FromDocument failed: %v", err)
	}
	if back.Name != "Bergen" || back.Population != 291940 {
		t.Errorf("FromDocument = %+v", back)
	}
}

func TestToDocument_NotAMap(t *testing.T) {
	tests := []struct {
		value  any
		actual string
		name   string
	}{
		{int64(3), "integer", "integer"},
		{"text", "string", "string"},
		{[]int{1}, "array", "array"},
		{nil, "null", "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToDocument(tt.value)
			ce, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("error %v is %T, want *errors.Error", err, err)
			}
			if ce.Kind != errors.KindNotAMap {
				t.Errorf("Kind = %s, want not_a_map", ce.Kind)
			}
			if ce.Actual != tt.actual {
				t.Errorf("Actual = %q, want %q", ce.Actual, tt.actual)
			}
		})
	}

	doc, err := ToDocument(map[string]int{})
	if err != nil {
		t.Fatalf("ToDocument(empty map) failed: %v", err)
	}
	if len(doc.GetFields()) != 0 {
		t.Errorf("fields = %v, want none", doc.GetFields())
	}
}

func TestFromDocument_IgnoresMetadata(t *testing.T) {
	doc := &firestorepb.Document{
		Name: "projects/p/databases/(default)/documents/cities/osl",
		Fields: map[string]*firestorepb.Value{
			"name":  {ValueType: &firestorepb.Value_StringValue{StringValue: "Oslo"}},
			"extra": {ValueType: &firestorepb.Value_BooleanValue{BooleanValue: true}},
		},
	}

	var out city
	if err := FromDocumentInto(doc, &out); err != nil {
		t.Fatalf("FromDocumentInto failed: %v", err)
	}
	if out.Name != "Oslo" {
		t.Errorf("Name = %q, want Oslo", out.Name)
	}

	empty, err := FromDocument[map[string]string](&firestorepb.Document{})
	if err != nil {
		t.Fatalf("FromDocument(empty) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("FromDocument(empty) = %v", empty)
	}
}

func TestMarkers(t *testing.T) {
	type shape struct {
		Enum
		Point  *struct{} `firestore:"point"`
		Circle *float64  `firestore:"circle"`
	}
	type pair struct {
		Tuple
		A Char
		B int
	}

	v, err := Encode([]any{shape{Circle: new(float64)}, pair{A: 'q', B: 2}})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := &firestorepb.Value{ValueType: &firestorepb.Value_ArrayValue{ArrayValue: &firestorepb.ArrayValue{
		Values: []*firestorepb.Value{
			{ValueType: &firestorepb.Value_MapValue{MapValue: &firestorepb.MapValue{Fields: map[string]*firestorepb.Value{
				TypeField:  {ValueType: &firestorepb.Value_StringValue{StringValue: "circle"}},
				ValueField: {ValueType: &firestorepb.Value_DoubleValue{DoubleValue: 0}},
			}}}},
			{ValueType: &firestorepb.Value_ArrayValue{ArrayValue: &firestorepb.ArrayValue{Values: []*firestorepb.Value{
				{ValueType: &firestorepb.Value_StringValue{StringValue: "q"}},
				{ValueType: &firestorepb.Value_IntegerValue{IntegerValue: 2}},
			}}}},
		},
	}}}
	if !proto.Equal(v, want) {
		t.Errorf("Encode = %v, want %v", v, want)
	}
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	type fresh struct {
		N int `firestore:"n"`
	}
	if _, err := Encode(fresh{N: 1}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if logs.FilterMessage("compiled shape plan").Len() == 0 {
		t.Error("expected a compile log entry")
	}
}

func TestToDocument_AllFieldsSkipped(t *testing.T) {
	type draft struct {
		Body string `firestore:"-"`
	}
	doc, err := ToDocument(draft{Body: "x"})
	if err != nil {
		t.Fatalf("ToDocument failed: %v", err)
	}
	if len(doc.GetFields()) != 0 {
		t.Errorf("fields = %v, want none", doc.GetFields())
	}
}
