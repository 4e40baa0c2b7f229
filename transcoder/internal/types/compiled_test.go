package types

import (
	"reflect"
	"testing"
)

func TestCompiledTypeIsScalar(t *testing.T) {
	if !(&CompiledType{Kind: KindUint32}).IsScalar() {
		t.Error("uint32 should be scalar")
	}
	if (&CompiledType{Kind: KindStruct}).IsScalar() {
		t.Error("struct should not be scalar")
	}
}

func TestCompiledTypeFieldByName(t *testing.T) {
	ct := &CompiledType{
		Kind: KindStruct,
		Fields: []Field{
			{Name: "an_int", GoName: "AnInt", Index: 0, Type: &CompiledType{Kind: KindUint32}},
			{Name: "a_bool", GoName: "ABool", Index: 1, Type: &CompiledType{Kind: KindBool}},
		},
	}

	f, ok := ct.FieldByName("a_bool")
	if !ok {
		t.Fatal("a_bool not found")
	}
	if f.GoName != "ABool" || f.Index != 1 {
		t.Errorf("field = %+v, want ABool at 1", f)
	}
	if _, ok := ct.FieldByName("ABool"); ok {
		t.Error("lookup must use wire names")
	}
}

func TestCompiledTypeCaseByName(t *testing.T) {
	ct := &CompiledType{
		Kind: KindEnum,
		Cases: []Case{
			{Name: "Unit", Shape: ShapeUnit},
			{Name: "Wrapped", Shape: ShapeNewtype, Index: 1, Type: &CompiledType{Kind: KindUint32}},
		},
	}

	c, ok := ct.CaseByName("Wrapped")
	if !ok {
		t.Fatal("Wrapped not found")
	}
	if c.Shape != ShapeNewtype || c.Type.Kind != KindUint32 {
		t.Errorf("case = %+v", c)
	}
	if _, ok := ct.CaseByName("Missing"); ok {
		t.Error("unexpected case")
	}
}

func TestCompiledTypeIsRecursive(t *testing.T) {
	t.Run("flat", func(t *testing.T) {
		ct := &CompiledType{
			Kind:   KindStruct,
			Fields: []Field{{Type: &CompiledType{Kind: KindString}}},
		}
		if ct.IsRecursive() {
			t.Error("flat struct reported recursive")
		}
	})

	t.Run("self via option", func(t *testing.T) {
		node := &CompiledType{Kind: KindStruct, GoType: reflect.TypeOf(struct{}{})}
		opt := &CompiledType{Kind: KindOption, Elem: node}
		node.Fields = []Field{{Name: "next", Type: opt}}
		if !node.IsRecursive() {
			t.Error("linked node should be recursive")
		}
	})
}
