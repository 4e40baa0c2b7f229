package types

import (
	"reflect"
)

type CompiledType struct {
	GoType reflect.Type
	// Elem is the option target, list/tuple element, map value or newtype payload.
	Elem   *CompiledType
	Key    *CompiledType
	Cases  []Case
	Fields []Field
	// Name is the wrapper name for newtypes and the Go type name otherwise.
	Name string
	// Len is the element count of a fixed tuple.
	Len  int
	Kind Kind
	// Marshaler and Unmarshaler mark types that describe themselves.
	Marshaler   bool
	Unmarshaler bool
}

type Field struct {
	Type      *CompiledType
	Name      string
	GoName    string
	Index     int
	OmitEmpty bool
}

type Case struct {
	// Type is the payload type (the pointee of the case field).
	Type  *CompiledType
	Name  string
	Index int
	Shape VariantShape
}

func (ct *CompiledType) IsScalar() bool {
	return ct.Kind.IsScalar()
}

// FieldByName returns the field whose wire key is name.
func (ct *CompiledType) FieldByName(name string) (*Field, bool) {
	for i := range ct.Fields {
		if ct.Fields[i].Name == name {
			return &ct.Fields[i], true
		}
	}
	return nil, false
}

// CaseByName returns the enum case named name.
func (ct *CompiledType) CaseByName(name string) (*Case, bool) {
	for i := range ct.Cases {
		if ct.Cases[i].Name == name {
			return &ct.Cases[i], true
		}
	}
	return nil, false
}

// IsRecursive reports whether ct reaches itself through its children.
func (ct *CompiledType) IsRecursive() bool {
	return ct.reaches(ct, make(map[*CompiledType]bool))
}

func (ct *CompiledType) reaches(target *CompiledType, seen map[*CompiledType]bool) bool {
	if seen[ct] {
		return false
	}
	seen[ct] = true
	children := make([]*CompiledType, 0, 2+len(ct.Fields)+len(ct.Cases))
	children = append(children, ct.Elem, ct.Key)
	for _, f := range ct.Fields {
		children = append(children, f.Type)
	}
	for _, c := range ct.Cases {
		children = append(children, c.Type)
	}
	for _, child := range children {
		if child == nil {
			continue
		}
		if child == target || child.reaches(target, seen) {
			return true
		}
	}
	return false
}
