package types //nolint:revive // package name is used by internal consumers

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind Kind
	}{
		{"bool", KindBool},
		{"int8", KindInt8},
		{"int16", KindInt16},
		{"int32", KindInt32},
		{"int64", KindInt64},
		{"uint8", KindUint8},
		{"uint16", KindUint16},
		{"uint32", KindUint32},
		{"uint64", KindUint64},
		{"float32", KindFloat32},
		{"float64", KindFloat64},
		{"char", KindChar},
		{"string", KindString},
		{"bytes", KindBytes},
		{"option", KindOption},
		{"unit", KindUnit},
		{"unit_struct", KindUnitStruct},
		{"newtype", KindNewtype},
		{"seq", KindList},
		{"tuple", KindTuple},
		{"tuple_struct", KindTupleStruct},
		{"map", KindMap},
		{"struct", KindStruct},
		{"enum", KindEnum},
		{"any", KindInterface},
		{"unknown", Kind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindIsScalar(t *testing.T) {
	scalars := []Kind{
		KindBool, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64, KindChar, KindString, KindBytes,
	}
	for _, k := range scalars {
		if !k.IsScalar() {
			t.Errorf("%s should be scalar", k)
		}
	}

	aggregates := []Kind{
		KindOption, KindList, KindTuple, KindTupleStruct,
		KindMap, KindStruct, KindEnum, KindNewtype,
	}
	for _, k := range aggregates {
		if k.IsScalar() {
			t.Errorf("%s should not be scalar", k)
		}
	}
}

func TestKindBits(t *testing.T) {
	tests := []struct {
		kind     Kind
		want     int
		signed   bool
		unsigned bool
	}{
		{KindInt8, 8, true, false},
		{KindUint16, 16, false, true},
		{KindInt32, 32, true, false},
		{KindUint64, 64, false, true},
		{KindFloat64, 0, false, false},
		{KindString, 0, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.Bits(); got != tc.want {
				t.Errorf("Bits() = %d, want %d", got, tc.want)
			}
			if got := tc.kind.IsSigned(); got != tc.signed {
				t.Errorf("IsSigned() = %v, want %v", got, tc.signed)
			}
			if got := tc.kind.IsUnsigned(); got != tc.unsigned {
				t.Errorf("IsUnsigned() = %v, want %v", got, tc.unsigned)
			}
		})
	}
}

func TestVariantShapeString(t *testing.T) {
	tests := []struct {
		shape VariantShape
		want  string
	}{
		{ShapeUnit, "unit"},
		{ShapeNewtype, "newtype"},
		{ShapeTuple, "tuple"},
		{ShapeStruct, "struct"},
		{VariantShape(9), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.shape.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
