package numeric

import (
	"math"
	"testing"
)

func TestFitsSigned(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		bits int
		want bool
	}{
		{"int8 max", math.MaxInt8, 8, true},
		{"int8 min", math.MinInt8, 8, true},
		{"int8 over", math.MaxInt8 + 1, 8, false},
		{"int8 under", math.MinInt8 - 1, 8, false},
		{"int16 max", math.MaxInt16, 16, true},
		{"int16 over", math.MaxInt16 + 1, 16, false},
		{"int32 min", math.MinInt32, 32, true},
		{"int32 under", math.MinInt32 - 1, 32, false},
		{"int64 any", math.MinInt64, 64, true},
		{"bad width", 0, 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitsSigned(tt.v, tt.bits); got != tt.want {
				t.Errorf("FitsSigned(%d, %d) = %v, want %v", tt.v, tt.bits, got, tt.want)
			}
		})
	}
}

func TestFitsUnsigned(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		bits int
		want bool
	}{
		{"uint8 max", math.MaxUint8, 8, true},
		{"uint8 over", math.MaxUint8 + 1, 8, false},
		{"uint8 negative", -1, 8, false},
		{"uint16 max", math.MaxUint16, 16, true},
		{"uint16 over", math.MaxUint16 + 1, 16, false},
		{"uint32 max", math.MaxUint32, 32, true},
		{"uint32 over", math.MaxUint32 + 1, 32, false},
		{"uint64 max int64", math.MaxInt64, 64, true},
		{"uint64 negative", -1, 64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitsUnsigned(tt.v, tt.bits); got != tt.want {
				t.Errorf("FitsUnsigned(%d, %d) = %v, want %v", tt.v, tt.bits, got, tt.want)
			}
		})
	}
}

func TestUintToInt64(t *testing.T) {
	if v, ok := UintToInt64(math.MaxInt64); !ok || v != math.MaxInt64 {
		t.Errorf("UintToInt64(MaxInt64) = %d, %v", v, ok)
	}
	if _, ok := UintToInt64(math.MaxUint64); ok {
		t.Error("UintToInt64(MaxUint64) should fail")
	}
	if _, ok := UintToInt64(math.MaxInt64 + 1); ok {
		t.Error("UintToInt64(MaxInt64+1) should fail")
	}
}

func TestToFloat32(t *testing.T) {
	if got := ToFloat32(1.5); got != 1.5 {
		t.Errorf("ToFloat32(1.5) = %v", got)
	}
	if got := ToFloat32(math.MaxFloat64); !math.IsInf(float64(got), 1) {
		t.Errorf("ToFloat32(MaxFloat64) = %v, want +Inf", got)
	}
}
