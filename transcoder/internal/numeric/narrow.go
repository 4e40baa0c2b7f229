package numeric

import "math"

// FitsSigned reports whether v fits a signed integer of the given width.
func FitsSigned(v int64, bits int) bool {
	switch bits {
	case 8:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case 16:
		return v >= math.MinInt16 && v <= math.MaxInt16
	case 32:
		return v >= math.MinInt32 && v <= math.MaxInt32
	case 64:
		return true
	}
	return false
}

// FitsUnsigned reports whether v fits an unsigned integer of the given width.
func FitsUnsigned(v int64, bits int) bool {
	if v < 0 {
		return false
	}
	switch bits {
	case 8:
		return v <= math.MaxUint8
	case 16:
		return v <= math.MaxUint16
	case 32:
		return v <= math.MaxUint32
	case 64:
		return true
	}
	return false
}

// UintToInt64 widens an unsigned value into the signed wire range.
func UintToInt64(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// ToFloat32 narrows a double. Values outside the float32 range become
// infinities.
func ToFloat32(v float64) float32 {
	return float32(v)
}
