package types

type Kind uint8

const (
	KindBool Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindChar
	KindString
	KindBytes
	KindOption
	KindUnit
	KindUnitStruct
	KindNewtype
	KindList
	KindTuple
	KindTupleStruct
	KindMap
	KindStruct
	KindEnum
	KindInterface
	KindTime
	KindTimestamp
	KindRaw
	KindUnsupported
)

var kindNames = [...]string{
	KindBool:        "bool",
	KindInt8:        "int8",
	KindInt16:       "int16",
	KindInt32:       "int32",
	KindInt64:       "int64",
	KindUint8:       "uint8",
	KindUint16:      "uint16",
	KindUint32:      "uint32",
	KindUint64:      "uint64",
	KindFloat32:     "float32",
	KindFloat64:     "float64",
	KindChar:        "char",
	KindString:      "string",
	KindBytes:       "bytes",
	KindOption:      "option",
	KindUnit:        "unit",
	KindUnitStruct:  "unit_struct",
	KindNewtype:     "newtype",
	KindList:        "seq",
	KindTuple:       "tuple",
	KindTupleStruct: "tuple_struct",
	KindMap:         "map",
	KindStruct:      "struct",
	KindEnum:        "enum",
	KindInterface:   "any",
	KindTime:        "timestamp",
	KindTimestamp:   "timestamp",
	KindRaw:         "value",
	KindUnsupported: "unsupported",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether k maps to a single non-aggregate wire value.
func (k Kind) IsScalar() bool {
	return k <= KindBytes
}

func (k Kind) IsSigned() bool {
	return k >= KindInt8 && k <= KindInt64
}

func (k Kind) IsUnsigned() bool {
	return k >= KindUint8 && k <= KindUint64
}

// Bits returns the integer width of k, or 0 for non-integer kinds.
func (k Kind) Bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	default:
		return 0
	}
}

// VariantShape is the payload shape of one enum case.
type VariantShape uint8

const (
	ShapeUnit VariantShape = iota
	ShapeNewtype
	ShapeTuple
	ShapeStruct
)

var shapeNames = [...]string{
	ShapeUnit:    "unit",
	ShapeNewtype: "newtype",
	ShapeTuple:   "tuple",
	ShapeStruct:  "struct",
}

func (s VariantShape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}
