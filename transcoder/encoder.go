package transcoder

import (
	"reflect"
	"strconv"
	"time"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/wippyai/firestore-codec/errors"
)

// Encoder turns Go values into wire values. It holds no per-call state and is
// safe for concurrent use.
type Encoder struct {
	compiler *Compiler
}

func NewEncoder() *Encoder {
	return &Encoder{compiler: NewCompiler()}
}

func NewEncoderWithCompiler(c *Compiler) *Encoder {
	return &Encoder{compiler: c}
}

// Compiler returns the compiler backing e.
func (e *Encoder) Compiler() *Compiler {
	return e.compiler
}

// Encode returns a fresh wire value for v. A nil v encodes as Null.
func (e *Encoder) Encode(v any) (*firestorepb.Value, error) {
	return e.encodeAny(v, nil)
}

// EncodeWithType encodes v using a plan compiled beforehand.
func (e *Encoder) EncodeWithType(ct *CompiledType, v any) (*firestorepb.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nullValue(), nil
	}
	if rv.Type() != ct.GoType {
		return nil, errors.New(errors.PhaseEncode, errors.KindMessage).
			GoType(rv.Type().String()).
			Expected(ct.GoType.String()).
			Detail("value does not match compiled type").
			Build()
	}
	return e.encodeValue(ct, rv, nil)
}

func (e *Encoder) encodeAny(v any, path []string) (*firestorepb.Value, error) {
	if v == nil {
		return nullValue(), nil
	}
	rv := reflect.ValueOf(v)
	ct, err := e.compiler.Compile(rv.Type())
	if err != nil {
		return nil, err
	}
	return e.encodeValue(ct, rv, path)
}

func (e *Encoder) encodeValue(ct *CompiledType, rv reflect.Value, path []string) (*firestorepb.Value, error) {
	s := &serializer{e: e, path: path}

	if ct.Marshaler {
		return e.encodeCustom(s, rv)
	}

	switch ct.Kind {
	case KindBool:
		return s.SerializeBool(rv.Bool())
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return s.SerializeInt(rv.Int())
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return s.SerializeUint(rv.Uint())
	case KindFloat32:
		return s.SerializeFloat32(float32(rv.Float()))
	case KindFloat64:
		return s.SerializeFloat64(rv.Float())
	case KindChar:
		return s.SerializeChar(rune(rv.Int()))
	case KindString:
		return s.SerializeString(rv.String())
	case KindBytes:
		return s.SerializeBytes(rv.Bytes())

	case KindOption:
		if rv.IsNil() {
			return s.SerializeNone()
		}
		return e.encodeValue(ct.Elem, rv.Elem(), path)

	case KindUnit:
		return s.SerializeUnit()
	case KindUnitStruct:
		return s.SerializeUnitStruct(ct.Name)

	case KindNewtype:
		inner := rv.Field(ct.Fields[0].Index)
		if ct.Name == TimestampMarker {
			return s.SerializeNewtype(ct.Name, inner.Interface())
		}
		return e.encodeValue(ct.Elem, inner, path)

	case KindList:
		return e.encodeElements(s.SerializeSeq(rv.Len()), ct.Elem, rv)
	case KindTuple:
		return e.encodeElements(s.SerializeTuple(ct.Len), ct.Elem, rv)
	case KindTupleStruct:
		return e.encodeTupleFields(s.SerializeTupleStruct(ct.Name, len(ct.Fields)), ct, rv)

	case KindMap:
		return e.encodeMap(s, ct, rv)
	case KindStruct:
		b := s.SerializeStruct(ct.Name, len(ct.Fields))
		if err := e.encodeStructFields(b, ct, rv); err != nil {
			return nil, err
		}
		return b.End()
	case KindEnum:
		return e.encodeEnum(s, ct, rv)

	case KindInterface:
		if rv.IsNil() {
			return s.SerializeNone()
		}
		return e.encodeAny(rv.Elem().Interface(), path)

	case KindTime:
		t := rv.Interface().(time.Time)
		return s.SerializeTimestamp(t.Unix(), int32(t.Nanosecond()))
	case KindTimestamp:
		if rv.IsNil() {
			return s.SerializeNone()
		}
		ts := rv.Interface().(*timestamppb.Timestamp)
		return s.SerializeTimestamp(ts.GetSeconds(), ts.GetNanos())
	case KindRaw:
		if rv.IsNil() {
			return s.SerializeNone()
		}
		return proto.Clone(rv.Interface().(*firestorepb.Value)).(*firestorepb.Value), nil

	default:
		return nil, errors.Unrepresentable(errors.PhaseEncode, path, ct.GoType.Kind().String())
	}
}

func (e *Encoder) encodeCustom(s *serializer, rv reflect.Value) (*firestorepb.Value, error) {
	m, ok := rv.Interface().(ShapeMarshaler)
	if !ok {
		// pointer receiver on a non-addressable value
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		m = ptr.Interface().(ShapeMarshaler)
	}
	v, err := m.MarshalShape(s)
	if err != nil {
		return nil, attachPath(err, s.path)
	}
	if v == nil {
		return nil, errors.Message(errors.PhaseEncode, s.path, "%s.MarshalShape returned no value", rv.Type())
	}
	return v, nil
}

func (e *Encoder) encodeElements(b *ArrayBuilder, elem *CompiledType, rv reflect.Value) (*firestorepb.Value, error) {
	for i := 0; i < rv.Len(); i++ {
		v, err := e.encodeValue(elem, rv.Index(i), b.s.child(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		b.push(v)
	}
	return b.End()
}

func (e *Encoder) encodeTupleFields(b *ArrayBuilder, ct *CompiledType, rv reflect.Value) (*firestorepb.Value, error) {
	for i, f := range ct.Fields {
		v, err := e.encodeValue(f.Type, rv.Field(f.Index), b.s.child(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		b.push(v)
	}
	return b.End()
}

func (e *Encoder) encodeStructFields(b *StructBuilder, ct *CompiledType, rv reflect.Value) error {
	for _, f := range ct.Fields {
		fv := rv.Field(f.Index)
		if f.OmitEmpty && fv.IsZero() {
			continue
		}
		v, err := e.encodeValue(f.Type, fv, b.s.child(f.Name))
		if err != nil {
			return err
		}
		b.push(f.Name, v)
	}
	return nil
}

func (e *Encoder) encodeMap(s *serializer, ct *CompiledType, rv reflect.Value) (*firestorepb.Value, error) {
	b := s.SerializeMap(rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := e.encodeValue(ct.Key, iter.Key(), s.child("[key]"))
		if err != nil {
			return nil, err
		}
		if err := b.pushKey(k); err != nil {
			return nil, err
		}
		v, err := e.encodeValue(ct.Elem, iter.Value(), s.child(*b.pending))
		if err != nil {
			return nil, err
		}
		b.pushValue(v)
	}
	return b.End()
}

func (e *Encoder) encodeEnum(s *serializer, ct *CompiledType, rv reflect.Value) (*firestorepb.Value, error) {
	var active *CompiledCase
	for i := range ct.Cases {
		if rv.Field(ct.Cases[i].Index).IsNil() {
			continue
		}
		if active != nil {
			return nil, errors.Message(errors.PhaseEncode, s.path,
				"enum %s has more than one variant set (%s, %s)", ct.GoType, active.Name, ct.Cases[i].Name)
		}
		active = &ct.Cases[i]
	}
	if active == nil {
		return nil, errors.Message(errors.PhaseEncode, s.path, "enum %s has no variant set", ct.GoType)
	}

	payload := rv.Field(active.Index).Elem()
	switch active.Shape {
	case ShapeUnit:
		return s.SerializeUnitVariant(ct.Name, active.Index, active.Name)
	case ShapeNewtype:
		v, err := e.encodeValue(active.Type, payload, s.child(active.Name))
		if err != nil {
			return nil, err
		}
		return VariantToValue(ShapeNewtype, active.Name, v), nil
	case ShapeTuple:
		b := s.SerializeTupleVariant(ct.Name, active.Index, active.Name, len(active.Type.Fields))
		for i, f := range active.Type.Fields {
			v, err := e.encodeValue(f.Type, payload.Field(f.Index), b.s.child(strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			b.push(v)
		}
		return b.End()
	default:
		b := s.SerializeStructVariant(ct.Name, active.Index, active.Name, len(active.Type.Fields))
		if err := e.encodeStructFields(b.StructBuilder, active.Type, payload); err != nil {
			return nil, err
		}
		return b.End()
	}
}

// attachPath roots a path-less codec error returned by a custom hook at path.
func attachPath(err error, path []string) error {
	if ce, ok := err.(*errors.Error); ok {
		return ce.WithPath(path)
	}
	return err
}
