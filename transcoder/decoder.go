package transcoder

import (
	"reflect"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/protobuf/proto"

	"github.com/wippyai/firestore-codec/errors"
)

// Decoder rebuilds Go values from wire values. It holds no per-call state and
// is safe for concurrent use.
type Decoder struct {
	compiler *Compiler
}

func NewDecoder() *Decoder {
	return &Decoder{compiler: NewCompiler()}
}

func NewDecoderWithCompiler(c *Compiler) *Decoder {
	return &Decoder{compiler: c}
}

// Compiler returns the compiler backing d.
func (d *Decoder) Compiler() *Compiler {
	return d.compiler
}

// Decode decodes v into out, which must be a non-nil pointer. The pointee is
// overwritten; struct fields absent from v are left at their zero value.
func (d *Decoder) Decode(v *firestorepb.Value, out any) error {
	return d.decodeInto(v, out, nil)
}

// DecodeWithType decodes v into out using a plan compiled beforehand for the
// pointee type of out.
func (d *Decoder) DecodeWithType(ct *CompiledType, v *firestorepb.Value, out any) error {
	rv, err := targetOf(out, nil)
	if err != nil {
		return err
	}
	if rv.Type() != ct.GoType {
		return errors.New(errors.PhaseDecode, errors.KindMessage).
			GoType(rv.Type().String()).
			Expected(ct.GoType.String()).
			Detail("target does not match compiled type").
			Build()
	}
	return d.decodeValue(ct, v, rv, nil)
}

func targetOf(out any, path []string) (reflect.Value, error) {
	rv := reflect.ValueOf(out)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, errors.Message(errors.PhaseDecode, path,
			"decode target must be a non-nil pointer, got %T", out)
	}
	return rv.Elem(), nil
}

func (d *Decoder) decodeInto(v *firestorepb.Value, out any, path []string) error {
	rv, err := targetOf(out, path)
	if err != nil {
		return err
	}
	ct, err := d.compiler.Compile(rv.Type())
	if err != nil {
		return err
	}
	return d.decodeValue(ct, v, rv, path)
}

// decodeValue decodes v into the settable rv.
func (d *Decoder) decodeValue(ct *CompiledType, v *firestorepb.Value, rv reflect.Value, path []string) error {
	de := &deserializer{d: d, v: v, path: path}

	if ct.Unmarshaler {
		u := rv.Addr().Interface().(ShapeUnmarshaler)
		return attachPath(u.UnmarshalShape(de), path)
	}

	switch ct.Kind {
	case KindBool:
		b, err := de.DeserializeBool()
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		n, err := de.DeserializeInt(ct.Kind)
		if err != nil {
			return err
		}
		rv.SetInt(n)
	case KindUint8, KindUint16, KindUint32, KindUint64:
		n, err := de.DeserializeUint(ct.Kind)
		if err != nil {
			return err
		}
		rv.SetUint(n)
	case KindFloat32:
		f, err := de.DeserializeFloat32()
		if err != nil {
			return err
		}
		rv.SetFloat(float64(f))
	case KindFloat64:
		f, err := de.DeserializeFloat64()
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	case KindChar:
		r, err := de.DeserializeChar()
		if err != nil {
			return err
		}
		rv.SetInt(int64(r))
	case KindString:
		s, err := de.DeserializeString()
		if err != nil {
			return err
		}
		rv.SetString(s)
	case KindBytes:
		b, err := de.DeserializeByteBuf()
		if err != nil {
			return err
		}
		rv.SetBytes(b)

	case KindOption:
		some, err := de.DeserializeOption()
		if err != nil {
			return err
		}
		if !some {
			rv.Set(reflect.Zero(ct.GoType))
			return nil
		}
		ptr := reflect.New(ct.GoType.Elem())
		if err := d.decodeValue(ct.Elem, v, ptr.Elem(), path); err != nil {
			return err
		}
		rv.Set(ptr)

	case KindUnit:
		return de.DeserializeUnit()
	case KindUnitStruct:
		return de.DeserializeUnitStruct(ct.Name)
	case KindNewtype:
		return d.decodeValue(ct.Elem, v, rv.Field(ct.Fields[0].Index), path)

	case KindList:
		elems, err := de.DeserializeSeq()
		if err != nil {
			return err
		}
		slice := reflect.MakeSlice(ct.GoType, len(elems), len(elems))
		if err := d.decodeElements(ct.Elem, elems, slice, path); err != nil {
			return err
		}
		rv.Set(slice)
	case KindTuple:
		elems, err := de.DeserializeTuple(ct.Len)
		if err != nil {
			return err
		}
		arr := reflect.New(ct.GoType).Elem()
		if err := d.decodeElements(ct.Elem, elems, arr, path); err != nil {
			return err
		}
		rv.Set(arr)
	case KindTupleStruct:
		elems, err := de.DeserializeTupleStruct(ct.Name, len(ct.Fields))
		if err != nil {
			return err
		}
		return d.decodeTupleFields(ct, elems, rv, path)

	case KindMap:
		fields, err := de.DeserializeMap()
		if err != nil {
			return err
		}
		return d.decodeMap(ct, fields, rv, path)
	case KindStruct:
		fields, err := de.DeserializeStruct(ct.Name, fieldNames(ct))
		if err != nil {
			return err
		}
		return d.decodeStructFields(ct, fields, rv, path)
	case KindEnum:
		return d.decodeEnum(de, ct, rv)

	case KindInterface:
		_, err := de.DeserializeAny()
		return err

	case KindTime:
		ts, err := de.DeserializeTimestamp()
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(ts.AsTime()))
	case KindTimestamp:
		some, err := de.DeserializeOption()
		if err != nil {
			return err
		}
		if !some {
			rv.Set(reflect.Zero(ct.GoType))
			return nil
		}
		ts, err := de.DeserializeTimestamp()
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(ts))
	case KindRaw:
		if KindName(v) == "malformed" {
			return de.wrongType("value")
		}
		rv.Set(reflect.ValueOf(proto.Clone(v)))

	default:
		return errors.Unrepresentable(errors.PhaseDecode, path, ct.GoType.Kind().String())
	}
	return nil
}

func (d *Decoder) decodeElements(elem *CompiledType, elems []*firestorepb.Value, dst reflect.Value, path []string) error {
	for i, ev := range elems {
		if err := d.decodeValue(elem, ev, dst.Index(i), childPath(path, indexSegment(i))); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) decodeTupleFields(ct *CompiledType, elems []*firestorepb.Value, rv reflect.Value, path []string) error {
	out := reflect.New(ct.GoType).Elem()
	for i, f := range ct.Fields {
		if err := d.decodeValue(f.Type, elems[i], out.Field(f.Index), childPath(path, indexSegment(i))); err != nil {
			return err
		}
	}
	rv.Set(out)
	return nil
}

func (d *Decoder) decodeMap(ct *CompiledType, fields map[string]*firestorepb.Value, rv reflect.Value, path []string) error {
	m := reflect.MakeMapWithSize(ct.GoType, len(fields))
	for _, key := range SortedKeys(fields) {
		kv := reflect.New(ct.GoType.Key()).Elem()
		if err := d.decodeValue(ct.Key, stringValue(key), kv, childPath(path, "[key]")); err != nil {
			return err
		}
		vv := reflect.New(ct.GoType.Elem()).Elem()
		if err := d.decodeValue(ct.Elem, fields[key], vv, childPath(path, key)); err != nil {
			return err
		}
		m.SetMapIndex(kv, vv)
	}
	rv.Set(m)
	return nil
}

// decodeStructFields fills declared fields in order; unknown keys are ignored.
func (d *Decoder) decodeStructFields(ct *CompiledType, fields map[string]*firestorepb.Value, rv reflect.Value, path []string) error {
	out := reflect.New(ct.GoType).Elem()
	for _, f := range ct.Fields {
		fv, ok := fields[f.Name]
		if !ok {
			continue
		}
		if err := d.decodeValue(f.Type, fv, out.Field(f.Index), childPath(path, f.Name)); err != nil {
			return err
		}
	}
	rv.Set(out)
	return nil
}

func (d *Decoder) decodeEnum(de *deserializer, ct *CompiledType, rv reflect.Value) error {
	access, err := de.DeserializeEnum(ct.Name, caseNames(ct))
	if err != nil {
		return err
	}
	c, ok := ct.CaseByName(access.Variant())
	if !ok {
		return errors.Message(errors.PhaseDecode, de.path, "unknown variant %q for %s", access.Variant(), ct.GoType)
	}

	ptr := reflect.New(c.Type.GoType)
	switch c.Shape {
	case ShapeUnit:
		if err := access.UnitVariant(); err != nil {
			return err
		}
	case ShapeNewtype:
		pde, err := access.requirePayload()
		if err != nil {
			return err
		}
		if err := d.decodeValue(c.Type, pde.v, ptr.Elem(), pde.path); err != nil {
			return err
		}
	case ShapeTuple:
		elems, err := access.TupleVariant(len(c.Type.Fields))
		if err != nil {
			return err
		}
		if err := d.decodeTupleFields(c.Type, elems, ptr.Elem(), access.payloadPath()); err != nil {
			return err
		}
	case ShapeStruct:
		fields, err := access.StructVariant(fieldNames(c.Type))
		if err != nil {
			return err
		}
		if err := d.decodeStructFields(c.Type, fields, ptr.Elem(), access.payloadPath()); err != nil {
			return err
		}
	}

	out := reflect.New(ct.GoType).Elem()
	out.Field(c.Index).Set(ptr)
	rv.Set(out)
	return nil
}

func fieldNames(ct *CompiledType) []string {
	names := make([]string, len(ct.Fields))
	for i, f := range ct.Fields {
		names[i] = f.Name
	}
	return names
}

func caseNames(ct *CompiledType) []string {
	names := make([]string, len(ct.Cases))
	for i, c := range ct.Cases {
		names[i] = c.Name
	}
	return names
}

func childPath(path []string, segment string) []string {
	return append(append([]string{}, path...), segment)
}
