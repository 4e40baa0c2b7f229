package transcoder

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/wippyai/firestore-codec/errors"
)

var (
	tupleMarkerType   = reflect.TypeOf(Tuple{})
	newtypeMarkerType = reflect.TypeOf(Newtype{})
	enumMarkerType    = reflect.TypeOf(Enum{})
	charType          = reflect.TypeOf(Char(0))
	timeType          = reflect.TypeOf(time.Time{})
	timestampPtrType  = reflect.TypeOf((*timestamppb.Timestamp)(nil))
	valuePtrType      = reflect.TypeOf((*firestorepb.Value)(nil))
	marshalerType     = reflect.TypeOf((*ShapeMarshaler)(nil)).Elem()
	unmarshalerType   = reflect.TypeOf((*ShapeUnmarshaler)(nil)).Elem()
)

// Compiler builds and caches a CompiledType per Go type.
type Compiler struct {
	tag   string
	cache sync.Map // reflect.Type -> *CompiledType
	// mu serializes compilation so a recursive plan is published complete.
	mu sync.Mutex
}

func NewCompiler() *Compiler {
	return NewCompilerWithTag(DefaultTag)
}

// NewCompilerWithTag returns a compiler reading field names and options from
// the given struct tag instead of DefaultTag.
func NewCompilerWithTag(tag string) *Compiler {
	if tag == "" {
		tag = DefaultTag
	}
	return &Compiler{tag: tag}
}

// Tag returns the struct tag name the compiler reads.
func (c *Compiler) Tag() string {
	return c.tag
}

func (c *Compiler) Compile(goType reflect.Type) (*CompiledType, error) {
	if goType == nil {
		return nil, errors.InvalidDeclaration("<nil>", "Go type cannot be nil")
	}
	if cached, ok := c.cache.Load(goType); ok {
		return cached.(*CompiledType), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.cache.Load(goType); ok {
		return cached.(*CompiledType), nil
	}

	pending := make(map[reflect.Type]*CompiledType)
	ct, err := c.compile(goType, pending)
	if err != nil {
		return nil, err
	}
	for t, compiled := range pending {
		c.cache.Store(t, compiled)
	}

	Logger().Debug("compiled shape plan",
		zap.Stringer("type", goType),
		zap.Stringer("kind", ct.Kind),
		zap.Int("types", len(pending)),
		zap.Bool("recursive", ct.IsRecursive()))
	return ct, nil
}

func (c *Compiler) compile(t reflect.Type, pending map[reflect.Type]*CompiledType) (*CompiledType, error) {
	if ct, ok := pending[t]; ok {
		return ct, nil
	}
	if cached, ok := c.cache.Load(t); ok {
		return cached.(*CompiledType), nil
	}

	ct := &CompiledType{GoType: t, Name: t.Name()}
	pending[t] = ct

	if err := c.fill(ct, t, pending); err != nil {
		delete(pending, t)
		return nil, err
	}
	return ct, nil
}

func (c *Compiler) fill(ct *CompiledType, t reflect.Type, pending map[reflect.Type]*CompiledType) error {
	switch t {
	case charType:
		ct.Kind = KindChar
		return nil
	case timeType:
		ct.Kind = KindTime
		return nil
	case timestampPtrType:
		ct.Kind = KindTimestamp
		return nil
	case valuePtrType:
		ct.Kind = KindRaw
		return nil
	}

	if t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface {
		ct.Marshaler = t.Implements(marshalerType) || reflect.PointerTo(t).Implements(marshalerType)
		ct.Unmarshaler = reflect.PointerTo(t).Implements(unmarshalerType)
	}

	switch t.Kind() {
	case reflect.Bool:
		ct.Kind = KindBool
	case reflect.Int8:
		ct.Kind = KindInt8
	case reflect.Int16:
		ct.Kind = KindInt16
	case reflect.Int32:
		ct.Kind = KindInt32
	case reflect.Int64:
		ct.Kind = KindInt64
	case reflect.Int:
		ct.Kind = signedKind(t.Bits())
	case reflect.Uint8:
		ct.Kind = KindUint8
	case reflect.Uint16:
		ct.Kind = KindUint16
	case reflect.Uint32:
		ct.Kind = KindUint32
	case reflect.Uint64:
		ct.Kind = KindUint64
	case reflect.Uint, reflect.Uintptr:
		ct.Kind = unsignedKind(t.Bits())
	case reflect.Float32:
		ct.Kind = KindFloat32
	case reflect.Float64:
		ct.Kind = KindFloat64
	case reflect.String:
		ct.Kind = KindString
	case reflect.Interface:
		ct.Kind = KindInterface
	case reflect.Slice:
		if t.Elem() == reflect.TypeOf(byte(0)) {
			ct.Kind = KindBytes
			return nil
		}
		ct.Kind = KindList
		return c.fillElem(ct, t.Elem(), pending)
	case reflect.Array:
		ct.Kind = KindTuple
		ct.Len = t.Len()
		return c.fillElem(ct, t.Elem(), pending)
	case reflect.Ptr:
		ct.Kind = KindOption
		return c.fillElem(ct, t.Elem(), pending)
	case reflect.Map:
		ct.Kind = KindMap
		key, err := c.compile(t.Key(), pending)
		if err != nil {
			return err
		}
		ct.Key = key
		return c.fillElem(ct, t.Elem(), pending)
	case reflect.Struct:
		return c.fillStruct(ct, t, pending)
	default:
		ct.Kind = KindUnsupported
	}
	return nil
}

func signedKind(bits int) TypeKind {
	if bits == 32 {
		return KindInt32
	}
	return KindInt64
}

func unsignedKind(bits int) TypeKind {
	if bits == 32 {
		return KindUint32
	}
	return KindUint64
}

func (c *Compiler) fillElem(ct *CompiledType, elem reflect.Type, pending map[reflect.Type]*CompiledType) error {
	et, err := c.compile(elem, pending)
	if err != nil {
		return err
	}
	ct.Elem = et
	return nil
}

type structField struct {
	field reflect.StructField
	name  string
	opts  tagOptions
}

func (c *Compiler) fillStruct(ct *CompiledType, t reflect.Type, pending map[reflect.Type]*CompiledType) error {
	var marker reflect.Type
	var markerTag string
	var fields []structField
	var declared bool

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && (f.Type == tupleMarkerType || f.Type == newtypeMarkerType || f.Type == enumMarkerType) {
			if marker != nil {
				return errors.InvalidDeclaration(t.String(), "struct embeds more than one shape marker")
			}
			marker = f.Type
			markerTag, _ = parseTag(f.Tag.Get(c.tag))
			continue
		}
		if !f.IsExported() {
			continue
		}
		declared = true
		name, opts := parseTag(f.Tag.Get(c.tag))
		if name == "-" && !opts.any() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields = append(fields, structField{field: f, name: name, opts: opts})
	}

	switch marker {
	case enumMarkerType:
		ct.Kind = KindEnum
		return c.fillCases(ct, t, fields, pending)
	case newtypeMarkerType:
		ct.Kind = KindNewtype
		if markerTag != "" {
			ct.Name = markerTag
		}
		if len(fields) != 1 {
			return errors.InvalidDeclaration(t.String(),
				"newtype must have exactly one field, has "+strconv.Itoa(len(fields)))
		}
		if err := c.fillFields(ct, t, fields, pending); err != nil {
			return err
		}
		ct.Elem = ct.Fields[0].Type
		return nil
	case tupleMarkerType:
		ct.Kind = KindTupleStruct
		return c.fillFields(ct, t, fields, pending)
	}

	switch {
	case declared:
		ct.Kind = KindStruct
	case t.Name() == "" && t.NumField() == 0:
		ct.Kind = KindUnit
		return nil
	default:
		ct.Kind = KindUnitStruct
		return nil
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.name] {
			return errors.InvalidDeclaration(t.String(), "duplicate field name "+strconv.Quote(f.name))
		}
		seen[f.name] = true
	}
	return c.fillFields(ct, t, fields, pending)
}

func (c *Compiler) fillFields(ct *CompiledType, t reflect.Type, fields []structField, pending map[reflect.Type]*CompiledType) error {
	ct.Fields = make([]CompiledField, 0, len(fields))
	for _, f := range fields {
		ft, err := c.compile(f.field.Type, pending)
		if err != nil {
			return err
		}
		ct.Fields = append(ct.Fields, CompiledField{
			Type:      ft,
			Name:      f.name,
			GoName:    f.field.Name,
			Index:     f.field.Index[0],
			OmitEmpty: f.opts.omitEmpty,
		})
	}
	return nil
}

func (c *Compiler) fillCases(ct *CompiledType, t reflect.Type, fields []structField, pending map[reflect.Type]*CompiledType) error {
	if len(fields) == 0 {
		return errors.InvalidDeclaration(t.String(), "enum has no variants")
	}
	ct.Cases = make([]CompiledCase, 0, len(fields))
	seen := make(map[string]bool, len(fields))

	for _, f := range fields {
		if f.field.Type.Kind() != reflect.Ptr {
			return errors.InvalidDeclaration(t.String(),
				"enum variant "+f.field.Name+" must be a pointer field")
		}
		if seen[f.name] {
			return errors.InvalidDeclaration(t.String(), "duplicate variant name "+strconv.Quote(f.name))
		}
		seen[f.name] = true

		payload, err := c.compile(f.field.Type.Elem(), pending)
		if err != nil {
			return err
		}
		ct.Cases = append(ct.Cases, CompiledCase{
			Type:  payload,
			Name:  f.name,
			Index: f.field.Index[0],
			Shape: variantShape(payload, f.opts),
		})
	}
	return nil
}

// variantShape infers the payload shape of an enum case from its pointee.
func variantShape(payload *CompiledType, opts tagOptions) VariantShape {
	if opts.newtype || payload.Marshaler || payload.Unmarshaler {
		return ShapeNewtype
	}
	switch payload.Kind {
	case KindUnit, KindUnitStruct:
		return ShapeUnit
	case KindTupleStruct:
		return ShapeTuple
	case KindStruct:
		return ShapeStruct
	default:
		return ShapeNewtype
	}
}

type tagOptions struct {
	omitEmpty bool
	newtype   bool
}

func (o tagOptions) any() bool {
	return o.omitEmpty || o.newtype
}

// parseTag splits `name,opt,opt`. A bare "-" skips the field.
func parseTag(tag string) (string, tagOptions) {
	var opts tagOptions
	name, rest, _ := strings.Cut(tag, ",")
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		switch strings.TrimSpace(opt) {
		case "omitempty":
			opts.omitEmpty = true
		case "newtype":
			opts.newtype = true
		}
	}
	return name, opts
}
