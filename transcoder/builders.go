package transcoder

import (
	"strconv"

	"cloud.google.com/go/firestore/apiv1/firestorepb"

	"github.com/wippyai/firestore-codec/errors"
)

// ArrayBuilder accumulates the elements of a sequence, tuple or tuple struct.
type ArrayBuilder struct {
	s      *serializer
	values []*firestorepb.Value
	ended  bool
}

func newArrayBuilder(s *serializer, n int) *ArrayBuilder {
	if n < 0 {
		n = 0
	}
	return &ArrayBuilder{s: s, values: make([]*firestorepb.Value, 0, n)}
}

// Element encodes v and appends it.
func (b *ArrayBuilder) Element(v any) error {
	if b.ended {
		return errFinalized(b.s.path)
	}
	val, err := b.s.encodeChild(v, b.segment())
	if err != nil {
		return err
	}
	b.push(val)
	return nil
}

func (b *ArrayBuilder) segment() string {
	return strconv.Itoa(len(b.values))
}

func (b *ArrayBuilder) push(v *firestorepb.Value) {
	b.values = append(b.values, v)
}

// End returns the accumulated Array. A builder can be ended once.
func (b *ArrayBuilder) End() (*firestorepb.Value, error) {
	if b.ended {
		return nil, errFinalized(b.s.path)
	}
	b.ended = true
	return arrayValue(b.values), nil
}

// KVMapBuilder accumulates a generic map. Keys must encode to strings and
// every Value call must be preceded by a Key call.
type KVMapBuilder struct {
	s       *serializer
	fields  map[string]*firestorepb.Value
	pending *string
	ended   bool
}

func newKVMapBuilder(s *serializer, n int) *KVMapBuilder {
	if n < 0 {
		n = 0
	}
	return &KVMapBuilder{s: s, fields: make(map[string]*firestorepb.Value, n)}
}

// Key encodes k and holds it until the matching Value call. A second Key
// before that Value panics.
func (b *KVMapBuilder) Key(k any) error {
	if b.ended {
		return errFinalized(b.s.path)
	}
	val, err := b.s.encodeChild(k, "[key]")
	if err != nil {
		return err
	}
	return b.pushKey(val)
}

func (b *KVMapBuilder) pushKey(v *firestorepb.Value) error {
	if b.pending != nil {
		panic("transcoder: map key serialized twice without a value")
	}
	s, ok := v.GetValueType().(*firestorepb.Value_StringValue)
	if !ok {
		return errors.NonStringKey(b.s.path, KindName(v))
	}
	key := s.StringValue
	b.pending = &key
	return nil
}

// Value encodes v under the pending key. Calling it without a pending key is
// a programming error and panics.
func (b *KVMapBuilder) Value(v any) error {
	if b.ended {
		return errFinalized(b.s.path)
	}
	key := b.takeKey()
	val, err := b.s.encodeChild(v, key)
	if err != nil {
		return err
	}
	b.fields[key] = val
	return nil
}

// Entry is Key followed by Value.
func (b *KVMapBuilder) Entry(k, v any) error {
	if err := b.Key(k); err != nil {
		return err
	}
	return b.Value(v)
}

func (b *KVMapBuilder) takeKey() string {
	if b.pending == nil {
		panic("transcoder: map value serialized without a preceding key")
	}
	key := *b.pending
	b.pending = nil
	return key
}

func (b *KVMapBuilder) pushValue(v *firestorepb.Value) {
	b.fields[b.takeKey()] = v
}

// End returns the accumulated Map.
func (b *KVMapBuilder) End() (*firestorepb.Value, error) {
	if b.ended {
		return nil, errFinalized(b.s.path)
	}
	b.ended = true
	return mapValue(b.fields), nil
}

// StructBuilder accumulates the fields of a struct under their static names.
type StructBuilder struct {
	s      *serializer
	fields map[string]*firestorepb.Value
	ended  bool
}

func newStructBuilder(s *serializer, n int) *StructBuilder {
	if n < 0 {
		n = 0
	}
	return &StructBuilder{s: s, fields: make(map[string]*firestorepb.Value, n)}
}

// Field encodes v under key.
func (b *StructBuilder) Field(key string, v any) error {
	if b.ended {
		return errFinalized(b.s.path)
	}
	val, err := b.s.encodeChild(v, key)
	if err != nil {
		return err
	}
	b.push(key, val)
	return nil
}

func (b *StructBuilder) push(key string, v *firestorepb.Value) {
	b.fields[key] = v
}

// End returns the accumulated Map.
func (b *StructBuilder) End() (*firestorepb.Value, error) {
	if b.ended {
		return nil, errFinalized(b.s.path)
	}
	b.ended = true
	return mapValue(b.fields), nil
}

// TupleVariantBuilder accumulates a tuple payload and wraps it as
// {"type": variant, "values": [...]}.
type TupleVariantBuilder struct {
	*ArrayBuilder
	variant string
}

// End returns the enum envelope around the accumulated Array.
func (b *TupleVariantBuilder) End() (*firestorepb.Value, error) {
	arr, err := b.ArrayBuilder.End()
	if err != nil {
		return nil, err
	}
	return VariantToValue(ShapeTuple, b.variant, arr), nil
}

// StructVariantBuilder accumulates a record payload and wraps it as
// {"type": variant, "values": {...}}.
type StructVariantBuilder struct {
	*StructBuilder
	variant string
}

// End returns the enum envelope around the accumulated Map.
func (b *StructVariantBuilder) End() (*firestorepb.Value, error) {
	m, err := b.StructBuilder.End()
	if err != nil {
		return nil, err
	}
	return VariantToValue(ShapeStruct, b.variant, m), nil
}

func errFinalized(path []string) error {
	return errors.Message(errors.PhaseEncode, path, "builder used after End")
}
