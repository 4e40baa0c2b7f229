package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which direction of the codec produced the error
type Phase string

const (
	PhaseCompile Phase = "compile" // Go type inspection
	PhaseEncode  Phase = "encode"  // Go to wire value
	PhaseDecode  Phase = "decode"  // wire value to Go
)

// Kind categorizes the error
type Kind string

// Encode side kinds
const (
	KindMessage         Kind = "message"
	KindOutsideIntRange Kind = "outside_int_range"
	KindUnrepresentable Kind = "unrepresentable"
	KindNonStringKey    Kind = "non_string_key"
	KindNotAMap         Kind = "not_a_map"
)

// Decode side kinds. KindMessage and KindUnrepresentable are shared.
const (
	KindWrongType    Kind = "wrong_type"
	KindIntRange     Kind = "int_range"
	KindMissingField Kind = "missing_field"
)

// Error is the structured error returned by every codec operation
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	Expected string
	Actual   string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	typed := e.GoType != "" || e.Expected != ""
	if typed {
		b.WriteString(": ")
		switch {
		case e.GoType != "" && e.Expected != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", expected ")
			b.WriteString(e.Expected)
		case e.GoType != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		default:
			b.WriteString("expected ")
			b.WriteString(e.Expected)
		}
		if e.Actual != "" {
			b.WriteString(", got ")
			b.WriteString(e.Actual)
		}
	}

	if e.Detail != "" {
		if typed {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// WithPath returns a copy of e rooted at path when e carries no path of its own.
func (e *Error) WithPath(path []string) *Error {
	if len(e.Path) > 0 || len(path) == 0 {
		return e
	}
	cp := *e
	cp.Path = append([]string(nil), path...)
	return &cp
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Expected sets the name of the shape the codec wanted
func (b *Builder) Expected(t string) *Builder {
	b.err.Expected = t
	return b
}

// Actual sets the name of the shape the codec found
func (b *Builder) Actual(t string) *Builder {
	b.err.Actual = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors, one per taxonomy member

// Message creates a free-form error
func Message(phase Phase, path []string, msg string, args ...any) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindMessage,
		Path:   path,
		Detail: msg,
	}
}

// Wrap creates a free-form error around a cause
func Wrap(phase Phase, path []string, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMessage,
		Path:   path,
		Detail: detail,
		Cause:  cause,
	}
}

// OutsideIntRange reports an unsigned 64-bit value above the signed 64-bit maximum
func OutsideIntRange(path []string, v uint64) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindOutsideIntRange,
		Path:   path,
		Value:  v,
		Detail: fmt.Sprintf("%d does not fit in a signed 64-bit integer", v),
	}
}

// Unrepresentable reports a shape the wire format has no encoding for
func Unrepresentable(phase Phase, path []string, kind string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnrepresentable,
		Path:   path,
		Value:  kind,
		Detail: fmt.Sprintf("%s cannot be represented", kind),
	}
}

// NonStringKey reports a map key that did not encode to a string
func NonStringKey(path []string, actual string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindNonStringKey,
		Path:     path,
		Expected: "string",
		Actual:   actual,
		Detail:   "map keys must encode to strings",
	}
}

// NotAMap reports a document root that did not encode to a map
func NotAMap(actual string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindNotAMap,
		Expected: "map",
		Actual:   actual,
		Detail:   "document root must be a map",
	}
}

// WrongType reports a wire value whose kind does not fit the requested target
func WrongType(path []string, expected, actual string, value any) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindWrongType,
		Path:     path,
		Expected: expected,
		Actual:   actual,
		Value:    value,
	}
}

// IntRange reports an integer that does not fit the target width
func IntRange(path []string, kind string, v int64) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindIntRange,
		Path:     path,
		Expected: kind,
		Value:    v,
		Detail:   fmt.Sprintf("value %d out of range for %s", v, kind),
	}
}

// MissingField reports an absent enum envelope field
func MissingField(path []string, field string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMissingField,
		Path:   path,
		Value:  field,
		Detail: fmt.Sprintf("required field %q not found", field),
	}
}

// InvalidDeclaration reports a Go type the compiler cannot build a plan for
func InvalidDeclaration(goType, detail string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindMessage,
		GoType: goType,
		Detail: detail,
	}
}
