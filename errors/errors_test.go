package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindWrongType,
				Path:     []string{"user", "address", "zip"},
				GoType:   "uint32",
				Expected: "uint32",
				Actual:   "string",
				Detail:   "cannot convert",
			},
			contains: []string{"[decode]", "wrong_type", "user.address.zip", "uint32", "got string", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseEncode,
				Kind:  KindNonStringKey,
			},
			contains: []string{"[encode]", "non_string_key"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindMessage,
				Detail: "bad timestamp",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[encode]", "message", "bad timestamp", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseDecode, nil, cause, "wrapped")

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause")
	}
}

func TestError_Is(t *testing.T) {
	err := IntRange([]string{"foo"}, "uint8", 300)

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindIntRange}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindIntRange}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindWrongType}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindIntRange}) {
		t.Error("errors.Is should match")
	}
}

func TestError_WithPath(t *testing.T) {
	bare := Message(PhaseEncode, nil, "boom")
	rooted := bare.WithPath([]string{"a", "b"})
	if strings.Join(rooted.Path, ".") != "a.b" {
		t.Errorf("Path = %v, want [a b]", rooted.Path)
	}
	if len(bare.Path) != 0 {
		t.Error("WithPath must not mutate the receiver")
	}

	placed := Message(PhaseEncode, []string{"x"}, "boom")
	if got := placed.WithPath([]string{"a"}); got != placed {
		t.Error("WithPath should keep an existing path")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindWrongType).
		Path("user", "name").
		GoType("string").
		Expected("string").
		Actual("integer").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "string", "int").
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindWrongType {
		t.Errorf("Kind = %v, want %v", err.Kind, KindWrongType)
	}
	if len(err.Path) != 2 || err.Path[0] != "user" || err.Path[1] != "name" {
		t.Errorf("Path = %v, want [user name]", err.Path)
	}
	if err.Expected != "string" || err.Actual != "integer" {
		t.Errorf("Expected=%v Actual=%v", err.Expected, err.Actual)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected string, got int" {
		t.Errorf("Detail = %v, want 'expected string, got int'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
		value any
	}{
		{"Message", Message(PhaseEncode, nil, "n=%d", 3), PhaseEncode, KindMessage, nil},
		{"OutsideIntRange", OutsideIntRange(nil, 1<<63), PhaseEncode, KindOutsideIntRange, uint64(1 << 63)},
		{"Unrepresentable", Unrepresentable(PhaseDecode, nil, "any"), PhaseDecode, KindUnrepresentable, "any"},
		{"NonStringKey", NonStringKey(nil, "integer"), PhaseEncode, KindNonStringKey, nil},
		{"NotAMap", NotAMap("integer"), PhaseEncode, KindNotAMap, nil},
		{"WrongType", WrongType(nil, "bool", "string", "x"), PhaseDecode, KindWrongType, "x"},
		{"IntRange", IntRange(nil, "int8", 128), PhaseDecode, KindIntRange, int64(128)},
		{"MissingField", MissingField(nil, "type"), PhaseDecode, KindMissingField, "type"},
		{"InvalidDeclaration", InvalidDeclaration("T", "bad"), PhaseCompile, KindMessage, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.value != nil && tt.err.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.err.Value, tt.value)
			}
		})
	}

	if msg := Message(PhaseEncode, nil, "n=%d", 3).Detail; msg != "n=3" {
		t.Errorf("Message detail = %q, want n=3", msg)
	}
}
