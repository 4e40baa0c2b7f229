package transcoder

import (
	"bytes"
	"testing"

	"cloud.google.com/go/firestore/apiv1/firestorepb"

	"github.com/wippyai/firestore-codec/errors"
)

// protobuf encoding of Timestamp{seconds: 150, nanos: 200}
var stamp150 = []byte{0x08, 0x96, 0x01, 0x10, 0xc8, 0x01}

func TestBridge_Encode(t *testing.T) {
	requireEqual(t, mustEncode(t, stamp{Raw: stamp150}), timestampValue(150, 200))
	requireEqual(t, mustEncode(t, stamp{Raw: []byte{}}), timestampValue(0, 0))

	type event struct {
		At stamp `firestore:"at"`
	}
	requireEqual(t, mustEncode(t, event{At: stamp{Raw: stamp150}}), mapValue(map[string]*firestorepb.Value{
		"at": timestampValue(150, 200),
	}))
}

func TestBridge_EncodeErrors(t *testing.T) {
	type textStamp struct {
		Newtype `firestore:"$TimestampValue"`
		Raw     string
	}

	tests := []struct {
		value any
		name  string
	}{
		{textStamp{Raw: "150"}, "non_byte_payload"},
		{stamp{Raw: []byte{0xff}}, "truncated_layout"},
		{stamp{Raw: []byte{0x10, 0x80, 0x94, 0xeb, 0xdc, 0x03}}, "nanos_out_of_range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEncoder().Encode(tt.value)
			ce := requireKind(t, err, errors.KindMessage)
			if ce.Phase != errors.PhaseEncode {
				t.Errorf("Phase = %s, want encode", ce.Phase)
			}
		})
	}
}

func TestBridge_Decode(t *testing.T) {
	var s stamp
	if err := NewDecoder().Decode(timestampValue(150, 200), &s); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(s.Raw, stamp150) {
		t.Errorf("Raw = %x, want %x", s.Raw, stamp150)
	}

	var raw []byte
	if err := NewDecoder().Decode(timestampValue(150, 200), &raw); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(raw, stamp150) {
		t.Errorf("raw = %x, want %x", raw, stamp150)
	}

	if err := NewDecoder().Decode(timestampValue(0, 0), &raw); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(raw) != 0 {
		t.Errorf("epoch layout = %x, want empty", raw)
	}
}

func TestBridge_RoundTrip(t *testing.T) {
	for _, ts := range [][2]int64{{150, 200}, {-62135596800, 0}, {253402300799, 999999999}, {-1, 1}} {
		wire := timestampValue(ts[0], int32(ts[1]))

		var s stamp
		if err := NewDecoder().Decode(wire, &s); err != nil {
			t.Fatalf("Decode(%v) failed: %v", ts, err)
		}
		requireEqual(t, mustEncode(t, s), wire)
	}
}

func TestBridge_DecodeOutOfRange(t *testing.T) {
	var raw []byte
	ce := requireKind(t, NewDecoder().Decode(timestampValue(0, -1), &raw), errors.KindIntRange)
	if ce.Expected != "timestamp.nanos" {
		t.Errorf("Expected = %q, want timestamp.nanos", ce.Expected)
	}
}

func TestTimestampLayout(t *testing.T) {
	b, err := TimestampLayout(150, 200)
	if err != nil {
		t.Fatalf("TimestampLayout failed: %v", err)
	}
	if !bytes.Equal(b, stamp150) {
		t.Errorf("layout = %x, want %x", b, stamp150)
	}

	sec, nanos, err := ParseTimestampLayout(b)
	if err != nil {
		t.Fatalf("ParseTimestampLayout failed: %v", err)
	}
	if sec != 150 || nanos != 200 {
		t.Errorf("parsed (%d, %d), want (150, 200)", sec, nanos)
	}

	bad, _ := TimestampLayout(0, 1_000_000_000)
	if _, _, err := ParseTimestampLayout(bad); err == nil {
		t.Error("ParseTimestampLayout should reject nanos out of range")
	}
}
