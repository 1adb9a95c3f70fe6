package ethabi

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

type codecFixture struct {
	Name  string
	Value uint64
}

func TestToStringFromStrRoundTrip(t *testing.T) {
	v := codecFixture{Name: "widget", Value: 42}

	s, err := ToString(v)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	if strings.ToLower(s) != s {
		t.Fatalf("ToString must produce lowercase hex, got %q", s)
	}

	got, err := FromStr[codecFixture](s, 0)
	if err != nil {
		t.Fatalf("FromStr: %v", err)
	}
	if got != v {
		t.Fatalf("got %+v, want %+v", got, v)
	}
}

func TestToWriterFromReaderRoundTrip(t *testing.T) {
	v := codecFixture{Name: "gadget", Value: 7}

	var buf bytes.Buffer
	if err := ToWriter(&buf, v); err != nil {
		t.Fatalf("ToWriter: %v", err)
	}

	got, err := FromReader[codecFixture](&buf, 0)
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if got != v {
		t.Fatalf("got %+v, want %+v", got, v)
	}
}

func TestDecodeReflectEntryPoint(t *testing.T) {
	v := codecFixture{Name: "sprocket", Value: 99}
	s, err := ToString(v)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}

	var got codecFixture
	if err := Decode(strings.NewReader(s), &got, 0); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != v {
		t.Fatalf("got %+v, want %+v", got, v)
	}
}

func TestFromReaderRejectsOddLengthHex(t *testing.T) {
	_, err := FromReader[uint64](strings.NewReader("abc"), 0)
	if err == nil {
		t.Fatal("expected an error decoding odd-length hex")
	}
	abiErr, ok := err.(*Error)
	if !ok || abiErr.Kind != KindSyntax {
		t.Fatalf("got %v, want a Syntax error", err)
	}
}

func TestFromReaderRejectsUppercaseHex(t *testing.T) {
	_, err := FromReader[uint64](strings.NewReader("ABCD"), 0)
	if err == nil {
		t.Fatal("expected an error decoding uppercase hex")
	}
}

func TestFromReaderResourceCeiling(t *testing.T) {
	v := make([]byte, 1024)
	raw, err := Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	hexStr := hex.EncodeToString(raw)

	_, err = FromReader[[]byte](strings.NewReader(hexStr), 16)
	if err == nil {
		t.Fatal("expected the resource ceiling to reject a 1024-byte payload with a 16-byte budget")
	}
	abiErr, ok := err.(*Error)
	if !ok || abiErr.Kind != KindData {
		t.Fatalf("got %v, want a Data error", err)
	}
}
