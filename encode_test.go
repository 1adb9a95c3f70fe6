package ethabi

import (
	"reflect"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	type simple struct {
		A uint32
		B bool
		C int8
	}

	type withDynamic struct {
		Name   string
		Values []uint64
	}

	type nestedDynamic struct {
		Header simple
		Body   withDynamic
	}

	tests := []struct {
		name  string
		input interface{}
		want  interface{}
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"uint32", uint32(258), uint32(258)},
		{"negative int64", int64(-5), int64(-5)},
		{"string", "hello, ethabi", "hello, ethabi"},
		{"char", Char('€'), Char('€')},
		{"dynamic bytes", []byte{0xde, 0xad, 0xbe, 0xef}, []byte{0xde, 0xad, 0xbe, 0xef}},
		{"sequence of uint64", []uint64{1, 258, 65537}, []uint64{1, 258, 65537}},
		{"empty sequence", []uint64{}, []uint64{}},
		{"fixed array", [3]int32{-1, 0, 1}, [3]int32{-1, 0, 1}},
		{"all-fixed struct", simple{A: 7, B: true, C: -2}, simple{A: 7, B: true, C: -2}},
		{"struct with dynamic fields", withDynamic{Name: "Qux", Values: []uint64{4, 5}}, withDynamic{Name: "Qux", Values: []uint64{4, 5}}},
		{
			"nested struct containing a dynamic struct",
			nestedDynamic{Header: simple{A: 1, B: false, C: 9}, Body: withDynamic{Name: "x", Values: []uint64{42}}},
			nestedDynamic{Header: simple{A: 1, B: false, C: 9}, Body: withDynamic{Name: "x", Values: []uint64{42}}},
		},
		{"H256", H256{1: 0xff, 31: 0xaa}, H256{1: 0xff, 31: 0xaa}},
		{"H160", H160{0: 0x11, 19: 0x22}, H160{0: 0x11, 19: 0x22}},
		{"U256", U256{0: 0x01, 31: 0x02}, U256{0: 0x01, 31: 0x02}},
	}

	for _, tt := range tests {
		raw, err := Encode(tt.input)
		if err != nil {
			t.Errorf("%s: encode error: %v", tt.name, err)
			continue
		}

		outPtr := reflect.New(reflect.TypeOf(tt.want))
		if err := decodeInto(raw, outPtr.Interface(), 0); err != nil {
			t.Errorf("%s: decode error: %v", tt.name, err)
			continue
		}

		got := outPtr.Elem().Interface()
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got\n%#v\nwant\n%#v", tt.name, got, tt.want)
		}
	}
}

func TestEncodePointerOptional(t *testing.T) {
	v := uint32(99)

	raw, err := Encode(&v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got *uint32
	if err := decodeInto(raw, &got, 0); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got == nil || *got != v {
		t.Fatalf("got %v, want %v", got, v)
	}

	raw, err = Encode((*uint32)(nil))
	if err != nil {
		t.Fatalf("encode nil: %v", err)
	}
	got = &v
	if err := decodeInto(raw, &got, 0); err != nil {
		t.Fatalf("decode nil: %v", err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestEncodeUnsupportedKind(t *testing.T) {
	_, err := Encode(3.14)
	if err == nil {
		t.Fatal("expected an error encoding a float, got nil")
	}
	if _, ok := err.(*UnsupportedKindError); !ok {
		t.Fatalf("expected *UnsupportedKindError, got %T: %v", err, err)
	}
}

func TestAbiFieldOrderTag(t *testing.T) {
	type tagged struct {
		Second string `abi:"1"`
		First  uint32 `abi:"0"`
	}

	v := tagged{Second: "b", First: 1}
	raw, err := Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got tagged
	if err := decodeInto(raw, &got, 0); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Fatalf("got %+v, want %+v", got, v)
	}
}
