package ethabi

import "testing"

// roundTripFixture exercises a mix of Fixed and Dynamic fields, including a
// nested struct, so that both the static-layout and tuple-hint-guess decode
// paths get driven by fuzzed input.
type roundTripFixture struct {
	Flag    bool
	Count   uint32
	Signed  int64
	Label   string
	Payload []byte
	Nested  nestedFixture
}

type nestedFixture struct {
	X uint8
	Y int16
}

// FuzzRoundTrip checks that decode(encode(v)) == v across arbitrary field
// values.
func FuzzRoundTrip(f *testing.F) {
	f.Add(true, uint32(7), int64(-3), "hello", []byte{1, 2, 3}, uint8(9), int16(-9))
	f.Add(false, uint32(0), int64(0), "", []byte{}, uint8(0), int16(0))

	f.Fuzz(func(t *testing.T, flag bool, count uint32, signed int64, label string, payload []byte, x uint8, y int16) {
		v := roundTripFixture{
			Flag:    flag,
			Count:   count,
			Signed:  signed,
			Label:   label,
			Payload: payload,
			Nested:  nestedFixture{X: x, Y: y},
		}

		raw, err := Encode(v)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}

		var got roundTripFixture
		if err := decodeInto(raw, &got, 0); err != nil {
			t.Fatalf("decode: %v", err)
		}

		if got.Flag != v.Flag || got.Count != v.Count || got.Signed != v.Signed || got.Label != v.Label {
			t.Fatalf("scalar round-trip mismatch: got %+v want %+v", got, v)
		}
		if string(got.Payload) != string(v.Payload) {
			t.Fatalf("payload round-trip mismatch: got %q want %q", got.Payload, v.Payload)
		}
		if got.Nested != v.Nested {
			t.Fatalf("nested round-trip mismatch: got %+v want %+v", got.Nested, v.Nested)
		}
	})
}
