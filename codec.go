package ethabi

import (
	"bytes"
	"encoding/hex"
	"io"
)

// ToWriter encodes v and writes its lowercase hex representation to w.
func ToWriter(w io.Writer, v interface{}) error {
	raw, err := Encode(v)
	if err != nil {
		return err
	}
	var sk sink
	sk.buf.Write(raw)
	return sk.writeHex(w)
}

// ToVec encodes v and returns the decoded (non-hex) ABI byte stream.
func ToVec(v interface{}) ([]byte, error) {
	return Encode(v)
}

// ToString encodes v and returns its lowercase hex representation.
func ToString(v interface{}) (string, error) {
	raw, err := Encode(v)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// FromReader reads all of r as lowercase hex, decodes it, and unmarshals
// the ABI byte stream into a freshly allocated T. maxBytes <= 0 selects the
// default 16 MiB resource ceiling.
func FromReader[T any](r io.Reader, maxBytes int) (T, error) {
	var out T
	s, err := newStream(r, maxBytes)
	if err != nil {
		return out, err
	}
	if err := decodeInto(s.buf, &out, maxBytes); err != nil {
		return out, err
	}
	return out, nil
}

// FromStr decodes the lowercase hex string s into a freshly allocated T.
func FromStr[T any](s string, maxBytes int) (T, error) {
	return FromReader[T](bytes.NewReader([]byte(s)), maxBytes)
}

// Decode decodes the lowercase hex text read from r into out, which must be
// a non-nil pointer. This is the reflection-based counterpart to
// FromReader, for callers (e.g. generic container code) that hold an
// interface{} target rather than a concrete type parameter — the same
// relationship encoding/json's Decoder.Decode has to a hypothetical
// generic json.DecodeAs[T].
func Decode(r io.Reader, out interface{}, maxBytes int) error {
	s, err := newStream(r, maxBytes)
	if err != nil {
		return err
	}
	return decodeInto(s.buf, out, maxBytes)
}
