package ethabi

import (
	"fmt"
	"reflect"
)

// encodeValue is the event-driven encoder adapter: it walks v with
// reflection, dispatching on reflect.Kind, and builds the layout tree from
// layout.go bottom-up, returning the single node the caller (a
// Tuple/Sequence builder, or codec.go at the root) should treat v as.
func encodeValue(rv reflect.Value) (node, error) {
	if !rv.IsValid() {
		return node{}, &UnsupportedKindError{TypeName: "<invalid>"}
	}

	// Sentinel fixed big-integer types are recognized on sight, by exact
	// type name, before the generic Array-of-byte path below ever sees them.
	if _, ok := fixedKindByName(rv.Type().Name()); ok {
		w, err := EncodeFixed(rv.Interface())
		if err != nil {
			return node{}, err
		}
		return fixedNode(w[:]), nil
	}
	if rv.Type().Name() == "Char" {
		return dynamicNode(EncodeBytesDynamic(EncodeRune(rune(rv.Int())))), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		w := EncodeBool(rv.Bool())
		return fixedNode(w[:]), nil

	case reflect.Int8:
		w := EncodeInt(rv.Int(), 8)
		return fixedNode(w[:]), nil
	case reflect.Int16:
		w := EncodeInt(rv.Int(), 16)
		return fixedNode(w[:]), nil
	case reflect.Int32:
		w := EncodeInt(rv.Int(), 32)
		return fixedNode(w[:]), nil
	case reflect.Int, reflect.Int64:
		w := EncodeInt(rv.Int(), 64)
		return fixedNode(w[:]), nil

	case reflect.Uint8:
		w := EncodeUint(rv.Uint(), 8)
		return fixedNode(w[:]), nil
	case reflect.Uint16:
		w := EncodeUint(rv.Uint(), 16)
		return fixedNode(w[:]), nil
	case reflect.Uint32:
		w := EncodeUint(rv.Uint(), 32)
		return fixedNode(w[:]), nil
	case reflect.Uint, reflect.Uint64:
		w := EncodeUint(rv.Uint(), 64)
		return fixedNode(w[:]), nil

	case reflect.String:
		return dynamicNode(EncodeBytesDynamic([]byte(rv.String()))), nil

	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return dynamicNode(EncodeBytesDynamic(rv.Bytes())), nil
		}
		b := &builder{isSequence: true}
		for i := 0; i < rv.Len(); i++ {
			n, err := encodeValue(rv.Index(i))
			if err != nil {
				return node{}, err
			}
			b.push(n)
		}
		return b.linearize(), nil

	case reflect.Array:
		// A fixed byte array with no recognized sentinel name is still
		// encoded elementwise, each byte its own word: only a Slice of
		// uint8 is the Bytes wrapper. Sentinel arrays like H256 were
		// already dispatched above by name.
		b := &builder{isSequence: false}
		for i := 0; i < rv.Len(); i++ {
			n, err := encodeValue(rv.Index(i))
			if err != nil {
				return node{}, err
			}
			b.push(n)
		}
		return b.linearize(), nil

	case reflect.Struct:
		t := rv.Type()
		order := orderedFields(t)
		b := &builder{isSequence: false}
		for _, idx := range order {
			n, err := encodeValue(rv.Field(idx))
			if err != nil {
				return node{}, err
			}
			b.push(n)
		}
		return b.linearize(), nil

	case reflect.Ptr:
		// Optional, modeled as a Sequence of zero or one elements.
		b := &builder{isSequence: true}
		if !rv.IsNil() {
			n, err := encodeValue(rv.Elem())
			if err != nil {
				return node{}, err
			}
			b.push(n)
		}
		return b.linearize(), nil

	case reflect.Interface:
		if rv.IsNil() {
			return node{}, &UnsupportedKindError{TypeName: "nil interface"}
		}
		return encodeValue(rv.Elem())

	default:
		return node{}, &UnsupportedKindError{TypeName: fmt.Sprintf("%s (%s)", rv.Type(), rv.Kind())}
	}
}

// Encode serializes v into the complete ABI byte stream (root-level
// linearization with the leading offset word when the root is Dynamic).
func Encode(v interface{}) ([]byte, error) {
	n, err := encodeValue(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return linearizeRoot(n), nil
}
