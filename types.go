package ethabi

import "reflect"

// Bytes is the dynamic byte-array wrapper, distinct from a fixed-size Go
// byte array, which encode.go/decode.go instead treat as a static array of
// Uint8 elements.
type Bytes []byte

// abiFieldOrder reads the "abi" struct tag on each field of struct type t,
// returning field index -> declared tuple position. Fields
// with no tag, or tagged "-", are excluded.
func abiFieldOrder(t reflect.Type) map[int]int {
	tags := make(map[int]int)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("abi")
		if tag == "" || tag == "-" {
			continue
		}
		n := 0
		for _, c := range tag {
			if c < '0' || c > '9' {
				n = -1
				break
			}
			n = n*10 + int(c-'0')
		}
		if n < 0 {
			continue
		}
		tags[i] = n
	}
	return tags
}

// orderedFields returns the struct's field indices in tuple-position order:
// tagged fields ordered by their declared position, followed by untagged
// fields in declaration order.
func orderedFields(t reflect.Type) []int {
	order := abiFieldOrder(t)
	tagged := make([]int, 0, len(order))
	for idx := range order {
		tagged = append(tagged, idx)
	}
	// stable sort by declared position
	for i := 1; i < len(tagged); i++ {
		for j := i; j > 0 && order[tagged[j-1]] > order[tagged[j]]; j-- {
			tagged[j-1], tagged[j] = tagged[j], tagged[j-1]
		}
	}
	if len(tagged) == t.NumField() {
		return tagged
	}
	rest := make([]int, 0, t.NumField()-len(tagged))
	for i := 0; i < t.NumField(); i++ {
		if _, ok := order[i]; !ok {
			rest = append(rest, i)
		}
	}
	return append(tagged, rest...)
}
