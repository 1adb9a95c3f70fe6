package ethabi

import (
	"math/big"
	"unicode/utf8"
)

// Word is the atomic unit of the ABI encoding: a 32-byte, 64-hex-character
// word.
type Word [32]byte

const wordSize = 32

var bigTwo256 = new(big.Int).Lsh(big.NewInt(1), 256)
var bigTwo255 = new(big.Int).Lsh(big.NewInt(1), 255)

// EncodeBool encodes v as a word: 00…01 if true, else 00…00.
func EncodeBool(v bool) Word {
	var w Word
	if v {
		w[31] = 1
	}
	return w
}

// DecodeBool decodes w, failing unless it is exactly the all-zero or
// all-zero-but-last-bit-one word.
func DecodeBool(w Word) (bool, error) {
	for i := 0; i < 31; i++ {
		if w[i] != 0 {
			return false, dataErr("invalid value for boolean")
		}
	}
	switch w[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, dataErr("invalid value for boolean")
	}
}

// EncodeUint encodes v as a big-endian right-aligned word. bits must be in
// [8, 64]; the caller (encode.go) is responsible for that invariant — this
// is a programmer error, not a data error, so it panics rather than
// returning one for an out-of-range protocol argument.
func EncodeUint(v uint64, bits int) Word {
	if bits < 8 || bits > 64 {
		panic("ethabi: EncodeUint: bits out of [8,64]")
	}
	var w Word
	for i := 0; i < 8; i++ {
		w[31-i] = byte(v >> (8 * uint(i)))
	}
	return w
}

// EncodeInt encodes v using two's-complement sign extension to 256 bits.
// Non-negative values look exactly like EncodeUint; negative values fill
// the unused leading bytes with 0xff instead of 0x00.
func EncodeInt(v int64, bits int) Word {
	if bits < 8 || bits > 64 {
		panic("ethabi: EncodeInt: bits out of [8,64]")
	}
	var w Word
	if v >= 0 {
		return EncodeUint(uint64(v), bits)
	}
	for i := range w {
		w[i] = 0xff
	}
	uv := uint64(v)
	for i := 0; i < 8; i++ {
		w[31-i] = byte(uv >> (8 * uint(i)))
	}
	return w
}

// DecodeUint decodes w as an unsigned integer, failing if it does not fit
// in bits.
func DecodeUint(w Word, bits int) (uint64, error) {
	v := new(big.Int).SetBytes(w[:])
	if v.BitLen() > bits {
		return 0, dataErr("decoded integer does not fit in integer of specified size")
	}
	return v.Uint64(), nil
}

// DecodeInt interprets w as a two's-complement 256-bit signed integer and
// fails if it does not fit in bits. The sign is determined by comparing the
// full 256-bit magnitude against 2^255 rather than truncating to the low
// 64 bits, so large negative values are recovered correctly instead of
// silently losing their sign.
func DecodeInt(w Word, bits int) (int64, error) {
	u := new(big.Int).SetBytes(w[:])
	if u.Cmp(bigTwo255) < 0 {
		// non-negative range
		if u.BitLen() > bits-1 {
			return 0, dataErr("decoded integer does not fit in integer of specified size")
		}
		return u.Int64(), nil
	}

	neg := new(big.Int).Sub(bigTwo256, u)
	// the magnitude of a negative bits-wide value may reach 2^(bits-1)
	if neg.Cmp(new(big.Int).Lsh(big.NewInt(1), uint(bits-1))) > 0 {
		return 0, dataErr("decoded integer does not fit in integer of specified size")
	}
	return -neg.Int64(), nil
}

// EncodeBytesDynamic returns the length word followed by buf padded to the
// next multiple of 32 bytes. Empty buf yields an empty content section
// (but the length word 0 is still present).
func EncodeBytesDynamic(buf []byte) []byte {
	lenWord := EncodeUint(uint64(len(buf)), 64)
	padded := padTo32(buf)
	out := make([]byte, 0, wordSize+len(padded))
	out = append(out, lenWord[:]...)
	out = append(out, padded...)
	return out
}

// EncodeBytes returns a self-contained top-level dynamic bytes stream:
// offset(32) ∥ length ∥ padded content.
func EncodeBytes(buf []byte) []byte {
	offset := EncodeUint(32, 64)
	out := make([]byte, 0, wordSize+wordSize+roundUp32(len(buf)))
	out = append(out, offset[:]...)
	out = append(out, EncodeBytesDynamic(buf)...)
	return out
}

// DecodeBytes returns the first len bytes of wordBlock, failing if
// wordBlock is shorter than len.
func DecodeBytes(wordBlock []byte, length int) ([]byte, error) {
	if length > len(wordBlock) {
		return nil, dataErr("decoded bytes are smaller than the required length")
	}
	out := make([]byte, length)
	copy(out, wordBlock[:length])
	return out, nil
}

// Char is a single Unicode code point, encoded as a UTF-8 byte sequence via
// the dynamic bytes path. It is distinct from the plain int32 Go kind it
// would otherwise be indistinguishable from under reflection, and is
// recognized on sight by its exact type name the same way the fixed
// big-integer sentinels are.
type Char rune

// EncodeRune returns the UTF-8 bytes of r, the dynamic-bytes payload a Char
// reduces to.
func EncodeRune(r rune) []byte {
	return []byte(string(r))
}

// DecodeRune decodes a char payload: at most 4 bytes, valid UTF-8, exactly
// one rune.
func DecodeRune(payload []byte) (rune, error) {
	if len(payload) > 4 {
		return 0, dataErr("parsed char from byte array longer than 4 bytes")
	}
	if !utf8.Valid(payload) {
		return 0, dataErr("parsed byte array cannot decode to a char")
	}
	r, size := utf8.DecodeRune(payload)
	if r == utf8.RuneError || size != len(payload) {
		return 0, dataErr("parsed byte array cannot decode to a char")
	}
	return r, nil
}

func padTo32(b []byte) []byte {
	padded := roundUp32(len(b))
	out := make([]byte, padded)
	copy(out, b)
	return out
}

func roundUp32(n int) int {
	return ((n + 31) / 32) * 32
}
