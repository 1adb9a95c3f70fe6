package ethabi

import "fmt"

// FixedKind identifies one of the three recognized fixed-size nominal
// types. Recognition is by exact name carried on a wrapper-begin event —
// see fixedKindByName.
type FixedKind int

const (
	fixedNone FixedKind = iota
	FixedH256
	FixedH160
	FixedU256
)

// fixedKindByName recognizes a type by exact name: any name other than
// "H256", "H160", "U256" is not a fixed big-integer.
func fixedKindByName(name string) (FixedKind, bool) {
	switch name {
	case "H256":
		return FixedH256, true
	case "H160":
		return FixedH160, true
	case "U256":
		return FixedU256, true
	default:
		return fixedNone, false
	}
}

// H256 is a 32-byte hash, stored and replayed as 8-bit fragments in
// little-endian fragment order.
type H256 [32]byte

// H160 is a 20-byte hash (Ethereum address width), right-aligned in a
// 32-byte word with 12 leading zero bytes, also replayed as 8-bit fragments
// in little-endian fragment order.
type H160 [20]byte

// U256 is a 256-bit unsigned integer, replayed as four 64-bit fragments in
// big-endian fragment order. EncodeFixed and DecodeFixed use no 32-bit
// fragments.
type U256 [32]byte

// fixedCursor is a cursor walking a 32-byte buffer with a stride of ±1,
// ±4, or ±8 bytes per fragment, matching the byte order Ethereum's ABI
// codecs use for the three fixed big-integer kinds.
type fixedCursor struct {
	buf    [32]byte
	cursor int
	sign   int
	kind   FixedKind
}

// newFixedCursor sets up the initial cursor position and sign: hashes
// start at their leading byte (H256: 0, H160: 12) and walk forward (+1);
// U256 starts at its least-significant byte (31) and walks backward (-1).
func newFixedCursor(kind FixedKind) *fixedCursor {
	c := &fixedCursor{kind: kind}
	switch kind {
	case FixedH256:
		c.cursor = 0
		c.sign = 1
	case FixedH160:
		c.cursor = 12
		c.sign = 1
	case FixedU256:
		c.cursor = 31
		c.sign = -1
	default:
		panic("ethabi: newFixedCursor: unknown kind")
	}
	return c
}

// writeFragment8 writes one little-endian byte fragment (H256/H160) at the
// cursor and advances it by the cursor sign.
func (c *fixedCursor) writeFragment8(v uint8) error {
	if c.cursor < 0 || c.cursor > 31 {
		return dataErr("fixed big-integer fragment stream overran its buffer")
	}
	c.buf[c.cursor] = v
	c.cursor += c.sign
	return nil
}

// writeFragment64 writes an 8-byte little-endian fragment (U256) spanning
// cursor..cursor+7*sign and advances the cursor by 8*sign.
func (c *fixedCursor) writeFragment64(v uint64) error {
	for i := 0; i < 8; i++ {
		pos := c.cursor + i*c.sign
		if pos < 0 || pos > 31 {
			return dataErr("fixed big-integer fragment stream overran its buffer")
		}
		c.buf[pos] = byte(v >> (8 * uint(i)))
	}
	c.cursor += 8 * c.sign
	return nil
}

// writeFragment32 writes a 4-byte little-endian fragment (U256) and
// advances the cursor by 4*sign.
func (c *fixedCursor) writeFragment32(v uint32) error {
	for i := 0; i < 4; i++ {
		pos := c.cursor + i*c.sign
		if pos < 0 || pos > 31 {
			return dataErr("fixed big-integer fragment stream overran its buffer")
		}
		c.buf[pos] = byte(v >> (8 * uint(i)))
	}
	c.cursor += 4 * c.sign
	return nil
}

// EncodeFixed encodes one of H256/H160/U256 into its single 32-byte word
// (a Fixed layout node), by replaying the value through the same cursor
// fragment stream used for decoding.
func EncodeFixed(v interface{}) (Word, error) {
	switch x := v.(type) {
	case H256:
		c := newFixedCursor(FixedH256)
		for _, b := range x {
			if err := c.writeFragment8(b); err != nil {
				return Word{}, err
			}
		}
		return Word(c.buf), nil
	case H160:
		c := newFixedCursor(FixedH160)
		for _, b := range x {
			if err := c.writeFragment8(b); err != nil {
				return Word{}, err
			}
		}
		return Word(c.buf), nil
	case U256:
		// U256's canonical Go representation is already the 32-byte
		// big-endian word; replay it through the fragment stream as four
		// eight-byte fragments.
		c := newFixedCursor(FixedU256)
		for i := 0; i < 4; i++ {
			start := 24 - i*8
			var frag uint64
			for j := 0; j < 8; j++ {
				frag |= uint64(x[start+j]) << (8 * uint(7-j))
			}
			if err := c.writeFragment64(frag); err != nil {
				return Word{}, err
			}
		}
		return Word(c.buf), nil
	default:
		return Word{}, &UnsupportedKindError{TypeName: fmt.Sprintf("%T", v)}
	}
}

// DecodeFixed replays the 32 decoded bytes of one ABI word through the
// fragment cursor for kind, reconstructing the nominal value. The caller
// must present exactly 32 bytes.
func DecodeFixed(kind FixedKind, word Word) (interface{}, error) {
	switch kind {
	case FixedH256:
		var h H256
		c := newFixedCursor(FixedH256)
		for i := 0; i < 32; i++ {
			v, err := c.readFragment8(word)
			if err != nil {
				return nil, err
			}
			h[i] = v
		}
		return h, nil
	case FixedH160:
		var h H160
		c := newFixedCursor(FixedH160)
		// H160's 12 most-significant bytes are ignored during decoding.
		for i := 0; i < 20; i++ {
			v, err := c.readFragment8(word)
			if err != nil {
				return nil, err
			}
			h[i] = v
		}
		return h, nil
	case FixedU256:
		var u U256
		c := newFixedCursor(FixedU256)
		for i := 0; i < 4; i++ {
			frag, err := c.readFragment64(word)
			if err != nil {
				return nil, err
			}
			start := 24 - i*8
			for j := 0; j < 8; j++ {
				u[start+j] = byte(frag >> (8 * uint(7-j)))
			}
		}
		return u, nil
	default:
		return nil, internalErr("unknown fixed big-integer kind")
	}
}

func (c *fixedCursor) readFragment8(word Word) (uint8, error) {
	if c.cursor < 0 || c.cursor > 31 {
		return 0, dataErr("fixed big-integer fragment stream overran its buffer")
	}
	v := word[c.cursor]
	c.cursor += c.sign
	return v, nil
}

func (c *fixedCursor) readFragment64(word Word) (uint64, error) {
	var v uint64
	for i := 0; i < 8; i++ {
		pos := c.cursor + i*c.sign
		if pos < 0 || pos > 31 {
			return 0, dataErr("fixed big-integer fragment stream overran its buffer")
		}
		v |= uint64(word[pos]) << (8 * uint(i))
	}
	c.cursor += 8 * c.sign
	return v, nil
}
