package ethabi

import (
	"bytes"
	"encoding/hex"
	"io"
)

// defaultMaxBytes is the resource ceiling on length-driven allocation: no
// such allocation proceeds unless it fits under a remaining_bytes budget,
// default 16 MiB.
const defaultMaxBytes = 16 * 1024 * 1024

// stream is the decoder's reader abstraction. The wire format is lowercase
// hex text, which doubles byte offsets into hex-character offsets if read
// a character at a time; rather than track that doubling through every
// offset computation, stream reads the whole input once, hex-decodes it
// into a plain byte buffer, and all other components do ordinary index
// arithmetic against that buffer.
type stream struct {
	buf       []byte
	pos       int
	watermark int // highest position ever reached by a forward read
	remaining int // bytes still allowed under the resource ceiling
}

// newStream reads r fully, validates it is lowercase hex of even length,
// and decodes it. maxBytes <= 0 selects defaultMaxBytes.
func newStream(r io.Reader, maxBytes int) (*stream, error) {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, ioErr(err)
	}
	if len(raw)%2 != 0 {
		return nil, syntaxErr("hex input has odd length")
	}
	for _, c := range raw {
		isLower := c >= '0' && c <= '9' || c >= 'a' && c <= 'f'
		if !isLower {
			return nil, syntaxErr("hex input contains non-lowercase-hex characters")
		}
	}
	buf := make([]byte, hex.DecodedLen(len(raw)))
	if _, err := hex.Decode(buf, raw); err != nil {
		return nil, syntaxErr("input is not valid hex")
	}
	return &stream{buf: buf, remaining: maxBytes}, nil
}

// checkAllocation enforces the resource ceiling before any length-driven
// allocation: a declared length that would exceed the remaining budget
// fails before any buffer of that size is allocated.
func (s *stream) checkAllocation(n int) error {
	if n < 0 {
		return dataErr("declared length is negative")
	}
	if n > s.remaining {
		return dataErr("declared length exceeds the remaining allocation budget")
	}
	s.remaining -= n
	return nil
}

// readWord reads the next 32 bytes, failing with errInsufficientBytes if
// fewer remain — the exact sentinel the tuple-hint retry path matches on.
func (s *stream) readWord() (Word, error) {
	if len(s.buf)-s.pos < wordSize {
		return Word{}, errInsufficientBytes()
	}
	var w Word
	copy(w[:], s.buf[s.pos:s.pos+wordSize])
	s.pos += wordSize
	s.bump()
	return w, nil
}

// bump raises the high-water mark to the current position. Dynamic content
// lives in a tail reached by seeking forward and back around sibling reads
// (decodeAtOffset restores the cursor to right after an offset word once its
// tail payload is decoded), so the final cursor position after a successful
// decode says nothing about how much of the buffer was actually visited —
// only the high-water mark does.
func (s *stream) bump() {
	if s.pos > s.watermark {
		s.watermark = s.pos
	}
}

// peekWord reads the next word without advancing the cursor, used by the
// decoder's tuple static/dynamic guess.
func (s *stream) peekWord() (Word, error) {
	save := s.pos
	w, err := s.readWord()
	s.pos = save
	return w, err
}

// readBytes reads exactly n raw bytes (already length-checked by the
// caller via checkAllocation) without word-padding, then advances past the
// padding up to the next word boundary.
func (s *stream) readBytes(n int) ([]byte, error) {
	if len(s.buf)-s.pos < n {
		return nil, errInsufficientBytes()
	}
	out := make([]byte, n)
	copy(out, s.buf[s.pos:s.pos+n])
	s.pos += n
	s.bump()
	padded := roundUp32(n)
	skip := padded - n
	if len(s.buf)-s.pos < skip {
		return nil, errInsufficientBytes()
	}
	s.pos += skip
	s.bump()
	return out, nil
}

// seek moves the absolute cursor to pos, used by decodeAtOffset to jump to a
// dynamic child's payload via its offset and to return to the head
// afterwards. The retry driver does not seek: each attempt starts on a fresh
// stream.
func (s *stream) seek(pos int) error {
	if pos < 0 || pos > len(s.buf) {
		return internalErr("seek target out of range")
	}
	s.pos = pos
	return nil
}

func (s *stream) position() int { return s.pos }

// atEnd reports whether the high-water mark has reached the end of the
// buffer — the decoder's end-of-input probe, adapted for a random-access
// buffer: a successful decode's final cursor position can sit anywhere in
// the head once tail jumps have restored it, so completeness is judged by
// how far any read ever reached, not by where the cursor happens to rest.
func (s *stream) atEnd() bool { return s.watermark >= len(s.buf) }

// requireEnd enforces that no trailing unconsumed bytes remain.
func (s *stream) requireEnd() error {
	if !s.atEnd() {
		return syntaxErr("input has not been processed completely")
	}
	return nil
}

// sink is the encoder's writer-side counterpart: a growable byte buffer
// that accumulates the final linearized ABI word stream before it is
// hex-encoded out to an io.Writer (codec.go's ToWriter).
type sink struct {
	buf bytes.Buffer
}

func (s *sink) writeHex(w io.Writer) error {
	enc := make([]byte, hex.EncodedLen(s.buf.Len()))
	hex.Encode(enc, s.buf.Bytes())
	if _, err := w.Write(enc); err != nil {
		return ioErr(err)
	}
	return nil
}
