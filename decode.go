package ethabi

import (
	"fmt"
	"reflect"
)

// decodeCtx carries everything a single top-level decode attempt shares:
// the byte stream, the scope bookkeeping stack, the tuple-hint map
// accumulated by previous failed attempts, and the monotone tuple-identity
// counter. A fresh decodeCtx with a reset counter is created for every
// attempt the retry driver in decodeInto makes; the hints map is carried
// over between attempts.
type decodeCtx struct {
	s      *stream
	scopes scopeStack
	hints  map[int]bool
	nextID int
}

func newDecodeCtx(s *stream, hints map[int]bool) *decodeCtx {
	if hints == nil {
		hints = make(map[int]bool)
	}
	return &decodeCtx{s: s, hints: hints}
}

// decodeValue decodes rv at the current stream position. Every kind
// handled directly here (Bool, Int*, Uint*, String, Slice, Ptr) has an ABI
// representation that decodeChild has already resolved to a concrete
// position before calling in — it never itself reads an offset word.
// Struct and Array, whose fixedness is ambiguous, are never reached here:
// decodeChild routes them to decodeAmbiguousChild instead.
func decodeValue(rv reflect.Value, ctx *decodeCtx) error {
	if name := rv.Type().Name(); name != "" {
		if kind, ok := fixedKindByName(name); ok {
			w, err := ctx.s.readWord()
			if err != nil {
				return err
			}
			v, err := DecodeFixed(kind, w)
			if err != nil {
				return err
			}
			rv.Set(reflect.ValueOf(v))
			return nil
		}
		if name == "Char" {
			payload, err := decodeDynamicPayload(ctx)
			if err != nil {
				return err
			}
			r, err := DecodeRune(payload)
			if err != nil {
				return err
			}
			rv.SetInt(int64(r))
			return nil
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		w, err := ctx.s.readWord()
		if err != nil {
			return err
		}
		b, err := DecodeBool(w)
		if err != nil {
			return err
		}
		rv.SetBool(b)
		return nil

	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int, reflect.Int64:
		bits := rv.Type().Bits()
		if rv.Kind() == reflect.Int {
			bits = 64
		}
		w, err := ctx.s.readWord()
		if err != nil {
			return err
		}
		v, err := DecodeInt(w, bits)
		if err != nil {
			return err
		}
		rv.SetInt(v)
		return nil

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint, reflect.Uint64:
		bits := rv.Type().Bits()
		if rv.Kind() == reflect.Uint {
			bits = 64
		}
		w, err := ctx.s.readWord()
		if err != nil {
			return err
		}
		v, err := DecodeUint(w, bits)
		if err != nil {
			return err
		}
		rv.SetUint(v)
		return nil

	case reflect.String:
		payload, err := decodeDynamicPayload(ctx)
		if err != nil {
			return err
		}
		rv.SetString(string(payload))
		return nil

	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			payload, err := decodeDynamicPayload(ctx)
			if err != nil {
				return err
			}
			rv.SetBytes(payload)
			return nil
		}
		return decodeSequence(rv, ctx)

	case reflect.Ptr:
		return decodeOptional(rv, ctx)

	default:
		return &UnsupportedKindError{TypeName: fmt.Sprintf("%s (%s)", rv.Type(), rv.Kind())}
	}
}

// decodeDynamicPayload reads the length-prefixed, 32-byte-padded byte
// payload a String or dynamic byte Slice reduces to, consuming the length
// word and the payload rounded up to a multiple of 32 bytes.
func decodeDynamicPayload(ctx *decodeCtx) ([]byte, error) {
	lenWord, err := ctx.s.readWord()
	if err != nil {
		return nil, err
	}
	n, err := DecodeUint(lenWord, 64)
	if err != nil {
		return nil, err
	}
	if err := ctx.s.checkAllocation(int(n)); err != nil {
		return nil, err
	}
	return ctx.s.readBytes(int(n))
}

// decodeSequence decodes a Slice target's content in place: a length word,
// then that many child elements, each routed through decodeChild.
func decodeSequence(rv reflect.Value, ctx *decodeCtx) error {
	lenWord, err := ctx.s.readWord()
	if err != nil {
		return err
	}
	n, err := DecodeUint(lenWord, 64)
	if err != nil {
		return err
	}
	if n > uint64(ctx.s.remaining)/wordSize {
		return dataErr("declared length exceeds the remaining allocation budget")
	}
	if err := ctx.s.checkAllocation(int(n) * wordSize); err != nil {
		return err
	}
	out := reflect.MakeSlice(rv.Type(), int(n), int(n))
	anchor := ctx.s.position()
	ctx.scopes.push(scopeFrame{anchor: anchor, isSequence: true})
	for i := 0; i < int(n); i++ {
		if err := decodeChild(out.Index(i), ctx, anchor); err != nil {
			ctx.scopes.pop()
			return err
		}
		ctx.scopes.top().consumedAny = true
	}
	ctx.scopes.pop()
	rv.Set(out)
	return nil
}

// decodeFixedArray decodes a Go fixed-size Array target's content in
// place: its elements, sequentially, with no length prefix — each element
// is routed through decodeChild since a struct- or array-typed element may
// itself be ambiguously Fixed or Dynamic.
func decodeFixedArray(rv reflect.Value, ctx *decodeCtx) error {
	anchor := ctx.s.position()
	ctx.scopes.push(scopeFrame{anchor: anchor})
	for i := 0; i < rv.Len(); i++ {
		if err := decodeChild(rv.Index(i), ctx, anchor); err != nil {
			ctx.scopes.pop()
			return err
		}
		ctx.scopes.top().consumedAny = true
	}
	ctx.scopes.pop()
	return nil
}

// decodeOptional decodes a Ptr target's content in place: a length word
// (0 or 1), then that many elements.
func decodeOptional(rv reflect.Value, ctx *decodeCtx) error {
	lenWord, err := ctx.s.readWord()
	if err != nil {
		return err
	}
	n, err := DecodeUint(lenWord, 64)
	if err != nil {
		return err
	}
	switch n {
	case 0:
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	case 1:
		elem := reflect.New(rv.Type().Elem())
		anchor := ctx.s.position()
		ctx.scopes.push(scopeFrame{anchor: anchor, isSequence: true})
		err := decodeChild(elem.Elem(), ctx, anchor)
		ctx.scopes.pop()
		if err != nil {
			return err
		}
		rv.Set(elem)
		return nil
	default:
		return dataErr("optional length must be 0 or 1")
	}
}

// decodeStructLike decodes a Struct target's fields in place at the
// current stream position, which becomes this tuple's own local anchor: a
// child's offset is relative to the start of its enclosing tuple's
// head+tail region, established the moment that tuple begins, independent
// of whether the tuple itself turns out Fixed or Dynamic. Every field is
// routed through decodeChild.
func decodeStructLike(rv reflect.Value, ctx *decodeCtx) error {
	anchor := ctx.s.position()
	ctx.scopes.push(scopeFrame{anchor: anchor})
	order := orderedFields(rv.Type())
	for _, idx := range order {
		if err := decodeChild(rv.Field(idx), ctx, anchor); err != nil {
			ctx.scopes.pop()
			return err
		}
		ctx.scopes.top().consumedAny = true
	}
	ctx.scopes.pop()
	return nil
}

// isInsufficientBytes reports whether err is exactly the Data/"insufficient
// bytes" sentinel the tuple-hint conversion matches on.
func isInsufficientBytes(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindData && e.Msg == msgInsufficientBytes
}

// decodeAtOffset reads a head-position offset word relative to anchor,
// jumps to anchor+offset, runs payload to decode the content found there,
// and restores the stream cursor to immediately after the offset word so
// the enclosing scope's remaining siblings continue reading in sequence.
func decodeAtOffset(ctx *decodeCtx, anchor int, payload func() error) error {
	offsetWord, err := ctx.s.readWord()
	if err != nil {
		return err
	}
	afterOffsetWord := ctx.s.position()
	offset, err := DecodeUint(offsetWord, 64)
	if err != nil {
		return err
	}
	if err := ctx.s.seek(anchor + int(offset)); err != nil {
		return err
	}
	if err := payload(); err != nil {
		return err
	}
	return ctx.s.seek(afterOffsetWord)
}

// decodeChild is the single router for any value nested inside a
// composite (a struct field, an array/slice element, or the root value):
// it decides whether rv's ABI representation at the current position is
// unconditionally Fixed, unconditionally Dynamic, or — for Struct and
// Array, whose fixedness depends on their contents — ambiguous, and in the
// ambiguous case drives the peek/hint/retry dance. anchor is the
// scope-relative origin a Dynamic child's offset word is measured from.
func decodeChild(rv reflect.Value, ctx *decodeCtx, anchor int) error {
	if name := rv.Type().Name(); name != "" {
		if _, ok := fixedKindByName(name); ok {
			return decodeValue(rv, ctx)
		}
		if name == "Char" {
			return decodeAtOffset(ctx, anchor, func() error { return decodeValue(rv, ctx) })
		}
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decodeValue(rv, ctx)

	case reflect.String:
		return decodeAtOffset(ctx, anchor, func() error { return decodeValue(rv, ctx) })

	case reflect.Slice:
		return decodeAtOffset(ctx, anchor, func() error { return decodeValue(rv, ctx) })

	case reflect.Ptr:
		return decodeAtOffset(ctx, anchor, func() error { return decodeOptional(rv, ctx) })

	case reflect.Struct:
		return decodeAmbiguousChild(rv, ctx, anchor, decodeStructLike)

	case reflect.Array:
		return decodeAmbiguousChild(rv, ctx, anchor, decodeFixedArray)

	default:
		return &UnsupportedKindError{TypeName: fmt.Sprintf("%s (%s)", rv.Type(), rv.Kind())}
	}
}

// decodeAmbiguousChild implements the static/dynamic guess for a Struct
// or Array child: peek the current word; if it looks like a plausible
// offset (a multiple of the word size), guess Dynamic and jump; otherwise
// guess Fixed and decode fixedFn in place. A peek or a Dynamic guess that
// fails with exactly the insufficient-bytes sentinel — while this is still
// the first child read in its enclosing scope — is converted into a
// tupleHintError (marking the tuple Fixed) instead of being returned
// directly, so the top-level retry driver can record the correction and
// restart. A Fixed guess's failure is returned as it is.
func decodeAmbiguousChild(rv reflect.Value, ctx *decodeCtx, anchor int, fixedFn func(reflect.Value, *decodeCtx) error) error {
	tupleID := ctx.nextID
	ctx.nextID++

	firstInScope := true
	if top := ctx.scopes.top(); top != nil {
		firstInScope = !top.consumedAny
	}

	if isDynamic, hinted := ctx.hints[tupleID]; hinted {
		if isDynamic {
			return decodeAtOffset(ctx, anchor, func() error { return fixedFn(rv, ctx) })
		}
		return fixedFn(rv, ctx)
	}

	peeked, err := ctx.s.peekWord()
	if err != nil {
		if firstInScope && isInsufficientBytes(err) {
			return &tupleHintError{tupleID: tupleID, isDynamic: false}
		}
		return err
	}
	offset, offErr := DecodeUint(peeked, 64)
	looksLikeOffset := offErr == nil && offset%wordSize == 0

	if looksLikeOffset {
		save := ctx.s.position()
		err := decodeAtOffset(ctx, anchor, func() error { return fixedFn(rv, ctx) })
		if err == nil {
			return nil
		}
		if firstInScope && isInsufficientBytes(err) {
			return &tupleHintError{tupleID: tupleID, isDynamic: false}
		}
		ctx.s.pos = save
		return err
	}

	return fixedFn(rv, ctx)
}

// decodeInto decodes the ABI byte stream in buf into out, which must be a
// non-nil pointer, driving the tuple-hint retry loop internally: a
// TupleHint failure restarts the whole decode from byte 0 with the hint
// recorded, and a duplicate hint for the same identifier is unrecoverable.
// The root value itself is routed through decodeChild like any other
// child, with anchor 0 — a root whose representation is unconditionally
// Dynamic always carries the offset(32) wrapper linearizeRoot prepends,
// and decodeChild's offset/jump logic strips it the same way it would for
// a nested Dynamic field. maxBytes <= 0 selects the default allocation
// ceiling, which is applied fresh to every retry attempt.
func decodeInto(buf []byte, out interface{}, maxBytes int) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return internalErr("decode target must be a non-nil pointer")
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	hints := make(map[int]bool)
	const maxAttempts = 1 << 16
	for attempt := 0; attempt < maxAttempts; attempt++ {
		s := &stream{buf: buf, remaining: maxBytes}
		ctx := newDecodeCtx(s, hints)
		err := decodeChild(rv.Elem(), ctx, 0)
		if err == nil {
			return s.requireEnd()
		}
		hint, ok := asTupleHint(err)
		if !ok {
			return err
		}
		if _, dup := hints[hint.tupleID]; dup {
			return errDuplicateHint(hint.tupleID)
		}
		hints[hint.tupleID] = hint.isDynamic
	}
	return internalErr("tuple-hint retry driver exceeded maximum attempts")
}
