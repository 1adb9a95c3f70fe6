package ethabi

import "fmt"

// Kind classifies an error into one of six categories: Syntax, Data, IO,
// TupleHint, Internal, EOF. TupleHint is recovered only by the top-level
// retry driver (decodeInto in decode.go); every other kind propagates verbatim to the
// caller of ToWriter/ToVec/ToString/FromReader/FromStr.
type Kind int

const (
	// KindSyntax: non-hex input, odd-length input, or unconsumed trailing bytes.
	KindSyntax Kind = iota
	// KindData: value out of range, malformed bool word, wrong lengths,
	// allocation ceiling exceeded, bad optional length, bad char payload.
	KindData
	// KindIO: the underlying reader/writer returned an error of its own.
	KindIO
	// KindTupleHint: internal signal consumed only by the retry driver.
	KindTupleHint
	// KindInternal: a fault inside the codec's own control flow (non-pointer
	// decode target, out-of-range seek, unknown fixed kind, retry limit). A Go
	// type with no ABI mapping (float, map, ...) is reported as
	// *UnsupportedKindError instead.
	KindInternal
	// KindEOF: reader returned zero bytes when the end-of-input probe expected it.
	KindEOF
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindData:
		return "data"
	case KindIO:
		return "io"
	case KindTupleHint:
		return "tuple-hint"
	case KindInternal:
		return "internal"
	case KindEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Error is the classified error type returned by this package's entry
// points; the one other error type they return is *UnsupportedKindError,
// for a Go type with no ABI mapping. It carries a Kind so callers can
// classify a failure without string-matching.
type Error struct {
	Kind Kind
	Msg  string
	// Cause wraps an underlying error (IO failures, or a wrapped reader/writer error).
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ethabi: %s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("ethabi: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

func newErr(k Kind, msg string) *Error { return &Error{Kind: k, Msg: msg} }

func syntaxErr(msg string) *Error   { return newErr(KindSyntax, msg) }
func dataErr(msg string) *Error     { return newErr(KindData, msg) }
func internalErr(msg string) *Error { return newErr(KindInternal, msg) }

func ioErr(cause error) *Error {
	return &Error{Kind: KindIO, Msg: "reader/writer failure", Cause: cause}
}

// msgInsufficientBytes is the exact sentinel message the tuple-hint retry
// path in decode.go matches on: a Data error raised when a tuple decode
// guess runs out of bytes before confirming its shape.
const msgInsufficientBytes = "insufficient bytes read from reader"

func errInsufficientBytes() *Error { return dataErr(msgInsufficientBytes) }

// tupleHintError carries a {tuple_id, is_dynamic} correction as a
// recoverable error, consumed only by the top-level decode loop in
// decode.go (decodeInto). It is never returned to a library caller.
type tupleHintError struct {
	tupleID   int
	isDynamic bool
}

func (e *tupleHintError) Error() string {
	return fmt.Sprintf("ethabi: tuple-hint: id=%d dynamic=%v", e.tupleID, e.isDynamic)
}

// asTupleHint reports whether err is a tuple-hint signal, returning it typed.
func asTupleHint(err error) (*tupleHintError, bool) {
	th, ok := err.(*tupleHintError)
	return th, ok
}

// errDuplicateHint is returned by the retry driver when a tuple identifier
// would be hinted twice: duplicate hints for the same identifier signal an
// unrecoverable failure and are surfaced rather than retried again.
func errDuplicateHint(id int) *Error {
	return dataErr(fmt.Sprintf("duplicate tuple hint for id %d", id))
}

// UnsupportedKindError is returned when encoding encounters a Go kind/type
// this codec has no ABI mapping for: a typed error carrying enough context
// to diagnose the call site, not just a string.
type UnsupportedKindError struct {
	TypeName string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("ethabi: no ABI mapping for type %q", e.TypeName)
}
