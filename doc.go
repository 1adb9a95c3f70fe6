// Package ethabi encodes and decodes Go values using the Ethereum
// contract ABI encoding: a 32-byte-word, offset-based binary layout with a
// static head section and a dynamic tail section, carried as lowercase hex
// text.
//
// Use Encode, ToVec, ToString or ToWriter to turn a Go value into an ABI
// byte stream:
//
//	s, err := ethabi.ToString(myStruct)
//
// Use FromReader or FromStr to decode an ABI hex stream into a value of a
// known Go type:
//
//	v, err := ethabi.FromStr[MyStruct](s, 0)
//
// The following table summarizes the mapping between ABI concepts and Go
// types:
//
//	ABI concept          Go
//	------------          --
//
//	primitive (bool)     ↔  bool
//	primitive (intN)     ↔  int8, int16, int32, int, int64
//	primitive (uintN)    ↔  uint8, uint16, uint32, uint, uint64
//	Bytes (dynamic)      ↔  []byte, string
//	char (dynamic)       ↔  ethabi.Char
//	Array (fixed)        ↔  [N]T
//	Sequence (dynamic)   ↔  []T  (T not byte)
//	Tuple / record       ↔  struct, field order via the `abi:"N"` tag
//	Optional             ↔  *T
//	fixed big-integer    ↔  ethabi.H256, ethabi.H160, ethabi.U256
//
// # Tuple staticness
//
// Whether a struct value's ABI representation is Fixed (inlined in its
// parent's head) or Dynamic (offset-addressed into the tail) is not
// resolved by inspecting the Go struct definition. It is discovered the
// way a one-pass, pull-based deserializer discovers it: by peeking the
// next word and guessing, then — if that guess turns out wrong —
// recording a hint and restarting the whole decode from the beginning.
// Decode therefore runs in a bounded retry loop; see the package's design
// notes for why this is preserved rather than short-circuited by a static
// type check.
//
// # Fixed big-integers
//
// H256, H160 and U256 are recognized structurally by their exact type
// name wherever they appear, and are encoded/decoded through a small
// cursor that walks their 32-byte word as a stream of 8-bit (hash) or
// 64-bit (integer) fragments, rather than as a generic fixed byte array.
//
// # Resource ceiling
//
// Every length-prefixed read of dynamic bytes or of a Sequence's element
// count is checked against a remaining-byte budget before the
// corresponding allocation is made, so a crafted length value cannot force
// an unbounded allocation. An Optional's length is not charged to the
// budget; any value other than 0 or 1 is rejected outright. The default budget is 16 MiB;
// FromReader, FromStr and Decode all accept an explicit override.
package ethabi
