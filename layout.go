package ethabi

// nodeKind tags a layout node's eventual shape in the ABI byte stream.
type nodeKind int

const (
	nodeFixed nodeKind = iota
	nodeDynamic
	nodeSequence
	nodeTuple
)

// node is the encoder-side layout tree. No node is ever built with the
// nodeSequence or nodeTuple kind: an open Sequence or Tuple collects its
// children in a builder, and builder.linearize reduces it to nodeFixed or
// nodeDynamic before it is handed to its parent.
type node struct {
	kind    nodeKind
	head    []byte // nodeFixed: head bytes, may span multiple words
	payload []byte // nodeDynamic: tail payload bytes
}

func fixedNode(head []byte) node     { return node{kind: nodeFixed, head: head} }
func dynamicNode(payload []byte) node { return node{kind: nodeDynamic, payload: payload} }

// builder accumulates the children of one in-progress Sequence or Tuple, in
// the order they are encoded. The encoder adapter keeps a stack of
// builders, one per open composite.
type builder struct {
	isSequence bool // true: Sequence (length-prefixed); false: Tuple
	children   []node
}

func (b *builder) push(n node) { b.children = append(b.children, n) }

// linearize reduces a finished builder to a single Fixed or Dynamic node.
//
// headSize is computed as the true sum of each child's head contribution
// (32 bytes for a Dynamic child's offset word, or len(head) for a Fixed
// child) rather than a flat 32 bytes per child — that simplification only
// holds when every child is a plain scalar or Dynamic; a nested static
// Tuple child (e.g. a fixed array of fixed arrays) contributes more than
// one word to the head, and an offset must always equal the true byte
// distance from scope start to payload.
func (b *builder) linearize() node {
	headSize := 0
	for _, c := range b.children {
		if c.kind == nodeDynamic {
			headSize += wordSize
		} else {
			headSize += len(c.head)
		}
	}

	var head, tail []byte
	anyDynamic := false
	for _, c := range b.children {
		if c.kind == nodeDynamic {
			anyDynamic = true
			offset := headSize + len(tail)
			w := EncodeUint(uint64(offset), 64)
			head = append(head, w[:]...)
			tail = append(tail, c.payload...)
		} else {
			head = append(head, c.head...)
		}
	}

	if b.isSequence {
		lenWord := EncodeUint(uint64(len(b.children)), 64)
		payload := make([]byte, 0, wordSize+len(head)+len(tail))
		payload = append(payload, lenWord[:]...)
		payload = append(payload, head...)
		payload = append(payload, tail...)
		return dynamicNode(payload)
	}

	// Tuple: Fixed iff every child is Fixed, else Dynamic.
	if !anyDynamic {
		return fixedNode(head)
	}
	payload := make([]byte, 0, len(head)+len(tail))
	payload = append(payload, head...)
	payload = append(payload, tail...)
	return dynamicNode(payload)
}

// linearizeRoot serializes the outermost node to the final ABI byte
// stream: a Dynamic root gets a leading offset(32) word; a Fixed root is
// emitted as-is, including the empty-tuple tie-break (zero-length output).
func linearizeRoot(n node) []byte {
	if n.kind == nodeDynamic {
		offset := EncodeUint(32, 64)
		out := make([]byte, 0, wordSize+len(n.payload))
		out = append(out, offset[:]...)
		out = append(out, n.payload...)
		return out
	}
	return n.head
}
