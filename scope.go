package ethabi

// scopeFrame is the decoder-side counterpart of a layout node: one entry
// per open Sequence/Tuple/record being walked.
//
// anchor is the byte offset that every dynamic child's offset word nested
// directly in this scope is measured from (invariant I1). consumedAny
// gates decodeAmbiguousChild's tuple-hint conversion: only the first child
// read in a scope may have an insufficient-bytes failure reinterpreted as
// a wrong static/dynamic guess, since once a sibling has already been read
// successfully, a later failure is a genuine data error, not a guess to
// retry. isSequence distinguishes a homogeneous, length-prefixed scope
// from a heterogeneous Tuple/record one for diagnostics.
type scopeFrame struct {
	anchor      int
	consumedAny bool
	isSequence  bool
}

// scopeStack is the decoder's stack of open scopes, one frame per
// in-progress Sequence/Tuple/record.
type scopeStack struct {
	frames []scopeFrame
}

func (s *scopeStack) push(f scopeFrame) {
	s.frames = append(s.frames, f)
}

func (s *scopeStack) pop() scopeFrame {
	n := len(s.frames)
	f := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return f
}

func (s *scopeStack) top() *scopeFrame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *scopeStack) empty() bool { return len(s.frames) == 0 }

// depth reports nesting depth.
func (s *scopeStack) depth() int { return len(s.frames) }
