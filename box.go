// box.go - the payload container and its one-level unwrap.
//
// A recovered panic value usually travels inside a *Box (guard.Catch returns
// one). Callers pass either the bare value or the Box itself to Message and
// TryMessage; both must work. normalize peels exactly one container level so
// the extractor always inspects the real payload.
package panicmsg

// Box holds a recovered panic value.
//
// The zero Box holds nil. Box values are immutable once built.
type Box struct {
	value any
}

// NewBox wraps v in a container.
func NewBox(v any) *Box {
	return &Box{value: v}
}

// Value returns the contained payload. A nil *Box yields nil.
func (b *Box) Value() any {
	if b == nil {
		return nil
	}
	return b.value
}

// normalize returns the payload inside v when v is a container, and v
// unchanged otherwise. Only one level is unwrapped: a Box holding another
// Box yields the inner Box, which the extractor then rejects.
func normalize(v any) any {
	switch b := v.(type) {
	case *Box:
		if b == nil {
			return nil
		}
		return b.value
	case Box:
		return b.value
	default:
		return v
	}
}
