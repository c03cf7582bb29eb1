// extract.go - ordered type recovery of text from a normalized payload.
//
// The recognized set is closed and ordered:
//   1. string  (fixed text; returned as is, same backing storage)
//   2. []byte  (owned text; returned as a view over the slice's array)
//
// Every other dynamic type is "no match". Errors, Stringers and numeric codes
// are not stringified, matching the default panic reporter's output.
package panicmsg

import "unsafe"

// extract attempts to recover text from v. It never allocates and never
// panics; a miss is a plain ("", false).
func extract(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if b, ok := v.([]byte); ok {
		return bytesView(b), true
	}
	return "", false
}

// bytesView returns a string sharing b's backing array. The result is only
// stable while b is not written to.
func bytesView(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
