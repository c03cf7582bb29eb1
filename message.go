// message.go - public entry points.
//
// Two families:
//   - Message / TryMessage take the payload itself (or its *Box) as returned by
//     an unwind-catching call. They always normalize first.
//   - ReportMessage / TryReportMessage take a Report handed to a panic hook.
//     A Report's Payload() is already bare, so no normalization happens.
//
// Each family has a total form (falls back to Placeholder) and a partial form
// (reports whether text was recovered).
package panicmsg

// Placeholder is returned by the total entry points when no text can be
// recovered. The exact value matches the default panic reporter's output for
// non-text payloads and must not change.
const Placeholder = "Box<dyn Any>"

// Report is the view of a failure report that this package consumes: the
// payload it carries. guard.Report implements it.
type Report interface {
	Payload() any
}

// Message returns the text carried by payload, or Placeholder.
//
// payload may be the recovered value or the *Box (or Box) holding it.
func Message(payload any) string {
	if msg, ok := TryMessage(payload); ok {
		return msg
	}
	return Placeholder
}

// TryMessage returns the text carried by payload and true, or ("", false)
// when payload is neither a string nor a []byte after one level of unwrap.
func TryMessage(payload any) (string, bool) {
	return extract(normalize(payload))
}

// ReportMessage returns the text carried by r's payload, or Placeholder.
func ReportMessage(r Report) string {
	if msg, ok := TryReportMessage(r); ok {
		return msg
	}
	return Placeholder
}

// TryReportMessage returns the text carried by r's payload and true. A nil
// report yields ("", false).
func TryReportMessage(r Report) (string, bool) {
	if r == nil {
		return "", false
	}
	return extract(r.Payload())
}
