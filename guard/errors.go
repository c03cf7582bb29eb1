// errors.go - the error value a recovered panic becomes.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%q       → quoted Error().
//	%+v      → verbose, multi-line:
//	             msg="<message>" id=<report id>
//	             value: <%#v of the payload>
//	             cause: <error payload, recursively %+v>
//	             stack:
//	               funcA file.go:123
//	               funcB other.go:45
package guard

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap/zapcore"

	panicmsg "github.com/xgx-io/xgx-panicmsg"
)

// PanicError reports a panic recovered by Do or Group.
type PanicError struct {
	report *Report
}

var (
	_ error                   = (*PanicError)(nil)
	_ fmt.Formatter           = (*PanicError)(nil)
	_ zapcore.ObjectMarshaler = (*PanicError)(nil)
)

// NewPanicError wraps a hook report as an error.
func NewPanicError(r *Report) *PanicError {
	return &PanicError{report: r}
}

// Error returns "panic: " followed by the payload's text. Error payloads
// contribute their own Error(); other non-text payloads render as
// panicmsg.Placeholder.
func (e *PanicError) Error() string {
	return "panic: " + e.text()
}

// Unwrap returns the payload when it is an error, so errors.Is/As reach
// values such as runtime.Error.
func (e *PanicError) Unwrap() error {
	err, _ := e.report.Payload().(error)
	return err
}

// Report returns the report the error was built from.
func (e *PanicError) Report() *Report { return e.report }

// Value returns the recovered value.
func (e *PanicError) Value() any { return e.report.Payload() }

func (e *PanicError) text() string {
	if msg, ok := panicmsg.TryReportMessage(e.report); ok {
		return msg
	}
	if err, ok := e.report.Payload().(error); ok {
		return err.Error()
	}
	return panicmsg.Placeholder
}

func (e *PanicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *PanicError) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "msg=%q", e.text())
	if e.report != nil && e.report.ID != "" {
		_, _ = fmt.Fprintf(w, " id=%s", e.report.ID)
	}

	v := e.report.Payload()
	_, _ = fmt.Fprintf(w, "\nvalue: %#v", v)

	if cause := e.Unwrap(); cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}

	if stk := e.report.Stack(); len(stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

// MarshalLogObject lets a PanicError be logged with zap.Object.
func (e *PanicError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e.report != nil {
		enc.AddString("id", e.report.ID)
	}
	enc.AddString("message", e.text())
	enc.AddString("payload_type", payloadType(e.report.Payload()))
	if loc, ok := e.report.Location(); ok {
		enc.AddString("function", loc.Function)
		enc.AddString("location", loc.String())
	}
	return nil
}

// IsPanic reports whether err is, or wraps, a recovered panic.
func IsPanic(err error) bool {
	_, ok := AsPanic(err)
	return ok
}

// AsPanic returns the first *PanicError in err's chain.
func AsPanic(err error) (*PanicError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
