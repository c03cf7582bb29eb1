package guard

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	panicmsg "github.com/xgx-io/xgx-panicmsg"
)

// Report describes one recovered panic. It is what a hook receives.
//
// Report implements panicmsg.Report: Payload returns the bare recovered
// value, never a container. All methods are safe on a nil *Report.
type Report struct {
	// ID uniquely identifies the panic; it correlates hook output, logs and
	// the PanicError returned to the caller.
	ID string
	// Time is when the panic was recovered.
	Time time.Time

	value any
	stack Stack
}

var _ panicmsg.Report = (*Report)(nil)

// newReport builds a report for v, capturing the stack of the panicking
// goroutine. It must be called from inside the deferred recovery.
func newReport(v any) *Report {
	return &Report{
		ID:    uuid.NewString(),
		Time:  time.Now(),
		value: v,
		stack: trimToPanicSite(captureStack(1, defaultMaxDepth)),
	}
}

// Payload returns the recovered value.
func (r *Report) Payload() any {
	if r == nil {
		return nil
	}
	return r.value
}

// Message returns the text carried by the payload, or panicmsg.Placeholder.
func (r *Report) Message() string {
	return panicmsg.ReportMessage(r)
}

// Location returns the frame that panicked.
func (r *Report) Location() (Frame, bool) {
	if r == nil || len(r.stack) == 0 {
		return Frame{}, false
	}
	return r.stack[0], true
}

// Stack returns the captured frames, panic site first. Callers must not
// modify the returned slice.
func (r *Report) Stack() Stack {
	if r == nil {
		return nil
	}
	return r.stack
}

func payloadType(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}
