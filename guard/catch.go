package guard

import (
	panicmsg "github.com/xgx-io/xgx-panicmsg"
)

// Catch runs fn and recovers a panic raised by it. It returns nil when fn
// returns normally, and otherwise the container holding the recovered value.
// The hook has already run by the time Catch returns.
//
//	if box := guard.Catch(fn); box != nil {
//		log.Print(panicmsg.Message(box))
//	}
//
// Since Go 1.21, panic(nil) is recovered as a *runtime.PanicNilError, so a
// panicking fn always yields a non-nil box.
func Catch(fn func()) (box *panicmsg.Box) {
	defer func() {
		if rec := recover(); rec != nil {
			box = panicmsg.NewBox(capture(rec).Payload())
		}
	}()
	fn()
	return nil
}

// Do runs fn and returns its error. If fn panics, Do returns a *PanicError
// for the recovered value instead.
func Do(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = NewPanicError(capture(rec))
		}
	}()
	return fn()
}

// capture builds the report for rec and hands it to the hook. It must be
// called directly from a deferred recovery so the panicking stack is intact.
func capture(rec any) *Report {
	r := newReport(rec)
	runHook(r)
	return r
}
