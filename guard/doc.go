// Package guard recovers panics and reports them.
//
// It provides the two collaborators that package panicmsg consumes:
//
//   - Catch runs a function and returns the recovered value in a
//     *panicmsg.Box, ready for panicmsg.Message.
//   - SetHook installs a process-wide hook that receives a *Report for every
//     panic recovered by this package; the hook passes the report to
//     panicmsg.ReportMessage.
//
// Do and Group turn panics into *PanicError values instead:
//
//	g, ctx := guard.WithContext(ctx)
//	g.Go(func() error { return work(ctx) })
//	if pe, ok := guard.AsPanic(g.Wait()); ok {
//		logger.Error("worker panicked", zap.Object("panic", pe))
//	}
//
// Only panics raised inside Catch, Do or Group reach the hook. The default
// hook logs through Logger, which discards output until SetLogger is called.
package guard
