package guard

import (
	"sync/atomic"

	"go.uber.org/zap"

	panicmsg "github.com/xgx-io/xgx-panicmsg"
)

// HookFunc receives the report of every panic recovered by Catch, Do and
// Group. It runs on the panicking goroutine before the recovering call
// returns, so it must be safe for concurrent use.
type HookFunc func(*Report)

var hook atomic.Pointer[HookFunc]

// SetHook installs h as the process-wide panic hook, replacing the current
// one. SetHook(nil) restores DefaultHook.
func SetHook(h HookFunc) {
	if h == nil {
		hook.Store(nil)
		return
	}
	hook.Store(&h)
}

// TakeHook removes the installed hook, restoring DefaultHook, and returns the
// hook that was installed (DefaultHook if none was).
func TakeHook() HookFunc {
	if prev := hook.Swap(nil); prev != nil {
		return *prev
	}
	return DefaultHook
}

// Hook returns the hook currently in effect.
func Hook() HookFunc {
	if h := hook.Load(); h != nil {
		return *h
	}
	return DefaultHook
}

// DefaultHook logs the report at error level through Logger.
func DefaultHook(r *Report) {
	Logger().Error("panic recovered", reportFields(r)...)
}

// runHook invokes the current hook. A panicking hook is logged and swallowed;
// it never replaces the panic being reported.
func runHook(r *Report) {
	defer func() {
		if rec := recover(); rec != nil {
			Logger().Error("panic hook panicked",
				zap.String("report_id", r.ID),
				zap.String("hook_message", panicmsg.Message(rec)))
		}
	}()
	Hook()(r)
}
