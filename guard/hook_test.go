package guard

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	panicmsg "github.com/xgx-io/xgx-panicmsg"
)

// Hook tests swap the process-wide hook, so none of them run in parallel.

func installHook(t *testing.T, h HookFunc) {
	t.Helper()
	prev := TakeHook()
	SetHook(h)
	t.Cleanup(func() { SetHook(prev) })
}

func TestHook_ReportPathInsideHook(t *testing.T) {
	var (
		called  atomic.Bool
		total   string
		partial string
		ok      bool
	)
	installHook(t, func(r *Report) {
		total = panicmsg.ReportMessage(r)
		partial, ok = panicmsg.TryReportMessage(r)
		called.Store(true)
	})

	box := Catch(func() { panic("gus") })

	require.True(t, called.Load(), "hook was not entered")
	assert.Equal(t, "gus", total)
	assert.True(t, ok)
	assert.Equal(t, "gus", partial)
	assert.Equal(t, "gus", panicmsg.Message(box))
}

func TestHook_SeesSameReportAsError(t *testing.T) {
	var seen *Report
	installHook(t, func(r *Report) { seen = r })

	err := Do(func() error { panic([]byte("gus")) })
	pe, ok := AsPanic(err)
	require.True(t, ok)
	require.NotNil(t, seen)
	assert.Same(t, seen, pe.Report())
	assert.Equal(t, "gus", seen.Message())
}

func TestHook_NonTextPayload(t *testing.T) {
	var (
		total string
		ok    = true
	)
	installHook(t, func(r *Report) {
		total = panicmsg.ReportMessage(r)
		_, ok = panicmsg.TryReportMessage(r)
	})

	Catch(func() { panic(1) })

	assert.Equal(t, "Box<dyn Any>", total)
	assert.False(t, ok)
}

func TestHook_PanickingHookIsContained(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	installHook(t, func(*Report) { panic("hook exploded") })

	var box *panicmsg.Box
	require.NotPanics(t, func() {
		box = Catch(func() { panic("gus") })
	})
	assert.Equal(t, "gus", panicmsg.Message(box))

	entries := logs.FilterMessage("panic hook panicked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "hook exploded", entries[0].ContextMap()["hook_message"])
}

func TestHook_TakeAndSet(t *testing.T) {
	prev := TakeHook()
	t.Cleanup(func() { SetHook(prev) })

	// Nothing installed: Hook and TakeHook report the default.
	assert.NotNil(t, Hook())
	assert.NotNil(t, TakeHook())

	var calls atomic.Int32
	SetHook(func(*Report) { calls.Add(1) })
	Catch(func() { panic("gus") })
	assert.Equal(t, int32(1), calls.Load())

	taken := TakeHook()
	require.NotNil(t, taken)
	Catch(func() { panic("gus") })
	assert.Equal(t, int32(1), calls.Load(), "taken hook must no longer run")

	SetHook(taken)
	Catch(func() { panic("gus") })
	assert.Equal(t, int32(2), calls.Load())

	SetHook(nil)
	Catch(func() { panic("gus") })
	assert.Equal(t, int32(2), calls.Load(), "SetHook(nil) restores the default")
}

func TestDefaultHook_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	prev := TakeHook()
	t.Cleanup(func() { SetHook(prev) })

	err := Do(func() error { panic("gus") })
	pe, ok := AsPanic(err)
	require.True(t, ok)

	entries := logs.FilterMessage("panic recovered").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, pe.Report().ID, fields["report_id"])
	assert.Equal(t, "gus", fields["message"])
	assert.Equal(t, "string", fields["payload_type"])
	assert.Contains(t, fields["function"], "TestDefaultHook_Logs")
}

func TestLogger_DefaultIsNop(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.False(t, Logger().Core().Enabled(zapcore.ErrorLevel))
}
