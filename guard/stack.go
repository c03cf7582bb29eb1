// stack.go - stack capture at the point a panic is recovered.
//
// Deferred functions run on top of the panicking stack, so runtime.Callers
// inside the recovery still sees the frame that panicked. The captured stack
// is trimmed so that it starts at that frame:
//
//	captureStack → capture → deferred recover → runtime.gopanic → [runtime.*] → panic site → ...
//	                                                                             ^ first kept frame
package guard

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// String renders the frame as file:line.
func (f Frame) String() string {
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}

// Stack is a slice of Frames from the panic site outward.
type Stack []Frame

const (
	// defaultMaxDepth bounds the capture on exceptional paths.
	defaultMaxDepth = 64

	// panicEntry is the runtime function every panic passes through.
	panicEntry = "runtime.gopanic"
)

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames
// beyond runtime.Callers and captureStack itself.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// trimToPanicSite drops every frame up to and including the runtime's panic
// machinery. If no panic frame is present the stack is returned unchanged.
func trimToPanicSite(st Stack) Stack {
	start := -1
	for i, fr := range st {
		if fr.Function == panicEntry {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return st
	}
	// Runtime-raised panics (nil dereference, index out of range) add their
	// own runtime frames between gopanic and the faulting function.
	for start < len(st) && strings.HasPrefix(st[start].Function, "runtime.") {
		start++
	}
	return st[start:]
}
