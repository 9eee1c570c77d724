package xerror

import (
	"fmt"
	"runtime"
	"strings"
)

// maxStackDepth bounds the number of frames recorded per error.
const maxStackDepth = 64

// Frame is a single call site in a captured stack trace.
type Frame struct {
	Function string
	File     string
	Line     int
}

// String renders the frame as "function (file:line)".
func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// captureStack records the program counters of the calling goroutine.
// skip 0 makes the first recorded frame the caller of captureStack.
func captureStack(skip int) []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	// +2 skips runtime.Callers and captureStack itself.
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}

// StackTrace returns the frames captured when the error was created, most
// recent call first. The constructor's own frame is not included.
func (e *Error) StackTrace() []Frame {
	if len(e.stack) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(e.stack)
	out := make([]Frame, 0, len(e.stack))
	for {
		fr, more := frames.Next()
		out = append(out, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return out
}

// Stack returns the captured stack as text: a "name: message" header line
// followed by one "    at function (file:line)" line per frame.
func (e *Error) Stack() string {
	var b strings.Builder
	b.WriteString(e.header())
	for _, fr := range e.StackTrace() {
		b.WriteString("\n    at ")
		b.WriteString(fr.String())
	}
	return b.String()
}
