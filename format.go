package xerror

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
//	%s, %v   Error()
//	%q       quoted Error()
//	%+v      Stack() (header line and frames), then the cause
//	         formatted with %+v
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Stack())
			if e.cause != nil {
				_, _ = fmt.Fprintf(s, "\ncaused by: %+v", e.cause)
			}
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*xerror.Error=%s)", verb, e.Error())
	}
}
