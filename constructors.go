package xerror

import "fmt"

// New creates an Error from cfg. It never fails: malformed fields are
// dropped rather than reported.
//
//   - name: cfg.Name, else "Error".
//   - message: cfg.Msg, else cfg.Message, else "".
//   - code: a string, Code, or non-negative integer; true derives a
//     snake_case code from the name unless the name is the generic "Error".
//   - status: kept only if it is a registered HTTP status.
//   - cause, data, tags, errors: kept when set; tags are filtered.
//
// The stack is captured at the call site; New itself is not part of it.
//
// Example:
//
//	err := xerror.New(xerror.Config{
//	    Name:    "PaymentError",
//	    Message: "card declined",
//	    Code:    true, // "payment_error"
//	    Status:  402,
//	    Tags:    []string{"billing"},
//	})
func New(cfg Config) *Error {
	return newError(Kind{}, cfg, 1)
}

// Newf creates an Error with the given name and a formatted message.
//
// Example:
//
//	err := xerror.Newf("ValidationError", "field %q is required", field)
func Newf(name, format string, args ...any) *Error {
	return newError(Kind{}, Config{Name: name, Message: fmt.Sprintf(format, args...)}, 1)
}

// newError builds an Error of kind k. skip is the number of frames between
// newError and the user code whose call site starts the stack.
func newError(k Kind, cfg Config, skip int) *Error {
	e := &Error{}
	cfg.apply(e, k)
	e.stack = captureStack(skip + 1)
	return e
}
