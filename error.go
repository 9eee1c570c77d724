package xerror

import "strings"

// defaultName is the name given to errors whose config and kind supply none.
const defaultName = "Error"

// Named is implemented by error values that carry a category label next to
// their message. Serialize and the decoration helpers use it to describe
// errors from other packages the same way they describe *Error.
type Named interface {
	error

	// Name returns the error category label.
	Name() string

	// Message returns the human-readable description without any cause.
	Message() string
}

// Error is a structured error value.
//
// Error carries a category name, a message, an optional stable code, an
// optional HTTP status, an optional cause, a data record and classification
// tags, plus the stack captured at construction. Fields are unexported;
// tags and data change only through Tag, Attach, WithData and Decorate.
//
// An Error is not safe for concurrent mutation. Callers that share one
// instance across goroutines must synchronise Tag/Attach/Decorate calls.
type Error struct {
	name    string
	message string
	code    Code
	status  int
	cause   error
	data    map[string]any
	tags    []string
	details any
	kind    Kind
	stack   []uintptr
}

var _ Named = (*Error)(nil)

// Error returns the string representation of the error.
// Format: "name: message", followed by ": cause" when a cause is present.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.header())
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// header renders "name: message", dropping whichever half is empty.
func (e *Error) header() string {
	switch {
	case e.name == "":
		return e.message
	case e.message == "":
		return e.name
	default:
		return e.name + ": " + e.message
	}
}

// Name returns the error category label.
func (e *Error) Name() string {
	return e.name
}

// Message returns the human-readable message.
func (e *Error) Message() string {
	return e.message
}

// Code returns the stable machine-readable code.
// The zero Code means no code was set.
func (e *Error) Code() Code {
	return e.code
}

// Status returns the HTTP status, or 0 if none was set.
func (e *Error) Status() int {
	return e.status
}

// Cause returns the error that triggered this one, or nil.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Unwrap returns the cause for errors.Is and errors.As compatibility.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Data returns a copy of the attached data record.
// Returns nil if no data has been attached.
func (e *Error) Data() map[string]any {
	return copyRecord(e.data)
}

// Tags returns a copy of the classification tags.
// Returns nil if the error has never been tagged.
func (e *Error) Tags() []string {
	if e.tags == nil {
		return nil
	}
	tags := make([]string, len(e.tags))
	copy(tags, e.tags)
	return tags
}

// Details returns the validation details passed as Config.Errors.
func (e *Error) Details() any {
	return e.details
}

// Kind returns the variant the error was created from.
// Errors built with the package-level New carry the zero Kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// copyRecord returns a shallow copy of m, preserving nil.
func copyRecord(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
