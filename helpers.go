package xerror

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var xerr *xerror.Error
//	if xerror.As(err, &xerr) {
//	    status := xerr.Status()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Isa reports whether err is itself an *Error. The check is nominal: an
// *Error wrapped by another error does not count. Use As or Kind.Is to
// search a chain.
func Isa(err error) bool {
	_, ok := err.(*Error)
	return ok
}

// GetName returns the name of the outermost *Error or Named error in err's
// chain. Returns "" if err is nil and "Error" for plain errors.
func GetName(err error) string {
	if isNil(err) {
		return ""
	}
	name := defaultName
	walk(err, func(e error) bool {
		if n, ok := e.(Named); ok && !isNil(e) {
			name = n.Name()
			return false
		}
		return true
	})
	return name
}

// GetCode extracts the Code from the outermost *Error in err's chain.
// Returns the zero Code if err is nil or holds no *Error.
//
// Example:
//
//	if xerror.GetCode(err) == xerror.StringCode("NOT_FOUND") {
//	    // Handle not found
//	}
func GetCode(err error) Code {
	if e := find(err); e != nil {
		return e.code
	}
	return Code{}
}

// GetStatus extracts the HTTP status from the outermost *Error in err's
// chain. Returns 0 if err is nil, holds no *Error, or no status was set.
func GetStatus(err error) int {
	if e := find(err); e != nil {
		return e.status
	}
	return 0
}

// GetTags returns a copy of the tags of the outermost *Error in err's chain.
func GetTags(err error) []string {
	if e := find(err); e != nil {
		return e.Tags()
	}
	return nil
}

// GetData returns a copy of the data record of the outermost *Error in
// err's chain.
func GetData(err error) map[string]any {
	if e := find(err); e != nil {
		return e.Data()
	}
	return nil
}

// HasTag reports whether any *Error in err's chain carries tag.
//
// Example:
//
//	if xerror.HasTag(err, "transient") {
//	    // Report as a soft failure
//	}
func HasTag(err error, tag string) bool {
	found := false
	walk(err, func(e error) bool {
		if xe, ok := e.(*Error); ok && xe != nil {
			for _, t := range xe.tags {
				if t == tag {
					found = true
					return false
				}
			}
		}
		return true
	})
	return found
}

// find returns the outermost non-nil *Error in err's chain.
func find(err error) *Error {
	var found *Error
	walk(err, func(e error) bool {
		if x, ok := e.(*Error); ok && x != nil {
			found = x
			return false
		}
		return true
	})
	return found
}

// isNil reports whether err is nil or a nil *Error stored in an interface.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	e, ok := err.(*Error)
	return ok && e == nil
}

// unwrapOnce returns the single wrapped error of err, or nil.
func unwrapOnce(err error) error {
	return stderrors.Unwrap(err)
}

// maxWalk bounds the number of errors walk visits, so chains that unwrap
// to themselves terminate.
const maxWalk = 256

// walk visits err and every error it wraps depth-first, following both
// Unwrap() error and Unwrap() []error. It stops when fn returns false or
// after maxWalk errors.
func walk(err error, fn func(error) bool) bool {
	budget := maxWalk
	return walkN(err, fn, &budget)
}

func walkN(err error, fn func(error) bool, budget *int) bool {
	if err == nil {
		return true
	}
	if *budget <= 0 {
		return false
	}
	*budget--
	if !fn(err) {
		return false
	}
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return walkN(u.Unwrap(), fn, budget)
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			if !walkN(inner, fn, budget) {
				return false
			}
		}
	}
	return true
}
