package xerror

import (
	"fmt"
	"net/http"
)

// Kind identifies a concrete error variant.
//
// A Kind supplies the display name for errors built from it, and optionally a
// default code and HTTP status used when the Config does not provide valid
// ones. Kinds are comparable values; define them once as package variables.
//
// Example:
//
//	var ErrQuotaExceeded = xerror.Kind{Name: "QuotaExceededError", Code: "QUOTA_EXCEEDED", Status: 429}
//
//	err := ErrQuotaExceeded.New(xerror.Config{Message: "daily quota used up"})
type Kind struct {
	// Name is the display name given to errors of this kind.
	Name string

	// Code is the default code. Empty means no default.
	Code string

	// Status is the default HTTP status. Zero or unregistered values are ignored.
	Status int
}

// Predefined kinds for common conditions.
var (
	// Resource errors.

	// KindNotFound indicates a requested resource does not exist.
	KindNotFound = Kind{Name: "NotFoundError", Code: "NOT_FOUND", Status: http.StatusNotFound}

	// KindAlreadyExists indicates a resource already exists and cannot be created again.
	KindAlreadyExists = Kind{Name: "AlreadyExistsError", Code: "ALREADY_EXISTS", Status: http.StatusConflict}

	// KindConflict indicates a resource state conflict that prevents the operation.
	KindConflict = Kind{Name: "ConflictError", Code: "CONFLICT", Status: http.StatusConflict}

	// Permission errors.

	// KindUnauthorized indicates the request lacks valid authentication credentials.
	KindUnauthorized = Kind{Name: "UnauthorizedError", Code: "UNAUTHORIZED", Status: http.StatusUnauthorized}

	// KindForbidden indicates the authenticated caller lacks permission for the operation.
	KindForbidden = Kind{Name: "ForbiddenError", Code: "FORBIDDEN", Status: http.StatusForbidden}

	// Validation errors.

	// KindInvalidInput indicates the provided input is invalid or malformed.
	KindInvalidInput = Kind{Name: "InvalidInputError", Code: "INVALID_INPUT", Status: http.StatusBadRequest}

	// Infrastructure errors.

	// KindTimeout indicates an operation exceeded its time limit.
	KindTimeout = Kind{Name: "TimeoutError", Code: "TIMEOUT", Status: http.StatusGatewayTimeout}

	// KindRateLimit indicates the rate limit has been exceeded.
	KindRateLimit = Kind{Name: "RateLimitError", Code: "RATE_LIMIT_EXCEEDED", Status: http.StatusTooManyRequests}

	// System errors.

	// KindInternal indicates an internal error occurred.
	KindInternal = Kind{Name: "InternalError", Code: "INTERNAL_ERROR", Status: http.StatusInternalServerError}

	// KindNotImplemented indicates the requested functionality is not implemented.
	KindNotImplemented = Kind{Name: "NotImplementedError", Code: "NOT_IMPLEMENTED", Status: http.StatusNotImplemented}

	// KindUnavailable indicates the service is temporarily unavailable.
	KindUnavailable = Kind{Name: "UnavailableError", Code: "SERVICE_UNAVAILABLE", Status: http.StatusServiceUnavailable}
)

// New creates an error of this kind from cfg. See the package-level New for
// the derivation rules; the kind fills in name, code and status when cfg
// leaves them unset or invalid.
func (k Kind) New(cfg Config) *Error {
	return newError(k, cfg, 1)
}

// Newf creates an error of this kind with a formatted message.
//
// Example:
//
//	err := xerror.KindNotFound.Newf("user %s not found", id)
func (k Kind) Newf(format string, args ...any) *Error {
	return newError(k, Config{Message: fmt.Sprintf(format, args...)}, 1)
}

// Wrap creates an error of this kind with err as its cause.
// Returns nil if err is nil or a nil *Error.
func (k Kind) Wrap(err error, message string) *Error {
	if isNil(err) {
		return nil
	}
	return newError(k, Config{Message: message, Cause: err}, 1)
}

// Raise creates an error of this kind and panics with it.
// The Raise frame is excluded from the captured stack.
func (k Kind) Raise(cfg Config) {
	panic(newError(k, cfg, 1))
}

// Is reports whether any error in err's chain was created from this kind.
func (k Kind) Is(err error) bool {
	found := false
	walk(err, func(e error) bool {
		if xe, ok := e.(*Error); ok && xe != nil && xe.kind == k {
			found = true
			return false
		}
		return true
	})
	return found
}
