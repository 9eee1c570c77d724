package xerror

import "fmt"

// Wrap creates an Error from cfg with err as its cause, overriding cfg.Cause.
// Returns nil if err is nil or a nil *Error.
//
// Example:
//
//	row, err := repo.Get(ctx, id)
//	if err != nil {
//	    return xerror.Wrap(err, xerror.Config{Name: "StorageError", Message: "failed to load user"})
//	}
func Wrap(err error, cfg Config) *Error {
	if isNil(err) {
		return nil
	}
	cfg.Cause = err
	return newError(Kind{}, cfg, 1)
}

// Wrapf wraps err in an error of kind k with a formatted message.
// Returns nil if err is nil.
//
// Example:
//
//	if err := validate(input); err != nil {
//	    return xerror.Wrapf(err, xerror.KindInvalidInput, "validation failed for field %s", field)
//	}
func Wrapf(err error, k Kind, format string, args ...any) *Error {
	if isNil(err) {
		return nil
	}
	return newError(k, Config{Message: fmt.Sprintf(format, args...), Cause: err}, 1)
}
