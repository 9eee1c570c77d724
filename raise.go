package xerror

// Raise creates an Error from cfg and panics with it. The Raise frame is
// excluded from the captured stack, so the trace starts at the caller.
//
// Pair Raise with a deferred Recover to turn the panic back into an
// ordinary returned error:
//
//	func load(path string) (err error) {
//	    defer xerror.Recover(&err)
//	    if path == "" {
//	        xerror.Raise(xerror.Config{Name: "ConfigError", Message: "empty path"})
//	    }
//	    return nil
//	}
func Raise(cfg Config) {
	panic(newError(Kind{}, cfg, 1))
}

// Recover stores a panicking *Error into *errp. It must be called directly
// by defer. Panics with any other value are re-raised unchanged.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	if errp != nil {
		*errp = e
	}
}
