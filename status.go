package xerror

import "net/http"

// httpStatuses is the registry of recognised HTTP status codes, keyed by
// code with the registered reason phrase as value. Built once at init from
// the net/http table and never mutated afterwards.
var httpStatuses = func() map[int]string {
	m := make(map[int]string)
	for code := 100; code < 600; code++ {
		if text := http.StatusText(code); text != "" {
			m[code] = text
		}
	}
	return m
}()

// IsHTTPStatus reports whether status is a registered HTTP status code.
//
// Example:
//
//	xerror.IsHTTPStatus(404) // true
//	xerror.IsHTTPStatus(999) // false
func IsHTTPStatus(status int) bool {
	_, ok := httpStatuses[status]
	return ok
}

// StatusText returns the reason phrase for a registered HTTP status code,
// or "" if status is not registered.
func StatusText(status int) string {
	return httpStatuses[status]
}
