// Package xerror provides structured errors.
//
// An *Error carries a category name and message like any error, plus a
// stable code, an HTTP status, a cause, a structured data record and
// classification tags, and the stack captured where it was created. The
// package shapes that metadata uniformly for logs and API responses; it does
// not decide what to do with an error.
//
// # Features
//
//   - Construction from a Config record that never fails: malformed fields
//     are dropped, not reported
//   - Error kinds (Kind) that supply a display name and default code/status
//   - Tag and data decoration after construction (append-only tags,
//     merge-only data)
//   - Bounded serialization of cause chains (MaxDepth levels)
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Adapters for logrus fields, YAML and gRPC status
//
// # Quick Start
//
// Creating errors:
//
//	err := xerror.New(xerror.Config{
//	    Name:    "PaymentError",
//	    Message: "card declined",
//	    Code:    "CARD_DECLINED",
//	    Status:  402,
//	})
//
//	// From a kind
//	err := xerror.KindNotFound.Newf("user %s not found", id)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, user); err != nil {
//	    return xerror.Wrapf(err, xerror.KindInternal, "failed to save user %s", user.ID)
//	}
//
// Decorating errors on the way up:
//
//	err = xerror.Tag(err, []string{"billing"})
//	err = xerror.Attach(err, map[string]any{"order": orderID})
//
// Serializing errors:
//
//	rec := xerror.Serialize(err)    // map[string]any, causes expanded
//	body, _ := json.Marshal(err)    // same record as JSON
//	resp := xerror.ToResponse(err)  // flat client view, no stack or cause
//
// # Field Derivation
//
// New derives each field independently:
//
//   - name: Config.Name, else the kind's name, else "Error"
//   - message: Config.Msg, else Config.Message, else ""
//   - code: a string, Code, or non-negative integer; true derives a
//     snake_case code from the name ("MyCustomError" becomes
//     "my_custom_error") unless the name is "Error"
//   - status: only registered HTTP status codes are kept
//   - tags: entries longer than MaxTagLength characters are dropped
//
// # Decoration
//
// Tag, Attach, WithData and Decorate modify the first *Error in the chain in
// place and return the error they were given. A plain error is first
// promoted to an *Error that wraps it, so always keep the returned value:
//
//	err = xerror.Tag(err, []string{"retry-exhausted"})
//
// Tags are appended, never replaced or deduplicated. Data keys are merged
// into the existing record; the record itself is never replaced.
//
// # Concurrency
//
// Creating errors is safe from any goroutine. Decoration mutates the shared
// instance without locking; synchronise externally when several goroutines
// decorate the same error.
package xerror
