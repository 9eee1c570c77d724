package xerror

// Decoration holds metadata to add to an existing error.
// A nil field is absent and leaves the error untouched.
type Decoration struct {
	// Tags are appended as by Tag.
	Tags []string

	// Data is merged as by Attach.
	Data map[string]any
}

// Tag appends the acceptable entries of tags to the error's tags.
// Tags are never replaced or deduplicated; oversized tags are dropped.
//
// The first *Error in err's chain is modified in place and err is returned.
// If the chain holds no *Error, err is promoted to a new *Error with err as
// its cause, and the new error is returned.
//
// Returns err unchanged if err or tags is nil.
//
// Example:
//
//	err = xerror.Tag(err, []string{"db", "transient"})
func Tag(err error, tags []string) error {
	if isNil(err) || tags == nil {
		return err
	}
	target, out := decoratable(err, 1)
	target.tag(tags)
	return out
}

// Attach merges data into the error's data record, overwriting keys that
// already exist. The record is created on first use and is never replaced.
//
// Targeting and promotion follow the same rules as Tag.
// Returns err unchanged if err or data is nil.
//
// Example:
//
//	err = xerror.Attach(err, map[string]any{
//	    "user_id": id,
//	    "attempt": 3,
//	})
func Attach(err error, data map[string]any) error {
	if isNil(err) || data == nil {
		return err
	}
	target, out := decoratable(err, 1)
	target.attach(data)
	return out
}

// WithData sets a single data key on the error. See Attach.
//
// Example:
//
//	err = xerror.WithData(err, "project", "api")
func WithData(err error, key string, value any) error {
	if isNil(err) {
		return err
	}
	target, out := decoratable(err, 1)
	target.attach(map[string]any{key: value})
	return out
}

// Decorate applies Tag for d.Tags and Attach for d.Data.
// Returns err unchanged if err is nil or d has neither field set.
//
// Example:
//
//	err = xerror.Decorate(err, xerror.Decoration{
//	    Tags: []string{"payments"},
//	    Data: map[string]any{"order": orderID},
//	})
func Decorate(err error, d Decoration) error {
	if isNil(err) || (d.Tags == nil && d.Data == nil) {
		return err
	}
	target, out := decoratable(err, 1)
	if d.Tags != nil {
		target.tag(d.Tags)
	}
	if d.Data != nil {
		target.attach(d.Data)
	}
	return out
}

// decoratable returns the *Error to modify and the error to hand back to the
// caller. skip counts the frames between decoratable and user code.
func decoratable(err error, skip int) (*Error, error) {
	if e := find(err); e != nil {
		return e, err
	}
	p := promote(err, skip+1)
	return p, p
}

// promote converts a foreign error into an *Error that wraps it.
func promote(err error, skip int) *Error {
	cfg := Config{Message: err.Error(), Cause: err}
	if n, ok := err.(Named); ok {
		cfg.Name = n.Name()
		cfg.Message = n.Message()
	}
	return newError(Kind{}, cfg, skip+1)
}

func (e *Error) tag(tags []string) {
	accepted := filterTags(tags)
	if e.tags == nil {
		e.tags = accepted
		return
	}
	e.tags = append(e.tags, accepted...)
}

func (e *Error) attach(data map[string]any) {
	if e.data == nil {
		e.data = make(map[string]any, len(data))
	}
	for k, v := range data {
		e.data[k] = v
	}
}
