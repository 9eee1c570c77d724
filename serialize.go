package xerror

import (
	"encoding/json"
)

// MaxDepth is the number of cause levels below the root that Serialize
// expands. Causes further down the chain are left as Truncated references.
const MaxDepth = 3

// Truncated is an unexpanded cause left in a serialized record once
// MaxDepth is reached. It still behaves as the original error, but encodes
// to its message string so encoding the record cannot re-expand the chain.
type Truncated struct {
	Err error
}

// Error returns the message of the truncated error.
func (t Truncated) Error() string {
	return t.Err.Error()
}

// Unwrap returns the truncated error.
func (t Truncated) Unwrap() error {
	return t.Err
}

// MarshalJSON encodes the truncated error as its message string.
func (t Truncated) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Err.Error())
}

// MarshalYAML encodes the truncated error as its message string.
func (t Truncated) MarshalYAML() (interface{}, error) {
	return t.Err.Error(), nil
}

// Serialize converts err into a plain record suitable for logging or JSON
// encoding. Returns nil if err is nil.
//
// The record always holds "name", "message" and "stack", plus "code",
// "status", "cause", "data", "tags" and "errors" when they are set. Errors
// that are not *Error contribute their Named fields when available, else
// name "Error" and err.Error() as message, and their unwrapped error as
// cause.
//
// The cause chain is expanded into nested records up to MaxDepth levels
// below the root; deeper causes are stored as Truncated.
//
// Example:
//
//	rec := xerror.Serialize(err)
//	log.WithFields(logrus.Fields(rec)).Error("request failed")
func Serialize(err error) map[string]any {
	return serialize(err, 0)
}

func serialize(err error, depth int) map[string]any {
	if isNil(err) {
		return nil
	}
	rec := record(err)
	cause, ok := rec["cause"].(error)
	if !ok {
		return rec
	}
	switch {
	case isNil(cause):
		delete(rec, "cause")
	case depth < MaxDepth:
		rec["cause"] = serialize(cause, depth+1)
	default:
		rec["cause"] = Truncated{Err: cause}
	}
	return rec
}

// record returns the shallow field record of err, with the cause unexpanded.
func record(err error) map[string]any {
	e, ok := err.(*Error)
	if !ok {
		return foreignRecord(err)
	}

	rec := map[string]any{
		"name":    e.name,
		"message": e.message,
		"stack":   e.Stack(),
	}
	if !e.code.IsZero() {
		rec["code"] = e.code
	}
	if e.status != 0 {
		rec["status"] = e.status
	}
	if e.cause != nil {
		rec["cause"] = e.cause
	}
	if e.data != nil {
		rec["data"] = e.Data()
	}
	if e.tags != nil {
		rec["tags"] = e.Tags()
	}
	if e.details != nil {
		rec["errors"] = e.details
	}
	return rec
}

func foreignRecord(err error) map[string]any {
	rec := map[string]any{
		"name":    defaultName,
		"message": err.Error(),
		"stack":   "",
	}
	if n, ok := err.(Named); ok {
		rec["name"] = n.Name()
		rec["message"] = n.Message()
	}
	if s, ok := err.(interface{ Stack() string }); ok {
		rec["stack"] = s.Stack()
	}
	if cause := unwrapOnce(err); cause != nil {
		rec["cause"] = cause
	}
	return rec
}

// MarshalJSON implements json.Marshaler by encoding Serialize(e).
//
// Example:
//
//	body, _ := json.Marshal(err)
//	// {"code":"NOT_FOUND","message":"user not found","name":"NotFoundError","stack":"...","status":404}
func (e *Error) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(Serialize(e))
	if err != nil {
		return nil, KindInternal.Wrap(err, "failed to marshal error record")
	}
	return data, nil
}

// MarshalYAML implements yaml.Marshaler by returning Serialize(e).
func (e *Error) MarshalYAML() (interface{}, error) {
	return Serialize(e), nil
}

// Response is the flat, client-facing view of an error for API responses.
// It leaves out the stack and the cause chain, which may carry internal
// details.
type Response struct {
	// Name is the error category label.
	Name string `json:"name" yaml:"name"`

	// Code is the stable error code. Omitted when unset.
	Code Code `json:"code,omitzero" yaml:"code,omitempty"`

	// Message is the human-readable error message.
	Message string `json:"message" yaml:"message"`

	// Status is the HTTP status. Omitted when unset.
	Status int `json:"status,omitempty" yaml:"status,omitempty"`

	// Tags are the classification labels. Omitted when empty.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Data is the structured context. Omitted when empty.
	Data map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}

// ToResponse converts any error to a Response. Returns nil if err is nil.
//
// The outermost *Error in the chain supplies every field. Other errors are
// reported with name "Error" and err.Error() as message.
//
// Example:
//
//	func writeError(w http.ResponseWriter, err error) {
//	    resp := xerror.ToResponse(err)
//	    status := resp.Status
//	    if status == 0 {
//	        status = http.StatusInternalServerError
//	    }
//	    w.Header().Set("Content-Type", "application/json")
//	    w.WriteHeader(status)
//	    json.NewEncoder(w).Encode(resp)
//	}
func ToResponse(err error) *Response {
	if isNil(err) {
		return nil
	}
	e := find(err)
	if e == nil {
		return &Response{
			Name:    GetName(err),
			Message: err.Error(),
		}
	}
	return &Response{
		Name:    e.name,
		Code:    e.code,
		Message: e.message,
		Status:  e.status,
		Tags:    e.Tags(),
		Data:    e.Data(),
	}
}
