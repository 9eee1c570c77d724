package xerror

import (
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// MaxTagLength is the longest tag, in characters, that Tag and New accept.
const MaxTagLength = 128

// Config describes the error to build. Every field is optional and the zero
// Config is valid. Fields that are malformed are dropped, never reported.
type Config struct {
	// Name is the error category label.
	Name string

	// Message is the human-readable description.
	Message string

	// Msg is a shorthand for Message and takes precedence over it.
	Msg string

	// Code is a string, a Code, or a non-negative integer of any Go integer
	// type. The boolean true derives a snake_case code from the error name.
	Code any

	// Status is an HTTP status code. Unregistered values are dropped.
	Status int

	// Cause is the error that triggered this one.
	Cause error

	// Data is an arbitrary structured context record. The map is copied.
	Data map[string]any

	// Tags are classification labels. Tags longer than MaxTagLength are dropped.
	Tags []string

	// Errors holds validation details and is stored as given.
	Errors any
}

// apply derives the error fields from cfg and k into e.
func (cfg Config) apply(e *Error, k Kind) {
	e.kind = k

	switch {
	case cfg.Name != "":
		e.name = cfg.Name
	case k.Name != "":
		e.name = k.Name
	default:
		e.name = defaultName
	}

	switch {
	case cfg.Msg != "":
		e.message = cfg.Msg
	default:
		e.message = cfg.Message
	}

	code, derive := parseCode(cfg.Code)
	if derive && e.name != defaultName {
		code = StringCode(strcase.ToSnake(e.name))
	}
	if code.IsZero() {
		code = StringCode(k.Code)
	}
	e.code = code

	switch {
	case IsHTTPStatus(cfg.Status):
		e.status = cfg.Status
	case IsHTTPStatus(k.Status):
		e.status = k.Status
	}

	if !isNil(cfg.Cause) {
		e.cause = cfg.Cause
	}
	e.data = copyRecord(cfg.Data)
	if cfg.Tags != nil {
		e.tags = filterTags(cfg.Tags)
	}
	e.details = cfg.Errors
}

// IsAcceptableTag reports whether tag may be stored on an error: it must be
// at most MaxTagLength characters long.
func IsAcceptableTag(tag string) bool {
	return utf8.RuneCountInString(tag) <= MaxTagLength
}

// filterTags returns the acceptable tags from tags, in order.
// The result is non-nil even when every tag is dropped.
func filterTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if IsAcceptableTag(tag) {
			out = append(out, tag)
		}
	}
	return out
}
