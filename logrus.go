package xerror

import (
	"github.com/sirupsen/logrus"
)

// Field keys used by Fields.
const (
	FieldName   = "error_name"
	FieldCode   = "error_code"
	FieldStatus = "error_status"
	FieldTags   = "error_tags"
	FieldData   = "error_data"
	FieldCause  = "error_cause"
)

// Fields shapes err as logrus fields. logrus.ErrorKey holds err itself;
// the remaining keys are set only when the outermost *Error carries them.
// Returns nil if err is nil.
//
// Example:
//
//	log.WithFields(xerror.Fields(err)).Error("request failed")
func Fields(err error) logrus.Fields {
	if isNil(err) {
		return nil
	}
	fields := logrus.Fields{
		logrus.ErrorKey: err,
		FieldName:       GetName(err),
	}
	e := find(err)
	if e == nil {
		return fields
	}
	if !e.code.IsZero() {
		fields[FieldCode] = e.code.String()
	}
	if e.status != 0 {
		fields[FieldStatus] = e.status
	}
	if len(e.tags) > 0 {
		fields[FieldTags] = e.Tags()
	}
	if len(e.data) > 0 {
		fields[FieldData] = e.Data()
	}
	if e.cause != nil {
		fields[FieldCause] = e.cause.Error()
	}
	return fields
}

// LogEntry returns entry extended with Fields(err).
func LogEntry(entry *logrus.Entry, err error) *logrus.Entry {
	return entry.WithFields(Fields(err))
}
