package exceptions

import (
	"avalia-service/internal/pkg/constvars"
	"fmt"
	"runtime"
)

// Kind classifies a failure independently of its HTTP status code so that
// callers and tests can branch on the cause instead of the transport.
type Kind string

const (
	KindValidation          Kind = "validation_error"
	KindNotFound            Kind = "not_found"
	KindTypeMismatch        Kind = "type_mismatch"
	KindInvalidOption       Kind = "invalid_option"
	KindCrossModelReference Kind = "cross_model_reference"
	KindInvalidTransition   Kind = "invalid_transition"
	KindTimeout             Kind = "timeout"
	KindStoreUnavailable    Kind = "store_unavailable"
	KindUnauthorized        Kind = "unauthorized"
	KindInternal            Kind = "internal_error"
)

// FieldError pins a validation failure to one assessment field.
type FieldError struct {
	FieldID string `json:"field_id"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

type CustomError struct {
	StatusCode    int          `json:"status_code"`
	Kind          Kind         `json:"kind"`
	Success       bool         `json:"success"`
	ClientMessage string       `json:"message"`
	Fields        []FieldError `json:"fields,omitempty"`
	DevMessage    string       `json:"dev_message,omitempty"`
	Location      Location     `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, statusCode int, kind Kind, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
