package res

import "net/http"

type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindNotFound    ErrorKind = "not_found"
	KindUnavailable ErrorKind = "unavailable"
	KindInternal    ErrorKind = "internal"
)

const INTERNAL_MESSAGE = "Server Internal Error"
const UNAVAILABLE_MESSAGE = "Service Unavailable"

type ErrorRes struct {
	Err        error
	StatusCode int
	Kind       ErrorKind
}

func (e *ErrorRes) Error() string {
	return e.Err.Error()
}

func (e *ErrorRes) Unwrap() error {
	return e.Err
}

// Message is the text safe to send to clients. Internal causes
// are replaced by a fixed message.
func (e *ErrorRes) Message() string {
	switch e.Kind {
	case KindInternal:
		return INTERNAL_MESSAGE
	case KindUnavailable:
		return UNAVAILABLE_MESSAGE
	}
	return e.Err.Error()
}

func NewValidationError(err error) *ErrorRes {
	return &ErrorRes{
		Err:        err,
		StatusCode: http.StatusBadRequest,
		Kind:       KindValidation,
	}
}

func NewNotFoundError(err error) *ErrorRes {
	return &ErrorRes{
		Err:        err,
		StatusCode: http.StatusNotFound,
		Kind:       KindNotFound,
	}
}

func NewUnavailableError(err error) *ErrorRes {
	return &ErrorRes{
		Err:        err,
		StatusCode: http.StatusServiceUnavailable,
		Kind:       KindUnavailable,
	}
}

func NewInternalError(err error) *ErrorRes {
	return &ErrorRes{
		Err:        err,
		StatusCode: http.StatusInternalServerError,
		Kind:       KindInternal,
	}
}
