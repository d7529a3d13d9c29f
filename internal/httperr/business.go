package httperr

import (
	"errors"
	"net/http"
)

// BusinessError is an expected failure whose message is safe to show clients.
type BusinessError struct {
	Status  int
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrBusiness(status int, message string) error {
	return BusinessError{Status: status, Message: message}
}

func Validation(message string) error {
	return ErrBusiness(http.StatusBadRequest, message)
}

func NotFoundErr(message string) error {
	return ErrBusiness(http.StatusNotFound, message)
}

func ForbiddenErr(message string) error {
	return ErrBusiness(http.StatusForbidden, message)
}

// AsBusiness unwraps err into a BusinessError if it is one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return be, false
}

func IsBusiness(err error, message string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Message == message
}
