package errors

import (
	"fmt"
)

type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode defines the code that will be used by default when
// none is given. It is set to 500, Internal Server Error
var DefaultCode = 500

type blogifyError struct {
	code  int
	msg   string
	cause *blogifyError
}

func (err *blogifyError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *blogifyError) Code() int {
	return err.code
}

func (err *blogifyError) Message() string {
	return err.msg
}

func (err *blogifyError) Cause() error {
	return err.cause
}

type ErrorEnricher func(error) error

func WithCode(code int) func(error) error {
	return func(err error) error {
		if err == nil {
			return nil
		}

		switch err := err.(type) {
		case *blogifyError:
			err.code = code
			return err
		}

		return &blogifyError{
			msg:   err.Error(),
			code:  code,
			cause: nil,
		}
	}
}

func WithCause(cause error) func(error) error {
	var blogifyCause *blogifyError
	switch cause := cause.(type) {
	case *blogifyError:
		blogifyCause = cause
	default:
		blogifyCause = &blogifyError{msg: cause.Error(), code: DefaultCode, cause: nil}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if bErr, ok := err.(*blogifyError); ok {
			bErr.cause = blogifyCause
			return bErr
		}

		return &blogifyError{
			msg:   err.Error(),
			code:  blogifyCause.code,
			cause: blogifyCause,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &blogifyError{
		msg:   msg,
		code:  DefaultCode,
		cause: nil,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}
