package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithCode(t *testing.T) {
	tts := []struct {
		err      error
		code     int
		expected *blogifyError
	}{
		{
			err:  errors.New("simple error"),
			code: 404,
			expected: &blogifyError{
				msg:   "simple error",
				code:  404,
				cause: nil,
			},
		},
		{
			err: &blogifyError{
				msg:   "custom error",
				code:  200,
				cause: nil,
			},
			code: 501,
			expected: &blogifyError{
				msg:   "custom error",
				code:  501,
				cause: nil,
			},
		},
		{
			err: &blogifyError{
				msg:   "keep cause",
				code:  125,
				cause: &blogifyError{msg: "I am the cause"},
			},
			code: 305,
			expected: &blogifyError{
				msg:   "keep cause",
				code:  305,
				cause: &blogifyError{msg: "I am the cause"},
			},
		},
		{
			// nil input should give nil output
			err:      nil,
			code:     305,
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCode(tt.code)(tt.err).(*blogifyError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCode", i))
	}
}

func TestWithCause(t *testing.T) {
	tts := []struct {
		err      error
		cause    error
		expected *blogifyError
	}{
		{
			err:   errors.New("simple error"),
			cause: errors.New("I am the cause"),
			expected: &blogifyError{
				msg:   "simple error",
				code:  500,
				cause: &blogifyError{msg: "I am the cause", code: DefaultCode, cause: nil},
			},
		},
		{
			err: errors.New("simple error"),
			cause: &blogifyError{
				msg:   "forward code",
				code:  120,
				cause: nil,
			},
			expected: &blogifyError{
				msg:   "simple error",
				code:  120,
				cause: &blogifyError{msg: "forward code", code: 120, cause: nil},
			},
		},
		{
			err: &blogifyError{
				msg:   "custom error",
				code:  200,
				cause: nil,
			},
			cause: &blogifyError{
				msg:   "custom cause",
				code:  300,
				cause: nil,
			},
			expected: &blogifyError{
				msg:   "custom error",
				code:  200,
				cause: &blogifyError{msg: "custom cause", code: 300, cause: nil},
			},
		},
		{
			// nil input should give nil output
			err:      nil,
			cause:    errors.New("the cause is ignored if the wrapper is nil"),
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCause(tt.cause)(tt.err).(*blogifyError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCause", i))
	}
}

func assertErrors(exp *blogifyError, got *blogifyError, t *testing.T, name string) {
	if exp == nil && got == nil {
		return
	}

	if exp == nil && got != nil {
		t.Errorf("%s - expected nil, got non-nil", name)
		return
	}

	if exp != nil && got == nil {
		t.Errorf("%s - expected non-nil, got nil", name)
		return
	}

	if got.code != exp.code {
		t.Errorf("%s - code: %d != %d", name, exp.code, got.code)
	}

	if got.msg != exp.msg {
		t.Errorf("%s - msg: %s != %s", name, exp.msg, got.msg)
	}

	assertErrors(exp.cause, got.cause, t, name)
}
