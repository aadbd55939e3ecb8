// Package errors defines the coded error model of the VM type core. Every
// failure the core can produce is a CodedError carrying a status code and a
// message; the hosting VM converts codes into its own execution-abort status
// and keeps running.
package errors

import (
	"errors"
	"fmt"
)

// CodedError is an error tagged with an ErrorCode. Codes survive wrapping
// with fmt.Errorf("...: %w", err), so callers match on HasErrorCode rather
// than on message text.
type CodedError interface {
	Code() ErrorCode

	error
}

type codedError struct {
	code ErrorCode
	err  error
}

// NewCodedError constructs a new CodedError with a formatted message.
func NewCodedError(code ErrorCode, format string, args ...interface{}) CodedError {
	return codedError{
		code: code,
		err:  fmt.Errorf(format, args...),
	}
}

// WrapCodedError wraps err into a CodedError with the given code and a
// message prefix.
func WrapCodedError(code ErrorCode, err error, format string, args ...interface{}) CodedError {
	return codedError{
		code: code,
		err:  fmt.Errorf(format+": %w", append(args, err)...),
	}
}

func (e codedError) Error() string {
	return fmt.Sprintf("%s %s", e.code, e.err)
}

func (e codedError) Code() ErrorCode {
	return e.code
}

func (e codedError) Unwrap() error {
	return e.err
}

// HasErrorCode returns true if err or any error in its chain is a CodedError
// with the given code.
func HasErrorCode(err error, code ErrorCode) bool {
	var coded CodedError
	for errors.As(err, &coded) {
		if coded.Code() == code {
			return true
		}
		err = errors.Unwrap(coded)
		if err == nil {
			return false
		}
	}
	return false
}
