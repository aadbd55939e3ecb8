package errors

import "fmt"

type ErrorCode uint16

func (ec ErrorCode) String() string {
	return fmt.Sprintf("[Error Code: %d]", ec)
}

const (
	// type system errors 2000 - 2050
	ErrCodeInvariantViolationError ErrorCode = 2000
)
