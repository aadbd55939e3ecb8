package errors

// NewInvariantViolationErrorf constructs a new CodedError which indicates
// that the type core received data that should have been impossible to
// construct: an unresolved type parameter reaching canonicalization, a
// substitution index outside the supplied arguments, or a reference where a
// value type is required. These are caller programming errors, not user
// input errors; they propagate unmodified to the hosting VM.
func NewInvariantViolationErrorf(msg string, args ...interface{}) CodedError {
	return NewCodedError(
		ErrCodeInvariantViolationError,
		"internal invariant violated: "+msg,
		args...)
}

func IsInvariantViolationError(err error) bool {
	return HasErrorCode(err, ErrCodeInvariantViolationError)
}
