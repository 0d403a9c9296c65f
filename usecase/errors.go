package usecase

// ValidationError marks input the caller can fix; handlers answer it with a
// 400 and the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
