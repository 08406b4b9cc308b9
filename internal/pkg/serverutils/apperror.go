package serverutils

import "fmt"

// AppError classifies request failures so the error middleware can translate
// them to HTTP statuses without leaking internals.
type AppError struct {
	Status  int
	Message string
	Reason  string // internal detail, logged but never sent for 5xx
}

func (e *AppError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Reason)
	}
	return e.Message
}

func NewInvalidInput(message string) *AppError {
	return &AppError{Status: 400, Message: message}
}

func NewUnsupportedMediaType(message string) *AppError {
	return &AppError{Status: 415, Message: message}
}

// NewServiceUnavailable carries the stored initialization failure reason;
// unlike internal errors this reason IS part of the public contract.
func NewServiceUnavailable(reason string) *AppError {
	return &AppError{
		Status:  503,
		Message: fmt.Sprintf("Service Unavailable: %s", reason),
		Reason:  reason,
	}
}

func NewInternal(message string, cause error) *AppError {
	reason := ""
	if cause != nil {
		reason = cause.Error()
	}
	return &AppError{Status: 500, Message: message, Reason: reason}
}
