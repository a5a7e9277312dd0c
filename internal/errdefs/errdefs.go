package errdefs

import "errors"

type ErrorType int

const (
	ErrTypeNotLinux ErrorType = iota
	ErrTypeDependency
	ErrTypeSourceNotFound
	ErrTypeClone
	ErrTypeGeneric
)

// Exit codes surfaced to the shell. The delegate's own status takes
// precedence when it runs and fails.
const (
	ExitDependency     = 3
	ExitSourceNotFound = 4
	ExitClone          = 5
)

type CustomError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *CustomError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Cause
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

func WrapCustomError(errType ErrorType, message string, cause error) error {
	return &CustomError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// ExitCodeFor maps an orchestrator error to a process exit status.
func ExitCodeFor(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		switch ce.Type {
		case ErrTypeDependency:
			return ExitDependency
		case ErrTypeSourceNotFound:
			return ExitSourceNotFound
		case ErrTypeClone:
			return ExitClone
		}
	}
	return 1
}
