// Package envelope defines the result shape every dispatcher hands back to the UI.
package envelope

type Code string

const (
	CodeOK               Code = "ok"
	CodeValidationFailed Code = "validation_failed"
	CodeUnauthenticated  Code = "unauthenticated"
	CodeNotFound         Code = "not_found"
	CodeConflict         Code = "conflict"
	CodeFailed           Code = "failed"
)

const (
	ValidationFailedMessage = "Validation failed. Please check the highlighted fields."
	LoginRequiredMessage    = "You must be logged in to perform this action."
)

type State[T any] struct {
	Success bool                `json:"success"`
	Code    Code                `json:"code"`
	Message string              `json:"message"`
	Data    *T                  `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func OK[T any](data T, message string) State[T] {
	return State[T]{
		Success: true,
		Code:    CodeOK,
		Message: message,
		Data:    &data,
		Errors:  map[string][]string{},
	}
}

func Invalid[T any](errs map[string][]string) State[T] {
	if errs == nil {
		errs = map[string][]string{}
	}
	return State[T]{
		Code:    CodeValidationFailed,
		Message: ValidationFailedMessage,
		Errors:  errs,
	}
}

func Fail[T any](code Code, message string) State[T] {
	return State[T]{
		Code:    code,
		Message: message,
		Errors:  map[string][]string{},
	}
}

// Unauthenticated is the fixed login-required failure.
func Unauthenticated[T any]() State[T] {
	return Fail[T](CodeUnauthenticated, LoginRequiredMessage)
}
