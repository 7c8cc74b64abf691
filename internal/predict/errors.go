package predict

import "errors"

var (
	// ErrInvalidInput is returned in strict mode when a field failed coercion.
	ErrInvalidInput = errors.New("invalid input")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeInternal   = "internal_error"
)
