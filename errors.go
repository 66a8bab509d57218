package gopaypal

import "fmt"

type PayPalError struct {
	Message string
	Err     error
}

func (e *PayPalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("paypal error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("paypal error: %s", e.Message)
}

func (e *PayPalError) Unwrap() error {
	return e.Err
}

func NewPayPalError(message string, err error) *PayPalError {
	return &PayPalError{
		Message: message,
		Err:     err,
	}
}

// FieldNotFoundError reports a lookup of a response field that is not
// present. Field holds the name exactly as the failing call received it,
// since with so many optional response values it helps to know which one
// was missing.
type FieldNotFoundError struct {
	*PayPalError
	Field string
}

func NewFieldNotFoundError(field string) *FieldNotFoundError {
	return &FieldNotFoundError{
		PayPalError: NewPayPalError(fmt.Sprintf("response field %q not found", field), nil),
		Field:       field,
	}
}

type ConfigError struct {
	*PayPalError
}

func NewConfigError(message string, err error) *ConfigError {
	return &ConfigError{
		PayPalError: NewPayPalError(message, err),
	}
}
