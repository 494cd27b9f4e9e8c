package services

import "fmt"

// ValidationError reports rejected client input. Message is already
// localized where the request carries a language and is safe to show
// to the end user. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConfigError reports missing upstream credentials. Retrying cannot fix
// missing configuration, so handlers answer with a generic server error.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("configuration error: %v", e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// DeliveryError reports an upstream rejection after any permitted
// retry. Message is the user-facing text; Err keeps the diagnostic.
type DeliveryError struct {
	Message string
	Err     error
}

func (e *DeliveryError) Error() string { return fmt.Sprintf("%s: %v", e.Message, e.Err) }
func (e *DeliveryError) Unwrap() error { return e.Err }
