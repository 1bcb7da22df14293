package oneapi

import "errors"

// Common errors
var (
	// ErrMissingAPIKey indicates the client was built without an API key
	ErrMissingAPIKey = errors.New("one api key is required")
	// ErrMissingEndpoint indicates a request without an endpoint
	ErrMissingEndpoint = errors.New("endpoint is required")
)

// CallFailure is the only failure shape an operation produces.
type CallFailure struct {
	Message string
}

// Error implements the error interface
func (f *CallFailure) Error() string {
	return f.Message
}
