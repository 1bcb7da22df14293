package oneapi

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Result is the outcome of an operation: the decoded body or a failure.
type Result struct {
	Data    any
	Failure *CallFailure
}

// Success wraps a decoded payload.
func Success(data any) Result {
	return Result{Data: data}
}

// Fail flattens any error into a Result.
func Fail(err error) Result {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return Result{Failure: &CallFailure{Message: err.Error()}}
}

// Failed reports whether the operation failed.
func (r Result) Failed() bool {
	return r.Failure != nil
}

// Err returns the failure as an error, or nil on success.
func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

// MarshalJSON encodes the payload, or {"error": msg} for a failure.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(map[string]string{"error": r.Failure.Message})
	}
	return json.Marshal(r.Data)
}

// Decode converts the opaque payload into v, typically a *Page[T].
func (r Result) Decode(v any) error {
	if r.Failed() {
		return r.Failure
	}

	raw, err := json.Marshal(r.Data)
	if err != nil {
		return fmt.Errorf("failed to re-encode payload: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
