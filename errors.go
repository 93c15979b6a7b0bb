package wandbox

import (
	"fmt"
	"strings"
)

// ValidationError is returned before any network traffic when a request is
// missing required fields or its target cannot be resolved against the
// compiler catalog.
type ValidationError struct {
	// Messages are human readable descriptions of each failed field,
	// translated through the registered validator translations.
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid compilation request: %s", strings.Join(e.Messages, ", "))
}

// NetworkError is returned when the request could not be delivered to the
// remote endpoint or the endpoint answered with a non-success status code.
type NetworkError struct {
	// StatusCode is the HTTP status of the response, zero when the request
	// never produced one.
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("wandbox replied with status %d", e.StatusCode)
	}

	return fmt.Sprintf("failed to reach wandbox: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError is returned when the endpoint answered successfully but the body
// did not match the expected JSON shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse wandbox response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
