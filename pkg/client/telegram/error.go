package telegram

import "fmt"

// ClientError is the single error kind surfaced for API-level failures:
// transport errors, non-2xx statuses and envelope-level success=false all
// end up here. Message carries the API's error text when one was returned.
type ClientError struct {
	Message    string
	StatusCode int
	cause      error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("telegram client error: %s", e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.cause
}
