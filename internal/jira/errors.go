package jira

import "fmt"

// APIError is a non-2xx answer from the API.
type APIError struct {
	URL        string
	StatusCode int
	Body       string // first bytes of the response body
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira error: %s returned status %d: %s", e.URL, e.StatusCode, e.Body)
}

// DecodeError is a response body that does not have the expected JSON shape.
type DecodeError struct {
	URL        string
	StatusCode int
	Reason     string
	Err        error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode response from %s (status %d): %s: %v", e.URL, e.StatusCode, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode response from %s (status %d): %s", e.URL, e.StatusCode, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }
