package job

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies why a listing could not be fetched
type FetchErrorKind string

const (
	NetworkError      FetchErrorKind = "network_error"
	HTTPError         FetchErrorKind = "http_error"
	MalformedResponse FetchErrorKind = "malformed_response"
)

// FetchError is returned by providers. Every kind is recoverable by retrying.
type FetchError struct {
	Kind   FetchErrorKind
	Status int // set for HTTPError
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case HTTPError:
		if e.Err != nil {
			return fmt.Sprintf("fetch: http status %d: %v", e.Status, e.Err)
		}
		return fmt.Sprintf("fetch: http status %d", e.Status)
	default:
		if e.Err != nil {
			return fmt.Sprintf("fetch: %s: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("fetch: %s", e.Kind)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewNetworkError wraps a transport failure
func NewNetworkError(err error) *FetchError {
	return &FetchError{Kind: NetworkError, Err: err}
}

// NewHTTPError reports a non-success status
func NewHTTPError(status int, err error) *FetchError {
	return &FetchError{Kind: HTTPError, Status: status, Err: err}
}

// NewMalformedResponse reports a payload that is not a recognised envelope
func NewMalformedResponse(err error) *FetchError {
	return &FetchError{Kind: MalformedResponse, Err: err}
}

// KindOf extracts the FetchErrorKind from err. Errors that are not a
// FetchError are reported as NetworkError.
func KindOf(err error) FetchErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return NetworkError
}
