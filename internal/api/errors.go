package api

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidURL indicates the request URL could not be parsed
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidResponse indicates a response without a usable status code
	ErrInvalidResponse = errors.New("invalid response")

	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrServerError indicates a server-side error
	ErrServerError = errors.New("server error")

	// ErrTimeout indicates the request timed out or was cancelled
	ErrTimeout = errors.New("request timed out")

	// ErrInvalidParameter indicates a request parameter was rejected before sending
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDecode indicates a response body could not be decoded
	ErrDecode = errors.New("decode failed")
)

// NetworkErrorKind classifies transport failures
type NetworkErrorKind int

const (
	// NetUnknown wraps a transport failure (connection, DNS, TLS, timeout)
	NetUnknown NetworkErrorKind = iota
	// NetInvalidURL means the URL string was malformed
	NetInvalidURL
	// NetInvalidResponse means the response had no interpretable status code
	NetInvalidResponse
	// NetHTTPCode means the status code was outside 200-299
	NetHTTPCode
)

func (k NetworkErrorKind) String() string {
	switch k {
	case NetInvalidURL:
		return "invalid URL"
	case NetInvalidResponse:
		return "invalid response"
	case NetHTTPCode:
		return "http code"
	}
	return "unknown"
}

// NetworkError is the transport tier of the error taxonomy
type NetworkError struct {
	Kind       NetworkErrorKind
	StatusCode int
	URL        string
	Err        error
}

func (e *NetworkError) Error() string {
	switch e.Kind {
	case NetInvalidURL:
		return fmt.Sprintf("invalid URL %q", e.URL)
	case NetInvalidResponse:
		return fmt.Sprintf("response without status code (endpoint: %s)", extractEndpoint(e.URL))
	case NetHTTPCode:
		return fmt.Sprintf("HTTP error %d (endpoint: %s)", e.StatusCode, extractEndpoint(e.URL))
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for NetworkError
func (e *NetworkError) Is(target error) bool {
	switch target {
	case ErrInvalidURL:
		return e.Kind == NetInvalidURL
	case ErrInvalidResponse:
		return e.Kind == NetInvalidResponse
	case ErrNotFound:
		return e.Kind == NetHTTPCode && e.StatusCode == 404
	case ErrServerError:
		return e.Kind == NetHTTPCode && e.StatusCode >= 500
	case ErrTimeout:
		return e.Kind == NetUnknown && isTimeout(e.Err)
	}
	return false
}

// HTTPCode returns the status code of an HTTPCode error, or 0
func HTTPCode(err error) int {
	var ne *NetworkError
	if errors.As(err, &ne) && ne.Kind == NetHTTPCode {
		return ne.StatusCode
	}
	return 0
}

// GeneralErrorKind classifies domain failures
type GeneralErrorKind int

const (
	// GenUnknown wraps a lower-level failure, usually a decode error
	GenUnknown GeneralErrorKind = iota
	// GenFailedToRead means a successful response carried no body
	GenFailedToRead
	// GenFailedNetwork means the request could not be completed
	GenFailedNetwork
	// GenInvalidParameter means a parameter was rejected before any request
	GenInvalidParameter
)

// GeneralError is the domain tier of the error taxonomy
type GeneralError struct {
	Kind  GeneralErrorKind
	Value any
	Err   error
}

func (e *GeneralError) Error() string {
	switch e.Kind {
	case GenFailedToRead:
		return "failed to read response"
	case GenFailedNetwork:
		if e.Err != nil {
			return fmt.Sprintf("network failure: %v", e.Err)
		}
		return "network failure"
	case GenInvalidParameter:
		return fmt.Sprintf("invalid parameter: %v", e.Value)
	}
	return fmt.Sprintf("unknown error: %v", e.Err)
}

func (e *GeneralError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for GeneralError
func (e *GeneralError) Is(target error) bool {
	return target == ErrInvalidParameter && e.Kind == GenInvalidParameter
}

// NewInvalidParameter creates an InvalidParameter error carrying the rejected value
func NewInvalidParameter(value any) *GeneralError {
	return &GeneralError{Kind: GenInvalidParameter, Value: value}
}

// DecodeError reports a body that does not match the expected shape
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for DecodeError
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ValidationError represents a validation error for request parameters
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ErrMissingField reports a required value that was not given
func ErrMissingField(field string) error {
	return NewValidationError(field, "field is required")
}

// ErrInvalidFormat reports a value that does not follow the expected layout
func ErrInvalidFormat(field, expected string) error {
	return NewValidationError(field, fmt.Sprintf("invalid format, expected %s", expected))
}

// ErrInvalidValue reports a value outside the accepted range
func ErrInvalidValue(field string, value interface{}) error {
	return NewValidationError(field, fmt.Sprintf("invalid value: %v", value))
}

// Classify maps any error returned by this package onto the domain tier.
// Transport errors become FailedNetwork; nil stays nil.
func Classify(err error) *GeneralError {
	if err == nil {
		return nil
	}
	var ge *GeneralError
	if errors.As(err, &ge) {
		return ge
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return &GeneralError{Kind: GenFailedNetwork, Err: ne}
	}
	return &GeneralError{Kind: GenUnknown, Err: err}
}
