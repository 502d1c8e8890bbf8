package midtrans

import "fmt"

// StatusTimeout marks an Error whose request was cancelled or timed out
// before a response arrived. Timeouts get a distinguishable marker instead
// of being folded into the signature or API error taxonomy.
const StatusTimeout = "TIMEOUT"

// Error represents a failed call to the gateway
type Error struct {
	// Message is a human-readable description, preferring the gateway's own
	// status message when one was returned
	Message string

	// StatusCode is the HTTP status of the response, 0 when the request
	// never completed
	StatusCode int

	// GatewayCode is the gateway's application-level status code
	// (status_code / responseCode) when the error body carried one
	GatewayCode string

	// Status is a marker for non-HTTP failure modes, currently only
	// StatusTimeout
	Status string

	// RawError is the underlying transport or decoding error, if any
	RawError error

	// RawApiResponse is the unparsed response body, if one was received
	RawApiResponse []byte
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("midtrans: %s (http %d)", e.Message, e.StatusCode)
	}
	if e.Status != "" {
		return fmt.Sprintf("midtrans: %s (%s)", e.Message, e.Status)
	}
	return "midtrans: " + e.Message
}

// Unwrap exposes the underlying transport error to errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.RawError
}

// Timeout reports whether the call failed because the request was cancelled
// or its deadline expired
func (e *Error) Timeout() bool {
	return e.Status == StatusTimeout
}
