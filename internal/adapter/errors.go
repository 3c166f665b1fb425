package adapter

import "errors"

var (
	// ErrNetwork indicates that the request could not be completed at the
	// transport level (DNS, connection refused, timeout, cancellation).
	ErrNetwork = errors.New("network error")
	// ErrUnexpectedStatus indicates a non-2xx response that does not carry a
	// generator message.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrUnauthorized is joined with ErrUnexpectedStatus on 401 and 403.
	ErrUnauthorized = errors.New("api token rejected")
	// ErrMalformedResponse indicates a body that is not valid JSON of the
	// expected shape.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrTokenNotSet is returned by GenerateAccount before any request is
	// made when no token was stored.
	ErrTokenNotSet = errors.New("api token is not set")
)
