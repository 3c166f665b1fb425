package service

import "errors"

// Service-level failure classes. Each wraps the underlying cause, so
// [errors.Is] works against both the class and the original sentinel.
var (
	// ErrConfig is fatal: the run cannot start.
	ErrConfig = errors.New("configuration error")
	// ErrNetwork covers transport failures and unexpected status codes.
	ErrNetwork = errors.New("network error")
	// ErrParse covers response bodies of the wrong shape.
	ErrParse = errors.New("parse error")
	// ErrPersist covers failures writing the accounts file.
	ErrPersist = errors.New("persist error")
	// ErrInvalidResult is returned when a generation result has neither or
	// both variants set.
	ErrInvalidResult = errors.New("invalid generation result")
)
