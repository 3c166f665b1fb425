package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request made through [HTTPClient].
const UserAgent = "xagcl/1.0"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with an
// independent resty.Client that identifies itself with [UserAgent] and
// expects JSON responses.
//
// Retries are left at resty's default of zero.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
