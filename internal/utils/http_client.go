package utils

import (
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent with every request of clients built by
// NewHTTPClient.
const DefaultUserAgent = "voice-device/1"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool. Retries are disabled: every call is attempted exactly once.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("User-Agent", DefaultUserAgent)

	return &HTTPClient{Client: client}
}
