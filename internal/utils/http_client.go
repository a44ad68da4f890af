package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty surface
// while the rest of the codebase depends on a local type.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection
// pool and default resty configuration.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
