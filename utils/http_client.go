package utils

import (
	"net/http"
	"time"
)

// NewPooledHTTPClient returns an HTTP client with connection pooling tuned
// for the SDK's side-channel transfers (presigned-URL uploads, remote file
// downloads). Each owner holds its own client so there is no process-wide
// shared state; idle connections are reclaimed after 90 seconds.
func NewPooledHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// CloseIdleConnections releases the idle pool of a client created by
// NewPooledHTTPClient. Call it when the owning service is discarded.
func CloseIdleConnections(c *http.Client) {
	if c == nil {
		return
	}
	if transport, ok := c.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
