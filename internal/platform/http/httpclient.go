// Package http provides the shared HTTP client for external API calls.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client configured for external API calls.
//
// Settings:
//   - Proxy: honored from the environment (HTTP_PROXY etc.)
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - Dialer.KeepAlive: how long reusable TCP connections are kept
//   - MaxIdleConns: 100, to avoid exhaustion under load
//   - IdleConnTimeout: how long idle connections are kept
//   - TLSHandshakeTimeout: upper bound for the HTTPS handshake
//   - Client.Timeout: whole-request timeout, passed by the caller
//
// Note: http.DefaultClient has no timeout, so always use a custom client.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
