// Package httputil provides small helpers for HTTP transport code.
package httputil

import "net/http"

// BaseURL reconstructs the scheme and host the client used to reach the
// server, honoring X-Forwarded-Proto when running behind a proxy. Used to
// qualify relative upload URLs at read time.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = p
	}
	return scheme + "://" + r.Host
}
