package middleware

import (
	"io"
	"net/http"
)

// bodies larger than this are closed without being fully read
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest drains what the handler left of the request body, so the
// connection can be reused, and closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
				_ = r.Body.Close()
			}
		})
	}
}
