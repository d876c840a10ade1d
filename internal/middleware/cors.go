// Package middleware provides HTTP middleware for the relay API.
package middleware

import "net/http"

// CORS returns middleware that marks responses readable from any origin.
//
// The widget runs on arbitrary third-party pages, so every response — success
// or failure — is origin-agnostic. This is safe only because no response
// carries a session-authenticating credential; Allow-Credentials must never
// be added here. Preflight OPTIONS requests get an empty 200 with the same
// headers and no side effects.
func CORS(allowedMethods string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
