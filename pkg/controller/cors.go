package controller

import (
	"net/http"
	"strings"
)

// CORSAllowedMethods are the methods browsers may use against the drills API:
// reads of the calculators and evaluations, POST to create an evaluation and
// DELETE to remove one.
var CORSAllowedMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
}

// CORSAllowedHeaders covers JSON bodies, the bearer token of the evaluation
// routes and the request ID.
var CORSAllowedHeaders = []string{
	"Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
	"Accept", "Origin", "Cache-Control", RequestIDHeader,
}

// WithCORS lets browser clients on any origin call the API. OPTIONS preflight
// requests end here with 204 No Content and never reach the routes.
func WithCORS(next http.Handler) http.Handler {
	methods := strings.Join(CORSAllowedMethods, ", ")
	headers := strings.Join(CORSAllowedHeaders, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Headers", headers)
		h.Set("Access-Control-Allow-Methods", methods)
		// lets clients read the ID they need for support requests
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
