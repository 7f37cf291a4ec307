package middleware

import "net/http"

// BodyLimit caps the request body on mutating verbs. Oversized bodies
// surface as http.MaxBytesError from the handlers' JSON decoders.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 {
				switch r.Method {
				case http.MethodPost, http.MethodPut, http.MethodPatch:
					r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
