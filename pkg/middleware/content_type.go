package middleware

import (
	"mime"
	"net/http"

	"concert-venue/pkg/utils"
)

// RequireJSON answers 400 when a request does not declare an
// application/json body.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			utils.ResponseBadRequest(w, "Content-Type must be application/json", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
