package middleware

import (
	"net/http"

	"concert-venue/internal/auth"
	"concert-venue/pkg/utils"

	"go.uber.org/zap"
)

// RequireToken rejects the request with 401 unless validator accepts the
// bearer token. It runs before the body is read, so a rejected request never
// reaches the store.
func RequireToken(validator auth.TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := utils.BearerToken(r)

			ok, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate token",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if !ok {
				logger.Warn("Rejected request with invalid token",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Bool("token_present", token != ""))
				utils.ResponseUnauthorized(w, "Invalid or missing token")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetTokenContext(r.Context(), token)))
		})
	}
}
