package middleware

import (
	"net/http"

	"resort-booking/pkg/roles"
	"resort-booking/pkg/utils"

	"go.uber.org/zap"
)

// RequireRole rejects requests whose principal does not carry at least the
// given role. Must run after AuthSession.
func RequireRole(min roles.Role, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !role.AtLeast(min) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Insufficient role for route",
					zap.String("user_id", userID.String()),
					zap.String("role", role.String()),
					zap.String("required", min.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, min.String()+" access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
