package middleware

import (
	"net/http"

	"careconnect-server/internal/domain/entity"
	"careconnect-server/pkg/response"
)

// RequireRole checks that the authenticated user holds one of the allowed
// roles. Role is read from context, set by AuthMiddleware from JWT claims.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, allowed := range allowedRoles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequirePatient restricts an endpoint to patients
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}

// RequireProvider restricts an endpoint to providers
func RequireProvider(next http.Handler) http.Handler {
	return RequireRole(entity.RoleProvider)(next)
}
