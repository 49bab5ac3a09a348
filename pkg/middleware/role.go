package middleware

import (
	"net/http"

	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/apiErrors"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/log"
)

// RoleMiddleware restricts a route to clients holding one of the allowed
// roles. It requires AuthMiddleware to have stored the claims already.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyClient).(*domain.Claims)
			if !ok {
				log.ForContext(r.Context()).Warn("access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Client is not authenticated", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if claims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				log.ForContext(r.Context()).Warnf("access denied for client=%s role=%d", claims.ClientID, claims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "You do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly restricts a route to admin clients.
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin})
}

// AllRoles allows any authenticated client.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin, domain.RoleAnalyst})
}
