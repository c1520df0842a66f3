package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/internal/authz"
	"turfbook/internal/service"
)

// ResolveIdentity loads the user's roles and permissions once per
// request and stores them on the context. Must run after JWTAuth.
func ResolveIdentity(authzService *service.AuthzService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserIDFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		identity, err := authzService.ResolveIdentity(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve permissions"})
			return
		}

		c.Request = c.Request.WithContext(authz.NewContext(c.Request.Context(), identity))
		c.Next()
	}
}

// RequirePermission gates a route on a single permission name.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authz.FromContext(c.Request.Context())
		if !ok || !identity.HasPermission(permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates admin-panel routes on the elevated-role check.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authz.FromContext(c.Request.Context())
		if !ok || !identity.IsAdminOrSubAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
