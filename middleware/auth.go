package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"barberbook/models"
	"barberbook/services/identity"
)

const identityKey = "identity"

// AuthMiddleware verifies the bearer token with the identity provider
// and stores a request-scoped Identity in the context. There is no
// global current-user state anywhere.
func AuthMiddleware(idSvc identity.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		ident, err := idSvc.Verify(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(identityKey, *ident)
		c.Next()
	}
}

// AdminMiddleware gates admin-only routes on the verified identity's
// admin flag. It must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok || !ident.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetIdentity fetches the identity the auth middleware stored.
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	ident, ok := v.(models.Identity)
	return ident, ok
}
