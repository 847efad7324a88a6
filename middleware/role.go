package middleware

import (
	"net/http"

	"marketdesk/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the given staff roles. It must run
// after JWTAuthMiddleware, which sets "staffRole" in the context.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := c.GetString("staffRole")
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}

// RequireCatalogWrite gates catalog mutations. Owners and dispatchers always
// pass. Providers pass only when their service list is self-managed, i.e.
// the staff record's business-managed flag is off. Runs after
// JWTAuthMiddleware, which sets "staffRole" and "businessManaged".
func RequireCatalogWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.GetString("staffRole") {
		case models.RoleOwner, models.RoleDispatcher:
			c.Next()
			return
		case models.RoleProvider:
			if !c.GetBool("businessManaged") {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Catalog is managed by the business"})
	}
}
