package middleware

import (
	"net/http"
	"strings"

	staffRepo "marketdesk/database/repository/staff"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware authenticates a staff member from the Authorization
// header. The token must be valid and its hash must match the one stored on
// the staff record, so revoked tokens fail even before expiry.
func JWTAuthMiddleware(staffRepo staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		member, err := staffRepo.GetByTokenHash(computedHash)
		if err != nil || member == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or staff not found"})
			return
		}
		if !member.Active {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}

		c.Set("staffID", member.ID)
		c.Set("businessID", member.BusinessID)
		c.Set("staffRole", member.Role)
		c.Set("businessManaged", member.BusinessManaged)
		c.Next()
	}
}
