package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"artgrid/internal/http-api/models"
	"artgrid/internal/http-api/repository"
	"artgrid/internal/http-api/service"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a bearer token in the
// Authorization header and stashes the caller identity in the context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireModerator allows only moderators and admins through. The role is
// read from the database rather than the token so demotions take effect
// immediately.
func RequireModerator(userRepo repository.UserRepository) gin.HandlerFunc {
	return requireRoles(userRepo, "Moderator access required", func(role string) bool {
		return role == models.RoleModerator || role == models.RoleAdmin
	})
}

// RequireAdmin allows only admins through.
func RequireAdmin(userRepo repository.UserRepository) gin.HandlerFunc {
	return requireRoles(userRepo, "Admin access required", func(role string) bool {
		return role == models.RoleAdmin
	})
}

func requireRoles(userRepo repository.UserRepository, message string, allowed func(string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(userID.(string))
		if err != nil || !allowed(user.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": message})
			c.Abort()
			return
		}

		c.Next()
	}
}
