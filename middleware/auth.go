package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fixflow/models"
	"fixflow/services/user"
	"fixflow/utils"
)

// ClientKey is the gin context key holding the authenticated *models.User.
const ClientKey = "client"

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func resolveClient(c *gin.Context, users *user.DefaultUserService) *models.User {
	token := bearerToken(c)
	if token == "" {
		return nil
	}
	id, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return nil
	}
	if !users.SessionActive(c.Request.Context(), token) {
		return nil
	}
	client, err := users.GetByID(c.Request.Context(), id)
	if err != nil {
		return nil
	}
	return client
}

// Authenticate rejects requests without a valid, unrevoked session token
// and stores the resolved account on the context.
func Authenticate(users *user.DefaultUserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := resolveClient(c, users)
		if client == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		c.Set(ClientKey, client)
		c.Next()
	}
}

// OptionalAuth resolves the account when a token is present but lets
// guests through. Order creation accepts guests.
func OptionalAuth(users *user.DefaultUserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client := resolveClient(c, users); client != nil {
			c.Set(ClientKey, client)
		}
		c.Next()
	}
}

// RequireRoles gates a route to the listed roles. Must run after
// Authenticate.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := Client(c)
		if client == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		for _, role := range roles {
			if client.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}

// Client returns the authenticated account from the context, or nil.
func Client(c *gin.Context) *models.User {
	if v, ok := c.Get(ClientKey); ok {
		if client, ok := v.(*models.User); ok {
			return client
		}
	}
	return nil
}
