package middleware

import (
	"net/http"
	"strings"

	"gearshare/internal/pkg/jwt"
	"gearshare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	UsernameKey     = "username"
	RoleKey         = "role"
	PrincipalHeader = "X-Username"
)

// legacyPrincipalKeys are the per-route names older clients send the acting
// user under, either as a header or as a query parameter.
var legacyPrincipalKeys = []string{
	"owner_username",
	"reserver_username",
	"reporter_username",
	"reviewer_username",
}

// Principal resolves the acting user without requiring one. Explicit
// identity headers win over the bearer token.
func Principal(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if username := explicitPrincipal(c); username != "" {
			c.Set(UsernameKey, username)
			c.Next()
			return
		}

		if claims, ok := bearerClaims(c, jwtService); ok {
			c.Set(UsernameKey, claims.Username)
			c.Set(RoleKey, claims.Role)
		}
		c.Next()
	}
}

// RequirePrincipal rejects requests that carry no acting user.
func RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(UsernameKey) == "" {
			response.Error(c, http.StatusBadRequest, "PRINCIPAL_REQUIRED", "acting username is required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// JWTAuth accepts only a valid bearer token.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwtService)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "valid bearer token required")
			c.Abort()
			return
		}
		c.Set(UsernameKey, claims.Username)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

func Username(c *gin.Context) string {
	return c.GetString(UsernameKey)
}

func explicitPrincipal(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(PrincipalHeader)); v != "" {
		return v
	}
	for _, key := range legacyPrincipalKeys {
		if v := strings.TrimSpace(c.GetHeader(key)); v != "" {
			return v
		}
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			return v
		}
	}
	return ""
}

func bearerClaims(c *gin.Context, jwtService *jwt.Service) (*jwt.Claims, bool) {
	if jwtService == nil {
		return nil, false
	}
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return nil, false
	}
	claims, err := jwtService.ValidateToken(strings.TrimSpace(token))
	if err != nil {
		return nil, false
	}
	return claims, true
}
