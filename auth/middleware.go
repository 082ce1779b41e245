package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// claimsKey is the gin context key the middleware stores decoded claims under.
const claimsKey = "authClaims"

// CheckAuth returns a middleware that validates the raw token in the
// Authorization header (no scheme prefix). When roles are given, the token's
// role must be one of them.
func CheckAuth(secret string, roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "you are not Authorized"})
			return
		}

		claims, err := ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		if len(allowed) > 0 {
			if _, ok := allowed[claims.Role]; !ok {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized. Insufficient role."})
				return
			}
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims CheckAuth attached to the context, or nil on
// unauthenticated routes.
func ClaimsFrom(c *gin.Context) *Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
