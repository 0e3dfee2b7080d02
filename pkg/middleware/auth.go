package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Verifier is the minimal interface the auth middleware depends on.
type Verifier interface {
	Verify(token string) (map[string]interface{}, error)
}

// RequireAuth gates a route behind a valid bearer token.
// A missing Authorization header short-circuits with 401 "Unauthorized
// access". The token is the second whitespace-delimited segment of the
// header; a header with no second segment yields an empty token, which fails
// verification and short-circuits with 401 "Forbidden access". On success the
// decoded claims are stored in the request context under "claims".
func RequireAuth(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		var token string
		if parts := strings.Fields(header); len(parts) > 1 {
			token = parts[1]
		}

		claims, err := ver.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
