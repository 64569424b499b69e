package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authUserKey = "auth_user_id"

// AuthOptional verifies a bearer token when one is presented and stores the
// user id for handlers. Requests without a token pass through untouched; a
// token that fails verification is rejected.
func AuthOptional(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Next()
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if id, ok := claims["user_id"].(float64); ok {
				c.Set(authUserKey, int64(id))
			}
		}
		c.Next()
	}
}

// GetAuthUserID returns the authenticated user id, zero when anonymous.
func GetAuthUserID(c *gin.Context) int64 {
	if v, ok := c.Get(authUserKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
