package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminKeyAuth returns middleware that requires a valid admin key for access.
// If no admin key is configured, all requests are allowed (local dev).
// The key is provided in the Authorization header as "Bearer <key>".
func AdminKeyAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// No configured key means auth is disabled
		if adminKey == "" {
			c.Next()
			return
		}

		providedKey, errCode := bearerToken(c)
		if errCode != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": authErrorMessage(errCode),
				"code":  errCode,
			})
			return
		}

		// Constant-time comparison to prevent timing attacks
		if subtle.ConstantTimeCompare([]byte(providedKey), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid admin key",
				"code":  "AUTH_INVALID_KEY",
			})
			return
		}

		c.Next()
	}
}

// AuthStatus returns a handler reporting whether admin authentication is
// enabled. Public, so the UI can decide whether to prompt for a key.
func AuthStatus(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"auth_enabled": adminKey != "",
		})
	}
}

func bearerToken(c *gin.Context) (token, errCode string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "AUTH_REQUIRED"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "AUTH_INVALID_FORMAT"
	}
	return parts[1], ""
}

func authErrorMessage(code string) string {
	switch code {
	case "AUTH_REQUIRED":
		return "Authorization header required"
	case "AUTH_INVALID_FORMAT":
		return "Invalid authorization format. Use: Bearer <admin_key>"
	default:
		return "Unauthorized"
	}
}
