package middleware

import (
	"context"
	"net/http"
	"strings"

	"techhive-users/internal/services"
	"techhive-users/internal/transport/httpdto"
	"techhive-users/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	authResultKey = "auth_result"
	bearerPrefix  = "Bearer "

	msgMissingToken = "Unauthorized: Missing or invalid token."
	msgInvalidToken = "Unauthorized: Invalid token."
)

// Authentication verifies whatever bearer token the request carries and stores
// the verdict for later stages. It never rejects a request by itself.
func Authentication(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractBearer(c); token != "" {
			result := verifier.Verify(token)
			c.Set(authResultKey, result)
			if result.Succeeded && result.Claims != nil {
				ctx := context.WithValue(c.Request.Context(), logger.UserIdKey, result.Claims.Subject)
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// AuthGate stops any request without a well formed "Bearer " header or whose
// token did not verify. When Authentication is not mounted in front of it, the
// gate verifies the extracted token itself.
func AuthGate(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.TrimSpace(header) == "" || !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpdto.NewErrorResponse(msgMissingToken))
			return
		}
		token := strings.TrimSpace(header[len(bearerPrefix):])

		result, ok := AuthResultFrom(c)
		if !ok {
			result = services.AuthResult{}
			if verifier != nil {
				result = verifier.Verify(token)
			}
			c.Set(authResultKey, result)
		}
		if !result.Succeeded {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpdto.NewErrorResponse(msgInvalidToken))
			return
		}

		c.Next()
	}
}

// AuthResultFrom returns the verdict recorded by Authentication or AuthGate.
func AuthResultFrom(c *gin.Context) (services.AuthResult, bool) {
	v, ok := c.Get(authResultKey)
	if !ok {
		return services.AuthResult{}, false
	}
	res, ok := v.(services.AuthResult)
	return res, ok
}

// extractBearer reads the token the way the authentication scheme does: the
// scheme name is matched case-insensitively.
func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
