package middleware

import (
	"net/http"
	"strings"

	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const patientIDKey = "patientID"

// PatientIdentity verifies an upstream-issued HS256 bearer token and exposes its subject as the
// patient id. Without a token the request passes anonymously unless required is set.
func PatientIdentity(secret string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				abortUnauthorized(c, "Missing bearer token")
				return
			}
			c.Next()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if !strings.HasPrefix(authHeader, "Bearer ") || tokenString == "" {
			abortUnauthorized(c, "Malformed authorization header")
			return
		}
		if secret == "" {
			zap.L().Error("Bearer token received but JWT_SECRET is not configured")
			abortUnauthorized(c, "Token cannot be verified")
			return
		}

		patientID, err := utils.ExtractIDFromToken(secret, tokenString)
		if err != nil {
			zap.L().Warn("Rejected bearer token", zap.Error(err))
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		c.Set(patientIDKey, patientID)
		c.Next()
	}
}

// PatientIDFromContext returns the verified patient id, if the request carried a token.
func PatientIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(patientIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
		Error:   "unauthorized",
		Message: message,
	})
}
