package middleware

import (
	"net/http"

	"records-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// SecurityConfig holds security middleware configuration
type SecurityConfig struct {
	MaxRequestBodySize int64 // Maximum request body size in bytes
}

// NewSecurityConfigFromEnv creates security config from environment variables
func NewSecurityConfigFromEnv() *SecurityConfig {
	maxSize := getEnvInt("MAX_REQUEST_BODY_SIZE", 1048576) // Default 1MB

	return &SecurityConfig{
		MaxRequestBodySize: int64(maxSize),
	}
}

// SecurityHeaders adds security-related HTTP headers
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent clickjacking
		c.Header("X-Frame-Options", "DENY")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent information leakage
		c.Header("X-Powered-By", "")
		c.Header("Server", "")

		// Content Security Policy (strict for API)
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		// Referrer policy
		c.Header("Referrer-Policy", "no-referrer")

		c.Next()
	}
}

// RequestSizeLimit limits the size of incoming request bodies
func RequestSizeLimit(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			logging.Logger.WithFields(map[string]interface{}{
				"client_ip":      c.ClientIP(),
				"content_length": c.Request.ContentLength,
				"max_size":       maxSize,
			}).Warn("Request body too large")

			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"code":           "REQUEST_TOO_LARGE",
				"message":        "Request body too large",
				"max_size_bytes": maxSize,
			})
			c.Abort()
			return
		}

		// Set a hard limit on the request body reader
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)

		c.Next()
	}
}

// ErrorSanitizer catches errors and returns sanitized error messages
func ErrorSanitizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			// Log the full error details
			logging.Logger.WithFields(map[string]interface{}{
				"client_ip": c.ClientIP(),
				"path":      c.Request.URL.Path,
				"method":    c.Request.Method,
				"error":     err.Error(),
			}).Error("Request error")

			// Don't expose internal error details to the client. Handlers
			// set their own responses; this is a safety net for 5xx only.
			if c.Writer.Status() >= 500 && !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "An internal error occurred. Please try again later.",
				})
			}
		}
	}
}
