package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler turns a panic in a handler into a 500 with an ErrorResponse body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("requestID", c.Writer.Header().Get("X-Request-ID")))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError aborts with an ErrorResponse that carries no code.
func JSONError(c *gin.Context, status int, message string, details string) {
	JSONCodeError(c, status, "", message, details)
}

// JSONCodeError is JSONError with a machine readable code the storefront can switch on.
func JSONCodeError(c *gin.Context, status int, code, message, details string) {
	GetLogger().Warn(message,
		zap.Int("status", status),
		zap.String("code", code),
		zap.String("path", c.FullPath()),
		zap.String("details", details))
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Code: code, Details: details})
}
