package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Error codes used across the API surface.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeInternal         = "INTERNAL_ERROR"
	CodeInvalidFileType  = "INVALID_FILE_TYPE"
	CodeFileTooLarge     = "FILE_TOO_LARGE"
	CodeInvalidFolder    = "INVALID_FOLDER"
)

// ErrorResponse is the stable error envelope. Details carries field-level
// validation messages when present.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Code      string    `json:"code"`
	Details   any       `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func Fail(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func AbortFail(c *gin.Context, status int, code, message string, details any) {
	c.Abort()
	Fail(c, status, code, message, details)
}

// RegisterFallbacks installs enveloped 404/405 responses for unmatched
// routes and methods.
func RegisterFallbacks(r *gin.Engine) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		Fail(c, 405, CodeMethodNotAllowed, "method not allowed", nil)
	})
	r.NoRoute(func(c *gin.Context) {
		Fail(c, 404, CodeNotFound, "resource not found", nil)
	})
}
