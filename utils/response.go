package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the failure envelope. Successful responses carry the same
// "success" key next to their payload fields.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, &Response{
		Success: false,
		Error:   message,
	})
}

// Success responses
func Success(c *gin.Context, data gin.H) {
	respond(c, http.StatusOK, data)
}

func Created(c *gin.Context, data gin.H) {
	respond(c, http.StatusCreated, data)
}

// Error responses
func Unauthorized(c *gin.Context, message string) {
	fail(c, http.StatusUnauthorized, message)
}

func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	fail(c, http.StatusInternalServerError, message)
}

func Conflict(c *gin.Context, message string) {
	fail(c, http.StatusConflict, message)
}

// Forbidden is also what the account routes answer when no session is present.
func Forbidden(c *gin.Context, message string) {
	fail(c, http.StatusForbidden, message)
}
