package response

import (
	"github.com/gin-gonic/gin"
)

// The wire contract is fixed: successful register/login carry
// {message, user, token}, me carries {user}, failures carry {error} with an
// optional details map for field-level validation messages.

// Auth writes a successful register/login body.
func Auth(c *gin.Context, status int, message string, user any, token string) {
	c.JSON(status, gin.H{
		"message": message,
		"user":    user,
		"token":   token,
	})
}

// User writes a {user} body.
func User(c *gin.Context, status int, user any) {
	c.JSON(status, gin.H{"user": user})
}

// Error writes an {error} body, with details attached when present.
func Error(c *gin.Context, status int, message string, details any) {
	body := gin.H{"error": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// AbortError writes an {error} body and aborts the handler chain; used by
// middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
