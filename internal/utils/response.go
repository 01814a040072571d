package utils

import "github.com/gin-gonic/gin"

// Error writes a JSON error body with a user-visible message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// Exists writes the 409 body the panel expects for duplicate resources.
func Exists(c *gin.Context, message string) {
	c.JSON(409, gin.H{"status": "exists", "message": message})
}

// ValidationFailed writes a 400 body with field-level details.
func ValidationFailed(c *gin.Context, message, details string) {
	c.JSON(400, gin.H{"status": "error", "message": message, "details": details})
}
