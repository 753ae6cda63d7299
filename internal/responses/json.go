package responses

import "github.com/gin-gonic/gin"

// Message writes the success envelope used by every mutating endpoint.
func Message(c *gin.Context, message string) {
	c.JSON(200, gin.H{"message": message})
}

// Fail writes the single-string error envelope. Every failure class shares
// this shape; only the HTTP status distinguishes them.
func Fail(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}
