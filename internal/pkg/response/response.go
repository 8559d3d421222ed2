package response

import "github.com/gin-gonic/gin"

// Error writes the API's flat error body: {"error": "<message>"}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}
