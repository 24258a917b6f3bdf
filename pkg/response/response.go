package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the body used for every non-entity response: errors and
// plain-confirmation successes alike carry a single human-readable message.
type Message struct {
	Message string `json:"message"`
}

// OK sends a 200 response with a message body.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Message{Message: message})
}

// BadRequest sends a 400 error response
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Message{Message: message})
}

// Unauthorized sends a 401 error response
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Message{Message: message})
}

// NotFound sends a 404 error response
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Message{Message: message})
}

// InternalError sends a 500 error response
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Message{Message: message})
}
