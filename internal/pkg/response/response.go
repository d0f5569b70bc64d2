package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwarsapi/internal/pkg/apperr"
)

// Message writes the {"msg": ...} body every endpoint uses for plain replies.
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"msg": msg})
}

// Fail renders an *apperr.Error with its own status. Anything else is attached
// to the context for the error logger and answered with a generic 500.
func Fail(c *gin.Context, err error) {
	var apiErr *apperr.Error
	if errors.As(err, &apiErr) {
		Message(c, apiErr.Status, apiErr.Message)
		return
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": http.StatusText(http.StatusInternalServerError)})
}
