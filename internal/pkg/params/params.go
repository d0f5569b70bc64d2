package params

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starwarsapi/internal/pkg/response"
)

// ID reads an unsigned integer path parameter. A segment that is not a plain
// decimal number does not match the route, so it is answered with 404 and
// false is returned.
func ID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 63)
	if err != nil {
		response.Message(c, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return 0, false
	}
	return int64(id), true
}
