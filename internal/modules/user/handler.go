package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starwarsapi/internal/pkg/response"
)

const greeting = "Hello, this is your GET /user response "

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/user", h.Hello)
	r.GET("/users", h.ListUsers)
}

// Hello handles GET /user
func (h *Handler) Hello(c *gin.Context) {
	response.Message(c, http.StatusOK, greeting)
}

// ListUsers handles GET /users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
