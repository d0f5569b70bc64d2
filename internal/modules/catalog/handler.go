package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starwarsapi/internal/pkg/params"
	"starwarsapi/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers all catalog routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	people := r.Group("/people")
	{
		people.GET("", h.ListPeople)
		people.GET("/:id", h.GetPeople)
	}

	planets := r.Group("/planets")
	{
		planets.GET("", h.ListPlanets)
		planets.GET("/:id", h.GetPlanet)
	}
}

// ListPeople handles GET /people
func (h *Handler) ListPeople(c *gin.Context) {
	people, err := h.service.ListPeople(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}

// GetPeople handles GET /people/:id
func (h *Handler) GetPeople(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	person, err := h.service.GetPeople(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

// ListPlanets handles GET /planets
func (h *Handler) ListPlanets(c *gin.Context) {
	planets, err := h.service.ListPlanets(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, planets)
}

// GetPlanet handles GET /planets/:id
func (h *Handler) GetPlanet(c *gin.Context) {
	id, ok := params.ID(c, "id")
	if !ok {
		return
	}

	planet, err := h.service.GetPlanet(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, planet)
}
