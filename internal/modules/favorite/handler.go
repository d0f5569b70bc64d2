package favorite

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starwarsapi/internal/pkg/params"
	"starwarsapi/internal/pkg/response"
)

// Handler serves the favorites endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects the identity middleware to have set "user_id".
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/favorites", h.GetFavorites)

	favorite := rg.Group("/favorite")
	{
		favorite.POST("/planet/:id", h.AddPlanet)
		favorite.DELETE("/planet/:id", h.RemovePlanet)
		favorite.POST("/people/:id", h.AddPeople)
		favorite.DELETE("/people/:id", h.RemovePeople)
	}
}

// GetFavorites returns the favorites of the current user
//
// @Summary List the current user's favorites
// @Tags Favorite
// @Produce json
// @Success 200 {array} domain.Favorite
// @Router /users/favorites [get]
func (h *Handler) GetFavorites(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	favorites, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// AddPlanet handles POST /favorite/planet/:id
//
// @Summary Add a planet to favorites
// @Tags Favorite
// @Produce json
// @Param id path int true "Planet ID"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Planet already in favorites"
// @Failure 404 {object} MessageResponse "Planet not found"
// @Router /favorite/planet/{id} [post]
func (h *Handler) AddPlanet(c *gin.Context) {
	userID, planetID, ok := userAndID(c)
	if !ok {
		return
	}

	if err := h.service.AddPlanet(c.Request.Context(), userID, planetID); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Planet added to favorites")
}

// AddPeople handles POST /favorite/people/:id
//
// @Summary Add a person to favorites
// @Tags Favorite
// @Produce json
// @Param id path int true "People ID"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Person already in favorites"
// @Failure 404 {object} MessageResponse "Person not found"
// @Router /favorite/people/{id} [post]
func (h *Handler) AddPeople(c *gin.Context) {
	userID, peopleID, ok := userAndID(c)
	if !ok {
		return
	}

	if err := h.service.AddPeople(c.Request.Context(), userID, peopleID); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Person added to favorites")
}

// RemovePlanet handles DELETE /favorite/planet/:id
//
// @Summary Remove a planet from favorites
// @Tags Favorite
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse "Favorite planet not found"
// @Router /favorite/planet/{id} [delete]
func (h *Handler) RemovePlanet(c *gin.Context) {
	userID, planetID, ok := userAndID(c)
	if !ok {
		return
	}

	if err := h.service.RemovePlanet(c.Request.Context(), userID, planetID); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Favorite planet deleted")
}

// RemovePeople handles DELETE /favorite/people/:id
//
// @Summary Remove a person from favorites
// @Tags Favorite
// @Produce json
// @Param id path int true "People ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse "Favorite person not found"
// @Router /favorite/people/{id} [delete]
func (h *Handler) RemovePeople(c *gin.Context) {
	userID, peopleID, ok := userAndID(c)
	if !ok {
		return
	}

	if err := h.service.RemovePeople(c.Request.Context(), userID, peopleID); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Favorite person deleted")
}

func currentUser(c *gin.Context) (int64, bool) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Message(c, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return userID, true
}

func userAndID(c *gin.Context) (int64, int64, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return 0, 0, false
	}
	id, ok := params.ID(c, "id")
	if !ok {
		return 0, 0, false
	}
	return userID, id, true
}

// MessageResponse documents the {"msg": ...} body for swagger
type MessageResponse struct {
	Msg string `json:"msg"`
}
