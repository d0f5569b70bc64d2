package favorite

import "starwarsapi/internal/pkg/apperr"

var (
	ErrPlanetNotFound        = apperr.NotFound("Planet not found")
	ErrPersonNotFound        = apperr.NotFound("Person not found")
	ErrPlanetAlreadyFavorite = apperr.BadRequest("Planet already in favorites")
	ErrPersonAlreadyFavorite = apperr.BadRequest("Person already in favorites")
	ErrFavoritePlanetMissing = apperr.NotFound("Favorite planet not found")
	ErrFavoritePersonMissing = apperr.NotFound("Favorite person not found")
)
