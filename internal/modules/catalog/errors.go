package catalog

import "starwarsapi/internal/pkg/apperr"

var (
	ErrPersonNotFound = apperr.NotFound("Person not found")
	ErrPlanetNotFound = apperr.NotFound("Planet not found")
)
