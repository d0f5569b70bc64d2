package catalog

import (
	"context"

	"starwarsapi/internal/domain"
)

// PeopleRepository defines the read side of the people table
type PeopleRepository interface {
	Find(ctx context.Context) ([]domain.People, error)
	FindByID(ctx context.Context, id int64) (*domain.People, error)
}

// PlanetRepository defines the read side of the planets table
type PlanetRepository interface {
	Find(ctx context.Context) ([]domain.Planet, error)
	FindByID(ctx context.Context, id int64) (*domain.Planet, error)
}
