package favorite

import (
	"context"

	"starwarsapi/internal/domain"
)

// FavoriteRepository is satisfied by repository.FavoriteRepository
type FavoriteRepository interface {
	FindByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
	FindByUserAndPlanet(ctx context.Context, userID, planetID int64) (*domain.Favorite, error)
	FindByUserAndPeople(ctx context.Context, userID, peopleID int64) (*domain.Favorite, error)
	Insert(ctx context.Context, f *domain.Favorite) error
	Delete(ctx context.Context, id int64) error
}

type PlanetFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.Planet, error)
}

type PeopleFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.People, error)
}
