package favorite

import (
	"context"
	"errors"

	"starwarsapi/internal/domain"
	"starwarsapi/internal/repository"
)

// Service manages a user's favorite planets and people. Every method takes
// the acting user explicitly.
type Service struct {
	favorites FavoriteRepository
	planets   PlanetFinder
	people    PeopleFinder
}

func NewService(favorites FavoriteRepository, planets PlanetFinder, people PeopleFinder) *Service {
	return &Service{favorites: favorites, planets: planets, people: people}
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	return s.favorites.FindByUser(ctx, userID)
}

// AddPlanet checks the planet exists and is not already a favorite, then
// inserts. A unique-index rejection from a concurrent insert is reported as
// the same duplicate error.
func (s *Service) AddPlanet(ctx context.Context, userID, planetID int64) error {
	if _, err := s.planets.FindByID(ctx, planetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanetNotFound
		}
		return err
	}

	_, err := s.favorites.FindByUserAndPlanet(ctx, userID, planetID)
	switch {
	case err == nil:
		return ErrPlanetAlreadyFavorite
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	fav := &domain.Favorite{UserID: userID, PlanetID: &planetID}
	if err := s.favorites.Insert(ctx, fav); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrPlanetAlreadyFavorite
		}
		return err
	}
	return nil
}

func (s *Service) AddPeople(ctx context.Context, userID, peopleID int64) error {
	if _, err := s.people.FindByID(ctx, peopleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPersonNotFound
		}
		return err
	}

	_, err := s.favorites.FindByUserAndPeople(ctx, userID, peopleID)
	switch {
	case err == nil:
		return ErrPersonAlreadyFavorite
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	fav := &domain.Favorite{UserID: userID, PeopleID: &peopleID}
	if err := s.favorites.Insert(ctx, fav); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrPersonAlreadyFavorite
		}
		return err
	}
	return nil
}

// RemovePlanet deletes the favorite row only; the planet itself is not looked up.
func (s *Service) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	fav, err := s.favorites.FindByUserAndPlanet(ctx, userID, planetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFavoritePlanetMissing
		}
		return err
	}
	return s.remove(ctx, fav.ID, ErrFavoritePlanetMissing)
}

func (s *Service) RemovePeople(ctx context.Context, userID, peopleID int64) error {
	fav, err := s.favorites.FindByUserAndPeople(ctx, userID, peopleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFavoritePersonMissing
		}
		return err
	}
	return s.remove(ctx, fav.ID, ErrFavoritePersonMissing)
}

// remove tolerates a concurrent delete of the same row by reporting it missing.
func (s *Service) remove(ctx context.Context, id int64, missing error) error {
	if err := s.favorites.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return missing
		}
		return err
	}
	return nil
}
