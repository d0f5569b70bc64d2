package catalog

import (
	"context"
	"errors"

	"starwarsapi/internal/domain"
	"starwarsapi/internal/repository"
)

// Service serves the read-only people and planets datasets.
type Service struct {
	people  PeopleRepository
	planets PlanetRepository
}

func NewService(people PeopleRepository, planets PlanetRepository) *Service {
	return &Service{people: people, planets: planets}
}

func (s *Service) ListPeople(ctx context.Context) ([]domain.People, error) {
	return s.people.Find(ctx)
}

func (s *Service) GetPeople(ctx context.Context, id int64) (*domain.People, error) {
	p, err := s.people.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPersonNotFound
	}
	return p, err
}

func (s *Service) ListPlanets(ctx context.Context) ([]domain.Planet, error) {
	return s.planets.Find(ctx)
}

func (s *Service) GetPlanet(ctx context.Context, id int64) (*domain.Planet, error) {
	p, err := s.planets.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPlanetNotFound
	}
	return p, err
}
