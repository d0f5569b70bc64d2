package user

import (
	"context"

	"starwarsapi/internal/domain"
)

// UserRepository defines the read side of the users table
type UserRepository interface {
	Find(ctx context.Context) ([]domain.User, error)
}

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// ListUsers returns every user; passwords are never serialized (see domain.User).
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.Find(ctx)
}
