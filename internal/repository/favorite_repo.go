package repository

import (
	"context"

	"starwarsapi/internal/domain"

	"gorm.io/gorm"
)

// FavoriteRepository stores the per-user favorite list.
type FavoriteRepository interface {
	FindByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
	FindByUserAndPlanet(ctx context.Context, userID, planetID int64) (*domain.Favorite, error)
	FindByUserAndPeople(ctx context.Context, userID, peopleID int64) (*domain.Favorite, error)
	Insert(ctx context.Context, f *domain.Favorite) error
	Delete(ctx context.Context, id int64) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindByUser returns the user's favorites in insertion order, with the
// favorited planet or person preloaded.
func (r *favoriteRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	favorites := make([]domain.Favorite, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Planet").
		Preload("People").
		Order("id ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) FindByUserAndPlanet(ctx context.Context, userID, planetID int64) (*domain.Favorite, error) {
	return r.first(ctx, "user_id = ? AND planet_id = ?", userID, planetID)
}

func (r *favoriteRepository) FindByUserAndPeople(ctx context.Context, userID, peopleID int64) (*domain.Favorite, error) {
	return r.first(ctx, "user_id = ? AND people_id = ?", userID, peopleID)
}

// Insert returns ErrDuplicate when a unique index rejects the row, which is
// how a lost read-then-insert race surfaces.
func (r *favoriteRepository) Insert(ctx context.Context, f *domain.Favorite) error {
	return translate(r.db.WithContext(ctx).Omit("User", "Planet", "People").Create(f).Error)
}

func (r *favoriteRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Favorite{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *favoriteRepository) first(ctx context.Context, query string, args ...interface{}) (*domain.Favorite, error) {
	var f domain.Favorite
	if err := r.db.WithContext(ctx).Where(query, args...).First(&f).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}
