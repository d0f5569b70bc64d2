package repository

import (
	"context"

	"starwarsapi/internal/domain"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) Find(ctx context.Context) ([]domain.Planet, error) {
	planets := make([]domain.Planet, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, err
	}
	return planets, nil
}

func (r *PlanetRepository) FindByID(ctx context.Context, id int64) (*domain.Planet, error) {
	var m domain.Planet
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *PlanetRepository) Insert(ctx context.Context, m *domain.Planet) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *PlanetRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Planet{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
