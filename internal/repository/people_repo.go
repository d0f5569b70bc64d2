package repository

import (
	"context"

	"starwarsapi/internal/domain"

	"gorm.io/gorm"
)

type PeopleRepository struct {
	db *gorm.DB
}

func NewPeopleRepository(db *gorm.DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

func (r *PeopleRepository) Find(ctx context.Context) ([]domain.People, error) {
	people := make([]domain.People, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *PeopleRepository) FindByID(ctx context.Context, id int64) (*domain.People, error) {
	var m domain.People
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *PeopleRepository) Insert(ctx context.Context, m *domain.People) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *PeopleRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.People{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
