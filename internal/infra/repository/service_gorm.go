package repository

import (
	"context"
	"errors"

	"bengkel/internal/domain/model"
	repo "bengkel/internal/repository"

	"gorm.io/gorm"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) List(ctx context.Context) ([]model.Service, error) {
	var items []model.Service
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return []model.Service{}, err
	}
	return items, nil
}

func (r *ServiceGormRepository) FindByID(ctx context.Context, id int64) (model.Service, error) {
	var s model.Service
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Service{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Service{}, err
	}
	return s, nil
}

func (r *ServiceGormRepository) Create(ctx context.Context, s model.Service) (model.Service, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Service{}, err
	}
	return s, nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, s model.Service) error {
	res := r.db.WithContext(ctx).Model(&model.Service{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"name":  s.Name,
			"price": s.Price,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
