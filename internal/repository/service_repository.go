package repository

import (
	"context"

	"bengkel/internal/domain/model"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]model.Service, error)
	FindByID(ctx context.Context, id int64) (model.Service, error)
	Create(ctx context.Context, s model.Service) (model.Service, error)
	Update(ctx context.Context, s model.Service) error
	Delete(ctx context.Context, id int64) error
}
