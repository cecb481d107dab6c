package repository

import (
	"context"

	"bengkel/internal/domain/model"
)

type OrderItemRepository interface {
	Create(ctx context.Context, item model.OrderItem) (int64, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	CountByOrderID(ctx context.Context, orderID int64) (int64, error)
}
