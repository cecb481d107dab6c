package repository

import (
	"context"
	"errors"

	"bengkel/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// Filter daftar order untuk dashboard staf.
type OrderListFilter struct {
	Page           int
	Limit          int
	Status         string
	ApprovalStatus string
	IsReservation  *bool
}

// Kolom order yang boleh diubah lewat PATCH. Nil = tidak disentuh.
type OrderUpdate struct {
	Status         *model.OrderStatus
	ApprovalStatus *model.ApprovalStatus
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	Update(ctx context.Context, orderID int64, u OrderUpdate) error
	UpdateTotalAmount(ctx context.Context, orderID int64, total int64) error
}
