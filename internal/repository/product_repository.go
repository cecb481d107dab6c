package repository

import (
	"context"

	"bengkel/internal/domain/model"
)

// Persistensi sparepart, termasuk mutasi stok.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error

	// Pengurangan stok atomik dengan lantai nol: satu UPDATE
	// stock = GREATEST(stock - qty, 0). Stok tidak pernah negatif dan
	// tidak ada race read-modify-write antar request.
	DecrementStockClamped(ctx context.Context, productID int64, qty int64) error
}
