package repository

import "context"

// Repo yang tersedia di dalam transaksi.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Products() ProductRepository
}

// Menyembunyikan begin/commit/rollback dari usecase.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
