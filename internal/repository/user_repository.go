package repository

import (
	"context"

	"bengkel/internal/domain/model"
)

// Penyimpanan identitas staf + role. Satu baris per user.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// UpdateRole juga menulis updated_at, tidak pernah no-op diam-diam.
	UpdateRole(ctx context.Context, userID string, role model.Role) error
	Delete(ctx context.Context, userID string) error
}
