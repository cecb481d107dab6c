package usecase

import (
	"context"
	"net/http"
	"strings"

	"bengkel/internal/domain/model"
	repo "bengkel/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Pembuat ID identitas baru, diinject supaya bisa di-mock.
type IDGenerator interface {
	NewID() string
}

// Administrasi akun staf. Semua operasi di sini sudah dijaga
// RoleGuard(super_admin) yang membaca role dari DB tiap request.
type UserAdminUsecase struct {
	users repo.UserRepository
	idGen IDGenerator
}

func NewUserAdminUsecase(users repo.UserRepository, idGen IDGenerator) *UserAdminUsecase {
	return &UserAdminUsecase{users: users, idGen: idGen}
}

type CreateUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserRoleInput struct {
	Role string `json:"role"`
}

func (u *UserAdminUsecase) List(ctx context.Context) ([]model.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return []model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

// Create membuat identitas staf baru dan langsung memasang role yang
// diminta (tidak menunggu default guest).
func (u *UserAdminUsecase) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 {
		return nil, NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	role := model.Role(in.Role)
	if in.Role == "" {
		role = model.RoleGuest
	}
	if !role.IsValid() {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	if existing, err := u.users.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "email already registered")
	}

	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		ID:           u.idGen.NewID(),
		Email:        email,
		PasswordHash: string(pwHash),
		Role:         role,
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "failed to create user")
	}

	return user, nil
}

func (u *UserAdminUsecase) UpdateRole(ctx context.Context, targetID string, in UpdateUserRoleInput) (*model.User, error) {
	if strings.TrimSpace(targetID) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	role := model.Role(in.Role)
	if !role.IsValid() {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	if err := u.users.UpdateRole(ctx, targetID, role); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return nil, NewHTTPError(http.StatusBadRequest, "failed to update role")
	}

	user, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

// Delete menghapus identitas. Aktor tidak pernah boleh menghapus
// akunnya sendiri.
func (u *UserAdminUsecase) Delete(ctx context.Context, actorID string, targetID string) error {
	if strings.TrimSpace(targetID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if actorID == targetID {
		return NewHTTPError(http.StatusBadRequest, "cannot delete your own account")
	}

	if err := u.users.Delete(ctx, targetID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		return NewHTTPError(http.StatusBadRequest, "failed to delete user")
	}
	return nil
}
