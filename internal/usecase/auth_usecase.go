package usecase

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"bengkel/internal/config"
	"bengkel/internal/domain/model"
	repo "bengkel/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// Masa berlaku access token dashboard.
const accessTokenTTL = 12 * time.Hour

type AuthUsecase struct {
	cfg   config.Config
	users repo.UserRepository
	idGen IDGenerator
}

func NewAuthUsecase(cfg config.Config, users repo.UserRepository, idGen IDGenerator) *AuthUsecase {
	return &AuthUsecase{cfg: cfg, users: users, idGen: idGen}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
	ExpiresIn   int64      `json:"expires_in"`
}

type RoleOutput struct {
	Role        model.Role        `json:"role"`
	UserID      string            `json:"user_id"`
	Email       string            `json:"email"`
	Permissions model.Permissions `json:"permissions"`
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := u.issueAccessToken(user)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return &LoginOutput{
		User:        *user,
		AccessToken: token,
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
	}, nil
}

// ResolveRole membaca role dari DB. Identitas tanpa baris role
// diperlakukan sebagai guest, bukan error.
func (u *AuthUsecase) ResolveRole(ctx context.Context, userID string, email string) (RoleOutput, error) {
	if userID == "" {
		return RoleOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	role := model.RoleGuest
	user, err := u.users.FindByID(ctx, userID)
	if err != nil && err != repo.ErrNotFound {
		return RoleOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user != nil {
		role = user.Role
		email = user.Email
	}

	return RoleOutput{
		Role:        role,
		UserID:      userID,
		Email:       email,
		Permissions: model.PermissionsFor(role),
	}, nil
}

// SetupSuperAdmin: bootstrap sekali jalan, dijaga setup token dari env.
// Idempoten: kalau email sudah terdaftar, role-nya dinaikkan ke
// super_admin, bukan error.
func (u *AuthUsecase) SetupSuperAdmin(ctx context.Context, setupToken string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(setupToken), []byte(u.cfg.SetupToken)) != 1 {
		return "", NewHTTPError(http.StatusForbidden, "invalid setup token")
	}

	existing, err := u.users.FindByEmail(ctx, u.cfg.SetupAdminEmail)
	if err != nil && err != repo.ErrNotFound {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if existing != nil {
		if err := u.users.UpdateRole(ctx, existing.ID, model.RoleSuperAdmin); err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "failed to update role")
		}
		return "super admin role assigned to existing user", nil
	}

	pwHash, err := bcrypt.GenerateFromPassword([]byte(u.cfg.SetupAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		ID:           u.idGen.NewID(),
		Email:        strings.TrimSpace(strings.ToLower(u.cfg.SetupAdminEmail)),
		PasswordHash: string(pwHash),
		Role:         model.RoleSuperAdmin,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "failed to create super admin")
	}

	return "super admin account created", nil
}

func (u *AuthUsecase) issueAccessToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"role":  string(user.Role),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}
