package middleware

import (
	"net/http"

	"bengkel/internal/domain/model"
	"bengkel/internal/repository"

	"github.com/labstack/echo/v4"
)

// Role hasil verifikasi DB, bukan klaim token.
const CtxVerifiedRoleKey = "verified_role" // model.Role

// RoleGuard membaca ulang role dari DB pada setiap request dan menolak
// kalau bukan salah satu dari allowed. Klaim role di token tidak
// pernah dipercaya untuk operasi yang dijaga.
func RoleGuard(userRepo repository.UserRepository, allowed ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawUserID := c.Get(CtxUserIDKey)
			userID, ok := rawUserID.(string)
			if !ok || userID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil || user == nil {
				// kegagalan lookup diperlakukan sebagai tanpa role
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if !user.Role.In(allowed...) {
				return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
			}

			c.Set(CtxVerifiedRoleKey, user.Role)
			return next(c)
		}
	}
}
