package handler

import (
	"net/http"

	"bengkel/internal/config"
	"bengkel/internal/domain/model"
	"bengkel/internal/middleware"
	"bengkel/internal/repository"
	"bengkel/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Administrasi akun staf, khusus super_admin.
type UserHandler struct {
	uc *usecase.UserAdminUsecase
}

func NewUserHandler(uc *usecase.UserAdminUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/api/users")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.RoleGuard(userRepo, model.RoleSuperAdmin))

	g.GET("", h.list)
	g.POST("", h.create)
	g.PATCH("/:id", h.updateRole)
	g.DELETE("/:id", h.delete)
}

func (h *UserHandler) list(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"users": users})
}

func (h *UserHandler) create(c echo.Context) error {
	var req usecase.CreateUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"user": user})
}

func (h *UserHandler) updateRole(c echo.Context) error {
	var req usecase.UpdateUserRoleInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, err := h.uc.UpdateRole(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) delete(c echo.Context) error {
	actorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.Delete(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "user deleted"})
}
