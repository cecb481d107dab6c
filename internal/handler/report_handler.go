package handler

import (
	"net/http"
	"time"

	"bengkel/internal/config"
	"bengkel/internal/domain/model"
	"bengkel/internal/middleware"
	"bengkel/internal/repository"
	"bengkel/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	e.GET("/api/reports/summary", h.summary,
		middleware.AuthJWT(cfg),
		middleware.RoleGuard(userRepo, model.RoleAdmin, model.RoleSuperAdmin),
	)
}

func (h *ReportHandler) summary(c echo.Context) error {
	var f repository.ReportFilter

	if v := c.QueryParam("from"); v != "" {
		tm, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from"})
		}
		f.From = &tm
	}
	if v := c.QueryParam("to"); v != "" {
		tm, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to"})
		}
		f.To = &tm
	}

	out, err := h.uc.Summary(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
