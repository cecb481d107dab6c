package handler

import (
	"net/http"

	"bengkel/internal/middleware"
	"bengkel/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// writeError memetakan error usecase ke JSON. Error yang tidak dikenal
// tidak pernah bocor keluar, selalu 500 generik.
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getUserIDFromContext(c echo.Context) (string, bool) {
	raw := c.Get(middleware.CtxUserIDKey)
	id, ok := raw.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func getUserEmailFromContext(c echo.Context) string {
	raw := c.Get(middleware.CtxUserEmailKey)
	email, _ := raw.(string)
	return email
}
