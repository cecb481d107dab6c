package handler

import (
	"net/http"
	"strconv"

	"bengkel/internal/config"
	"bengkel/internal/domain/model"
	"bengkel/internal/middleware"
	"bengkel/internal/repository"
	"bengkel/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc      *usecase.OrderUsecase
	itemsUC *usecase.OrderItemUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase, itemsUC *usecase.OrderItemUsecase) *OrderHandler {
	return &OrderHandler{uc: uc, itemsUC: itemsUC}
}

type AttachItemsRequest struct {
	Items []usecase.AttachItemInput `json:"items"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	// form reservasi publik, tanpa auth
	e.POST("/api/orders", h.createReservation)

	// rute staf: role dicek ulang ke DB tiap request
	staff := e.Group("/api/orders")
	staff.Use(middleware.AuthJWT(cfg))
	staff.Use(middleware.RoleGuard(userRepo, model.RoleAdmin, model.RoleSuperAdmin))

	staff.POST("/direct", h.createDirect)
	staff.GET("", h.list)
	staff.GET("/:id", h.detail)
	staff.PATCH("/:id", h.update)
	staff.POST("/:id/items", h.attachItems)
}

func (h *OrderHandler) createReservation(c echo.Context) error {
	var req usecase.CreateReservationInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) createDirect(c echo.Context) error {
	var req usecase.CreateReservationInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateDirectOrder(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	f := repository.OrderListFilter{
		Status:         c.QueryParam("status"),
		ApprovalStatus: c.QueryParam("approval_status"),
	}

	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		f.Page = p
	}
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		f.Limit = l
	}
	if v := c.QueryParam("is_reservation"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid is_reservation"})
		}
		f.IsReservation = &b
	}

	orders, total, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"total":  total,
	})
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.UpdateOrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) attachItems(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req AttachItemsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.itemsUC.AttachItems(c.Request().Context(), id, req.Items)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
