package usecase

import (
	"context"
	"net/http"
	"strings"

	"bengkel/internal/domain/model"
	repo "bengkel/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type CreateReservationInput struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	VehicleType   string `json:"vehicle_type"`
	PlateNumber   string `json:"plate_number"`
	Complaint     string `json:"complaint"`
}

type UpdateOrderInput struct {
	Status         *string `json:"status"`
	ApprovalStatus *string `json:"approval_status"`
}

type OrderDetailOutput struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

// CreateReservation: form publik. Order masuk antrean persetujuan
// dengan total 0 dan tanpa item.
func (u *OrderUsecase) CreateReservation(ctx context.Context, in CreateReservationInput) (model.Order, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.VehicleType = strings.TrimSpace(in.VehicleType)
	in.Complaint = strings.TrimSpace(in.Complaint)

	if in.CustomerName == "" || in.CustomerPhone == "" || in.VehicleType == "" || in.Complaint == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "customer_name, customer_phone, vehicle_type and complaint are required")
	}

	order := model.Order{
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		VehicleType:    in.VehicleType,
		PlateNumber:    strings.TrimSpace(in.PlateNumber),
		Complaint:      in.Complaint,
		Status:         model.OrderStatusMenungguPersetujuan,
		ApprovalStatus: model.ApprovalPending,
		IsReservation:  true,
		TotalAmount:    0,
	}

	var created model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		created, err = r.Orders().FindByID(ctx, id)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return created, nil
}

// CreateDirectOrder: order walk-in yang dibuat staf, langsung Diproses.
func (u *OrderUsecase) CreateDirectOrder(ctx context.Context, in CreateReservationInput) (model.Order, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.VehicleType = strings.TrimSpace(in.VehicleType)
	in.Complaint = strings.TrimSpace(in.Complaint)

	if in.CustomerName == "" || in.CustomerPhone == "" || in.VehicleType == "" || in.Complaint == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "customer_name, customer_phone, vehicle_type and complaint are required")
	}

	order := model.Order{
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		VehicleType:    in.VehicleType,
		PlateNumber:    strings.TrimSpace(in.PlateNumber),
		Complaint:      in.Complaint,
		Status:         model.OrderStatusDiproses,
		ApprovalStatus: model.ApprovalApproved,
		IsReservation:  false,
		TotalAmount:    0,
	}

	var created model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		created, err = r.Orders().FindByID(ctx, id)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return created, nil
}

func (u *OrderUsecase) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	if f.Page < 0 {
		return []model.Order{}, 0, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 0 || f.Limit > 100 {
		return []model.Order{}, 0, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if f.Status != "" && !model.OrderStatus(f.Status).IsValid() {
		return []model.Order{}, 0, NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	if f.ApprovalStatus != "" && !model.ApprovalStatus(f.ApprovalStatus).IsValid() {
		return []model.Order{}, 0, NewHTTPError(http.StatusBadRequest, "invalid approval_status")
	}

	var (
		orders []model.Order
		total  int64
	)
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		orders, total, err = r.Orders().List(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return []model.Order{}, 0, err
	}
	return orders, total, nil
}

func (u *OrderUsecase) GetDetail(ctx context.Context, orderID int64) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderDetailOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderDetailOutput{Order: o, Items: items}
		return nil
	})
	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}

// Update menangani PATCH status dan/atau approval_status.
// approved memaksa status Diproses dan mensyaratkan minimal satu item;
// rejected memaksa status Ditolak dan tidak pernah menyentuh stok.
func (u *OrderUsecase) Update(ctx context.Context, orderID int64, in UpdateOrderInput) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Status == nil && in.ApprovalStatus == nil {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	var upd repo.OrderUpdate

	if in.Status != nil {
		st := model.OrderStatus(strings.TrimSpace(*in.Status))
		if !st.IsValid() {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		upd.Status = &st
	}

	if in.ApprovalStatus != nil {
		ap := model.ApprovalStatus(strings.TrimSpace(*in.ApprovalStatus))
		if !ap.IsValid() {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid approval_status")
		}
		upd.ApprovalStatus = &ap

		// approval menimpa status manual
		switch ap {
		case model.ApprovalApproved:
			st := model.OrderStatusDiproses
			upd.Status = &st
		case model.ApprovalRejected:
			st := model.OrderStatusDitolak
			upd.Status = &st
		}
	}

	var updated model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if upd.ApprovalStatus != nil && *upd.ApprovalStatus == model.ApprovalApproved {
			n, err := r.OrderItems().CountByOrderID(ctx, orderID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if n == 0 {
				return NewHTTPError(http.StatusBadRequest, "cannot approve an empty order")
			}
		}

		if err := r.Orders().Update(ctx, orderID, upd); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		updated, err = r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return updated, nil
}
