package usecase

import (
	"context"
	"net/http"
	"strings"

	"bengkel/internal/domain/model"
	repo "bengkel/internal/repository"
)

type OrderItemUsecase struct {
	tx repo.TransactionManager
}

func NewOrderItemUsecase(tx repo.TransactionManager) *OrderItemUsecase {
	return &OrderItemUsecase{tx: tx}
}

type AttachItemInput struct {
	ItemID        int64  `json:"item_id"`
	ItemName      string `json:"item_name"`
	ItemType      string `json:"item_type"`
	Quantity      int64  `json:"quantity"`
	Price         int64  `json:"price"`
	PurchasePrice int64  `json:"purchase_price"`
	// Subtotal dari klien diabaikan, selalu dihitung ulang.
	Subtotal int64 `json:"subtotal"`
}

// AttachItems menempel item ke order, mengurangi stok product, dan
// menghitung ulang total. Seluruhnya satu transaksi: gagal di tengah
// berarti tidak ada tulisan yang tersisa.
func (u *OrderItemUsecase) AttachItems(ctx context.Context, orderID int64, items []AttachItemInput) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	// validasi urut, berhenti di pelanggaran pertama
	if len(items) == 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "items are required")
	}
	for _, it := range items {
		if it.ItemID <= 0 {
			return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "item reference is required")
		}
	}
	for _, it := range items {
		if it.Quantity <= 0 || it.Price <= 0 {
			return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "quantity and price must be positive")
		}
		t := model.ItemType(strings.TrimSpace(it.ItemType))
		if t != model.ItemTypeProduct && t != model.ItemTypeService {
			return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "item_type must be product or service")
		}
	}

	var out OrderDetailOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		var total int64
		for _, it := range items {
			total += it.Price * it.Quantity
		}

		// item diproses sesuai urutan kiriman
		for _, it := range items {
			rec := model.OrderItem{
				OrderID:       orderID,
				ItemID:        it.ItemID,
				ItemName:      strings.TrimSpace(it.ItemName),
				ItemType:      model.ItemType(strings.TrimSpace(it.ItemType)),
				Quantity:      it.Quantity,
				Price:         it.Price,
				PurchasePrice: it.PurchasePrice,
				Subtotal:      it.Price * it.Quantity,
			}
			if _, err := r.OrderItems().Create(ctx, rec); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if rec.ItemType == model.ItemTypeProduct {
				err := r.Products().DecrementStockClamped(ctx, it.ItemID, it.Quantity)
				if err == repo.ErrNotFound {
					return NewHTTPError(http.StatusBadRequest, "unknown product")
				}
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}
		}

		if err := r.Orders().UpdateTotalAmount(ctx, orderID, total); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		all, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderDetailOutput{Order: o, Items: all}
		return nil
	})
	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}
