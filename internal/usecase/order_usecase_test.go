package usecase_test

import (
	"context"
	"strings"
	"testing"

	"bengkel/internal/domain/model"
	repo "bengkel/internal/repository"
	"bengkel/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func strPtr(s string) *string { return &s }

func newOrderFixture(tx *TxManagerMock) (*OrderRepoMock, *OrderItemRepoMock, *ProductRepoMock) {
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	products := new(ProductRepoMock)
	tx.Repos = &TxReposMock{orders: orders, orderItems: items, products: products}
	return orders, items, products
}

func TestCreateReservation_MissingFields(t *testing.T) {
	tx := new(TxManagerMock)
	newOrderFixture(tx)
	uc := usecase.NewOrderUsecase(tx)

	_, err := uc.CreateReservation(context.Background(), usecase.CreateReservationInput{
		CustomerName: "Budi",
		// tanpa telepon/kendaraan/keluhan
	})
	assertErrContains(t, err, "required")
}

func TestCreateReservation_Defaults(t *testing.T) {
	ctx := context.Background()
	tx := new(TxManagerMock)
	orders, _, _ := newOrderFixture(tx)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Status == model.OrderStatusMenungguPersetujuan &&
			o.ApprovalStatus == model.ApprovalPending &&
			o.IsReservation &&
			o.TotalAmount == 0
	})).Return(int64(7), nil)
	orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID:             7,
		CustomerName:   "Budi",
		Status:         model.OrderStatusMenungguPersetujuan,
		ApprovalStatus: model.ApprovalPending,
		IsReservation:  true,
	}, nil)

	uc := usecase.NewOrderUsecase(tx)
	out, err := uc.CreateReservation(ctx, usecase.CreateReservationInput{
		CustomerName:  "Budi",
		CustomerPhone: "081234567890",
		VehicleType:   "Honda Beat",
		Complaint:     "oli bocor",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, model.ApprovalPending, out.ApprovalStatus)
	orders.AssertExpectations(t)
}

func TestUpdateOrder_NothingToUpdate(t *testing.T) {
	tx := new(TxManagerMock)
	newOrderFixture(tx)
	uc := usecase.NewOrderUsecase(tx)

	_, err := uc.Update(context.Background(), 1, usecase.UpdateOrderInput{})
	assertErrContains(t, err, "nothing to update")
}

func TestUpdateOrder_InvalidStatusLabel(t *testing.T) {
	tx := new(TxManagerMock)
	newOrderFixture(tx)
	uc := usecase.NewOrderUsecase(tx)

	_, err := uc.Update(context.Background(), 1, usecase.UpdateOrderInput{Status: strPtr("Dikirim")})
	assertErrContains(t, err, "invalid status")
}

func TestUpdateOrder_ApproveEmptyOrderRejected(t *testing.T) {
	ctx := context.Background()
	tx := new(TxManagerMock)
	orders, items, _ := newOrderFixture(tx)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByID", mock.Anything, int64(5)).Return(model.Order{ID: 5, IsReservation: true}, nil)
	items.On("CountByOrderID", mock.Anything, int64(5)).Return(int64(0), nil)

	uc := usecase.NewOrderUsecase(tx)
	_, err := uc.Update(ctx, 5, usecase.UpdateOrderInput{ApprovalStatus: strPtr("approved")})

	assertErrContains(t, err, "cannot approve an empty order")
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrder_ApproveForcesDiproses(t *testing.T) {
	ctx := context.Background()
	tx := new(TxManagerMock)
	orders, items, _ := newOrderFixture(tx)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByID", mock.Anything, int64(5)).Return(model.Order{ID: 5, IsReservation: true}, nil).Once()
	items.On("CountByOrderID", mock.Anything, int64(5)).Return(int64(2), nil)
	orders.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(u repo.OrderUpdate) bool {
		return u.ApprovalStatus != nil && *u.ApprovalStatus == model.ApprovalApproved &&
			u.Status != nil && *u.Status == model.OrderStatusDiproses
	})).Return(nil)
	orders.On("FindByID", mock.Anything, int64(5)).Return(model.Order{
		ID:             5,
		Status:         model.OrderStatusDiproses,
		ApprovalStatus: model.ApprovalApproved,
	}, nil).Once()

	uc := usecase.NewOrderUsecase(tx)
	out, err := uc.Update(ctx, 5, usecase.UpdateOrderInput{ApprovalStatus: strPtr("approved")})

	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusDiproses, out.Status)
	assert.Equal(t, model.ApprovalApproved, out.ApprovalStatus)
	orders.AssertExpectations(t)
}

func TestUpdateOrder_RejectForcesDitolakWithoutItems(t *testing.T) {
	ctx := context.Background()
	tx := new(TxManagerMock)
	orders, items, products := newOrderFixture(tx)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{ID: 9, IsReservation: true}, nil).Once()
	orders.On("Update", mock.Anything, int64(9), mock.MatchedBy(func(u repo.OrderUpdate) bool {
		return u.ApprovalStatus != nil && *u.ApprovalStatus == model.ApprovalRejected &&
			u.Status != nil && *u.Status == model.OrderStatusDitolak
	})).Return(nil)
	orders.On("FindByID", mock.Anything, int64(9)).Return(model.Order{
		ID:             9,
		Status:         model.OrderStatusDitolak,
		ApprovalStatus: model.ApprovalRejected,
	}, nil).Once()

	uc := usecase.NewOrderUsecase(tx)
	out, err := uc.Update(ctx, 9, usecase.UpdateOrderInput{ApprovalStatus: strPtr("rejected")})

	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusDitolak, out.Status)
	// penolakan tidak butuh item dan tidak menyentuh stok
	items.AssertNotCalled(t, "CountByOrderID", mock.Anything, mock.Anything)
	products.AssertNotCalled(t, "DecrementStockClamped", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrder_ManualStatusToSelesai(t *testing.T) {
	ctx := context.Background()
	tx := new(TxManagerMock)
	orders, _, _ := newOrderFixture(tx)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByID", mock.Anything, int64(3)).Return(model.Order{ID: 3, Status: model.OrderStatusDiproses}, nil).Once()
	orders.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(u repo.OrderUpdate) bool {
		return u.Status != nil && *u.Status == model.OrderStatusSelesai && u.ApprovalStatus == nil
	})).Return(nil)
	orders.On("FindByID", mock.Anything, int64(3)).Return(model.Order{ID: 3, Status: model.OrderStatusSelesai}, nil).Once()

	uc := usecase.NewOrderUsecase(tx)
	out, err := uc.Update(ctx, 3, usecase.UpdateOrderInput{Status: strPtr("Selesai")})

	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusSelesai, out.Status)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	ctx := context.Background()
	tx := new(TxManagerMock)
	orders, _, _ := newOrderFixture(tx)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("FindByID", mock.Anything, int64(404)).Return(model.Order{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx)
	_, err := uc.Update(ctx, 404, usecase.UpdateOrderInput{Status: strPtr("Selesai")})
	assertErrContains(t, err, "not found")
}

func TestListOrders_InvalidFilter(t *testing.T) {
	tx := new(TxManagerMock)
	newOrderFixture(tx)
	uc := usecase.NewOrderUsecase(tx)

	_, _, err := uc.List(context.Background(), repo.OrderListFilter{Status: "Dikirim"})
	assertErrContains(t, err, "invalid status")
}
