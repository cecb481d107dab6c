package repository

import (
	"context"

	"bengkel/internal/domain/model"
	repo "bengkel/internal/repository"

	"gorm.io/gorm"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) Summary(ctx context.Context, f repo.ReportFilter) (repo.ReportSummary, error) {
	out := repo.ReportSummary{OrderCounts: map[string]int64{}}

	ordersQ := r.db.WithContext(ctx).Model(&model.Order{})
	if f.From != nil {
		ordersQ = ordersQ.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		ordersQ = ordersQ.Where("created_at <= ?", *f.To)
	}

	// jumlah order per status
	type statusCount struct {
		Status string
		N      int64
	}
	var counts []statusCount
	if err := ordersQ.Session(&gorm.Session{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&counts).Error; err != nil {
		return repo.ReportSummary{}, err
	}
	for _, c := range counts {
		out.OrderCounts[c.Status] = c.N
	}

	if err := ordersQ.Session(&gorm.Session{}).
		Where("is_reservation = ? AND approval_status = ?", true, model.ApprovalPending).
		Count(&out.PendingReservations).Error; err != nil {
		return repo.ReportSummary{}, err
	}

	// omzet = jumlah subtotal item; laba = omzet dikurangi harga beli item product
	itemsQ := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id")
	if f.From != nil {
		itemsQ = itemsQ.Where("orders.created_at >= ?", *f.From)
	}
	if f.To != nil {
		itemsQ = itemsQ.Where("orders.created_at <= ?", *f.To)
	}

	type moneyRow struct {
		Revenue int64
		Cost    int64
	}
	var m moneyRow
	err := itemsQ.
		Select(`COALESCE(SUM(order_items.subtotal), 0) as revenue,
			COALESCE(SUM(CASE WHEN order_items.item_type = ? THEN order_items.purchase_price * order_items.quantity ELSE 0 END), 0) as cost`,
			model.ItemTypeProduct).
		Scan(&m).Error
	if err != nil {
		return repo.ReportSummary{}, err
	}

	out.Revenue = m.Revenue
	out.Profit = m.Revenue - m.Cost
	return out, nil
}
