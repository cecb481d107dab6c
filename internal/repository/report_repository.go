package repository

import (
	"context"
	"time"
)

// Agregat untuk laporan ringkas dashboard.
type ReportSummary struct {
	OrderCounts         map[string]int64 `json:"order_counts"`
	PendingReservations int64            `json:"pending_reservations"`
	Revenue             int64            `json:"revenue"`
	Profit              int64            `json:"profit"`
}

type ReportFilter struct {
	From *time.Time
	To   *time.Time
}

type ReportRepository interface {
	Summary(ctx context.Context, f ReportFilter) (ReportSummary, error)
}
