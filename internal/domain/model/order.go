package model

import "time"

// Status operasional order (label bahasa Indonesia, sesuai tampilan dashboard).
type OrderStatus string

const (
	OrderStatusMenungguPersetujuan OrderStatus = "Menunggu Persetujuan"
	OrderStatusDiproses            OrderStatus = "Diproses"
	OrderStatusSelesai             OrderStatus = "Selesai"
	OrderStatusDitolak             OrderStatus = "Ditolak"
)

// IsValid memastikan label status termasuk yang dikenal.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusMenungguPersetujuan, OrderStatusDiproses, OrderStatusSelesai, OrderStatusDitolak:
		return true
	default:
		return false
	}
}

// Status persetujuan reservasi, terpisah dari status operasional.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (a ApprovalStatus) IsValid() bool {
	switch a {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// Order servis. Reservasi pelanggan masuk sebagai order dengan
// is_reservation=true dan total 0 sampai item ditambahkan.
type Order struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName   string         `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone  string         `gorm:"type:varchar(30);not null" json:"customer_phone"`
	VehicleType    string         `gorm:"type:varchar(100);not null" json:"vehicle_type"`
	PlateNumber    string         `gorm:"type:varchar(20)" json:"plate_number"`
	Complaint      string         `gorm:"type:text;not null" json:"complaint"`
	Status         OrderStatus    `gorm:"type:varchar(30);not null;index" json:"status"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);not null;index" json:"approval_status"`
	IsReservation  bool           `gorm:"not null;default:false;index" json:"is_reservation"`
	TotalAmount    int64          `gorm:"not null;default:0" json:"total_amount"`
	CreatedAt      time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
