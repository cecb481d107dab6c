package model

import "time"

// Jenis item yang ditempel ke order.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

// OrderItem menyimpan snapshot nama/harga saat item ditambahkan.
// Subtotal selalu dihitung ulang quantity*price, tidak pernah dipercaya dari klien.
type OrderItem struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64     `gorm:"not null;index" json:"order_id"`
	ItemID        int64     `gorm:"not null;index" json:"item_id"`
	ItemName      string    `gorm:"type:varchar(255);not null" json:"item_name"`
	ItemType      ItemType  `gorm:"type:varchar(20);not null" json:"item_type"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	Price         int64     `gorm:"not null" json:"price"`
	PurchasePrice int64     `gorm:"not null;default:0" json:"purchase_price"`
	Subtotal      int64     `gorm:"not null" json:"subtotal"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
