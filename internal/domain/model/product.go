package model

import "time"

// Sparepart dengan stok. Stok tidak boleh negatif.
type Product struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Price         int64     `gorm:"not null" json:"price"`
	PurchasePrice int64     `gorm:"not null;default:0" json:"purchase_price"`
	Stock         int64     `gorm:"not null;default:0" json:"stock"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
