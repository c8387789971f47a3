package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. StoreID references stores.id (UUID).
type ProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     float64   `gorm:"not null"`
	ImageURL  string    `gorm:"type:text"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Store *StoreModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
