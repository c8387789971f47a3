package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. Both unique indexes (slug, user_id)
// are the storage-level guarantees behind slug uniqueness and the
// one-store-per-user rule.
type StoreModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Slug              string    `gorm:"type:varchar(255);unique;not null"`
	Status            string    `gorm:"type:varchar(16);not null;default:'DRAFT'"`
	IsMaintenanceMode bool      `gorm:"not null;default:false"`
	Template          string    `gorm:"type:varchar(64);not null;default:'classic'"`
	HeroTitle         string    `gorm:"type:varchar(255)"`
	HeroDescription   string    `gorm:"type:text"`
	PrimaryColor      string    `gorm:"type:varchar(32)"`
	UserID            uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Products []*ProductModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
