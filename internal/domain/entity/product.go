package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product belongs to a store. Its implicit owner is the owning store's user.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"imageUrl"`
	StoreID   uuid.UUID `json:"storeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
