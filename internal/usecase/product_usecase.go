package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to add a product to a store.
type CreateProductInput struct {
	Name     string    `json:"name" validate:"required"`
	Price    float64   `json:"price" validate:"gte=0"`
	ImageURL string    `json:"imageUrl"`
	StoreID  uuid.UUID `json:"storeId" validate:"required"`
}

// ProductUsecase defines the product operations available to an authenticated user.
// Ownership of the target store is checked on every call.
type ProductUsecase interface {
	// CreateProduct inserts a product into the given store if the caller owns it.
	CreateProduct(ctx context.Context, callerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product if the caller owns the store it belongs to.
	DeleteProduct(ctx context.Context, callerID, productID uuid.UUID) error
}
