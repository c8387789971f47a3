package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// Create persists a new product under its store.
	Create(ctx context.Context, product *entity.Product) error

	// FindByIDWithStore retrieves a product together with its owning store,
	// so callers can run the ownership check before mutating.
	FindByIDWithStore(ctx context.Context, id uuid.UUID) (*entity.Product, *entity.Store, error)

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
