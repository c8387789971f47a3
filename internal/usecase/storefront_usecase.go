package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// StorefrontUsecase serves the public, unauthenticated store lookup.
type StorefrontUsecase interface {
	// GetPublishedStore returns a store with its products by slug,
	// only when the store has been published. Draft stores are never
	// visible through this path regardless of slug correctness.
	GetPublishedStore(ctx context.Context, slug string) (*entity.Store, error)
}
