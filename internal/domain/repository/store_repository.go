package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when no store matches the lookup.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the operations for store persistence.
//
// All write operations address the store by its owning user, never by an
// arbitrary store ID: a caller can only ever mutate their own store.
type StoreRepository interface {
	// Create persists a new store. The storage layer enforces both unique
	// constraints (slug, user_id); violations surface as typed domain errors.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a store by its unique ID, without products.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindByUserID retrieves the store owned by the given user, with its products.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Store, error)

	// FindPublishedBySlug retrieves a store by slug, with its products,
	// only when its status is BUILT.
	FindPublishedBySlug(ctx context.Context, slug string) (*entity.Store, error)

	// ExistsBySlug reports whether any store already uses the given slug.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// SetStatus updates the publication status of the user's store and
	// returns the updated record.
	SetStatus(ctx context.Context, userID uuid.UUID, status entity.StoreStatus) (*entity.Store, error)

	// SetMaintenanceMode toggles maintenance mode on the user's store and
	// returns the updated record.
	SetMaintenanceMode(ctx context.Context, userID uuid.UUID, enabled bool) (*entity.Store, error)

	// UpdateTemplate saves the appearance settings of the user's store and
	// returns the updated record.
	UpdateTemplate(ctx context.Context, userID uuid.UUID, settings entity.TemplateSettings) (*entity.Store, error)
}
