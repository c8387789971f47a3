package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStoreInput defines the data required to create a store.
// The slug is derived from the name, never supplied by the client.
type CreateStoreInput struct {
	Name string `json:"name" validate:"required"`
}

// MaintenanceInput toggles the store's maintenance mode.
type MaintenanceInput struct {
	IsMaintenanceMode bool `json:"isMaintenanceMode"`
}

// TemplateInput carries the appearance settings saved together.
type TemplateInput struct {
	Template        string `json:"template"`
	HeroTitle       string `json:"heroTitle"`
	HeroDescription string `json:"heroDescription"`
	PrimaryColor    string `json:"primaryColor"`
}

// StoreUsecase defines the store operations available to the authenticated owner.
type StoreUsecase interface {
	// GetStore returns the caller's store with its products.
	GetStore(ctx context.Context, userID uuid.UUID) (*entity.Store, error)

	// CreateStore creates the caller's store, generating a globally unique slug.
	CreateStore(ctx context.Context, userID uuid.UUID, input *CreateStoreInput) (*entity.Store, error)

	// Publish sets the store's status to BUILT, making it publicly visible.
	Publish(ctx context.Context, userID uuid.UUID) (*entity.Store, error)

	// SetMaintenance toggles the store's maintenance mode.
	SetMaintenance(ctx context.Context, userID uuid.UUID, input *MaintenanceInput) (*entity.Store, error)

	// UpdateTemplate saves the store's appearance settings.
	UpdateTemplate(ctx context.Context, userID uuid.UUID, input *TemplateInput) (*entity.Store, error)
}
