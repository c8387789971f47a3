package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreStatus is the publication state of a store.
type StoreStatus string

const (
	// StoreStatusDraft is the initial state; the store is invisible on the public path.
	StoreStatusDraft StoreStatus = "DRAFT"

	// StoreStatusBuilt marks the store as published and publicly browsable by slug.
	StoreStatusBuilt StoreStatus = "BUILT"
)

// Store is a user's storefront. The slug is globally unique and the
// user ID is unique as well, enforcing the one-store-per-user rule.
type Store struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Slug              string      `json:"slug"`
	Status            StoreStatus `json:"status"`
	IsMaintenanceMode bool        `json:"isMaintenanceMode"`
	Template          string      `json:"template"`
	HeroTitle         string      `json:"heroTitle"`
	HeroDescription   string      `json:"heroDescription"`
	PrimaryColor      string      `json:"primaryColor"`
	UserID            uuid.UUID   `json:"userId"`
	Products          []*Product  `json:"products,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// TemplateSettings groups the appearance fields updated together
// by the template configuration operation.
type TemplateSettings struct {
	Template        string
	HeroTitle       string
	HeroDescription string
	PrimaryColor    string
}
