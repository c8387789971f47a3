// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterOutput returns the newly created account's public fields.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the bearer token issued after a successful login.
type LoginOutput struct {
	AccessToken string `json:"accessToken"`
}

// AccountUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
