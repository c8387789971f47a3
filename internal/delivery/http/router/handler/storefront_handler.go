package handler

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/http/response"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StorefrontHandler serves the public, unauthenticated storefront lookup.
type StorefrontHandler struct {
	uc     usecase.StorefrontUsecase
	logger *slog.Logger
}

// NewStorefrontHandler is the constructor for StorefrontHandler, injected by Fx.
func NewStorefrontHandler(uc usecase.StorefrontUsecase, logger *slog.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetBySlug returns a published store with its products.
func (h *StorefrontHandler) GetBySlug(c echo.Context) error {
	store, err := h.uc.GetPublishedStore(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}
