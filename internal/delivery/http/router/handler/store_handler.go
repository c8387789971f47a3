package handler

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/http/response"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// callerID extracts the authenticated user ID that the auth middleware
// stored on the context.
func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// StoreHandler holds dependencies for the store owner's handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStore returns the caller's store with its products.
func (h *StoreHandler) GetStore(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	store, err := h.uc.GetStore(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// CreateStore creates the caller's store.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.CreateStore(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created successfully")
}

// Publish flips the caller's store to its published state.
func (h *StoreHandler) Publish(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	store, err := h.uc.Publish(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store published successfully")
}

// SetMaintenance toggles maintenance mode on the caller's store.
func (h *StoreHandler) SetMaintenance(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.MaintenanceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maintenance input")
	}

	store, err := h.uc.SetMaintenance(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Maintenance mode updated successfully")
}

// UpdateTemplate saves the caller's store appearance settings.
func (h *StoreHandler) UpdateTemplate(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.TemplateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template input")
	}

	store, err := h.uc.UpdateTemplate(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Template updated successfully")
}
