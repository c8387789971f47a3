package handler

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/http/response"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProduct adds a product to a store the caller owns.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// DeleteProduct removes a product from a store the caller owns.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrProductNotFound)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
