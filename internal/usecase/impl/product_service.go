package impl

import (
	"context"
	"log/slog"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	StoreRepo   repository.StoreRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		storeRepo:   params.StoreRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct inserts a product into the target store after verifying the
// caller owns it. A nonexistent store answers Forbidden, not NotFound, so the
// endpoint does not leak which store IDs exist.
func (srv *productService) CreateProduct(ctx context.Context, callerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	store, err := srv.storeRepo.FindByID(ctx, input.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "target store does not exist")
		}

		return nil, errors.Wrap(err, "failed to load target store")
	}

	if err := assertStoreOwner(store, callerID); err != nil {
		srv.log(ctx).Warn("Product creation denied",
			slog.Any("callerID", callerID), slog.Any("storeID", input.StoreID))

		return nil, err
	}

	product := &entity.Product{
		Name:     input.Name,
		Price:    input.Price,
		ImageURL: input.ImageURL,
		StoreID:  input.StoreID,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("storeID", input.StoreID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID), slog.Any("storeID", product.StoreID))

	return product, nil
}

// DeleteProduct removes a product after verifying the caller owns its store.
func (srv *productService) DeleteProduct(ctx context.Context, callerID, productID uuid.UUID) error {
	product, store, err := srv.productRepo.FindByIDWithStore(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product lookup")
		}

		return errors.Wrap(err, "failed to load product with store")
	}

	if err := assertStoreOwner(store, callerID); err != nil {
		srv.log(ctx).Warn("Product deletion denied",
			slog.Any("callerID", callerID), slog.Any("productID", productID))

		return err
	}

	if err := srv.productRepo.Delete(ctx, product.ID); err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Debug("Product deleted", slog.Any("productID", productID))

	return nil
}
