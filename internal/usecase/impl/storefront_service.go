package impl

import (
	"context"
	"log/slog"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storefrontService implements the public StorefrontUsecase interface.
type storefrontService struct {
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// StorefrontServiceParams holds dependencies for storefrontService, injected by Fx.
type StorefrontServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Logger    *slog.Logger
}

// NewStorefrontService is the constructor for storefrontService.
func NewStorefrontService(params StorefrontServiceParams) usecase.StorefrontUsecase {
	return &storefrontService{
		storeRepo: params.StoreRepo,
		logger:    params.Logger,
	}
}

func (srv *storefrontService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPublishedStore returns a published store with its products by slug.
// A draft store answers the same NotFound as an unknown slug.
func (srv *storefrontService) GetPublishedStore(ctx context.Context, slug string) (*entity.Store, error) {
	store, err := srv.storeRepo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			srv.log(ctx).Debug("Public store lookup missed", slog.String("slug", slug))

			return nil, errors.Wrap(domainerrors.ErrPublicStoreNotFound, "public store lookup")
		}

		return nil, errors.Wrap(err, "failed to find published store by slug")
	}

	return store, nil
}
