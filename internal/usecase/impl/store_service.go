package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTemplate = "classic"

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonSlugRunes   = regexp.MustCompile(`[^a-z0-9_-]+`)
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo repository.StoreRepository
	suffixer  service.SlugSuffixer
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Suffixer  service.SlugSuffixer
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo: params.StoreRepo,
		suffixer:  params.Suffixer,
		logger:    params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// generateBaseSlug normalizes a store name into its URL-safe base slug:
// lowercase, surrounding whitespace trimmed, internal whitespace runs
// collapsed to a single hyphen, and every rune outside [a-z0-9_-] removed.
// Non-ASCII word characters are stripped, not transliterated, so
// "My Café Shop!" becomes "my-caf-shop". Idempotent on normalized input.
func generateBaseSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = whitespaceRuns.ReplaceAllString(slug, "-")

	return nonSlugRunes.ReplaceAllString(slug, "")
}

// generateUniqueSlug finds a slug no existing store uses. On a collision it
// appends a fresh 5-character suffix to the base slug (never to the previous
// candidate, so candidates do not grow unboundedly) and re-checks.
//
// The loop has no iteration cap: with a 36^5 suffix space repeated collisions
// are astronomically unlikely, and the loop assumes the repository answers
// existence checks honestly. The unique index on stores.slug remains the real
// guarantee against a concurrent identical request.
func (srv *storeService) generateUniqueSlug(ctx context.Context, name string) (string, error) {
	base := generateBaseSlug(name)
	candidate := base

	for {
		exists, err := srv.storeRepo.ExistsBySlug(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug existence")
		}
		if !exists {
			return candidate, nil
		}

		candidate = base + "-" + srv.suffixer.Suffix()
	}
}

// GetStore returns the caller's store with its products.
func (srv *storeService) GetStore(ctx context.Context, userID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup for user")
		}

		return nil, errors.Wrap(err, "failed to find store by user")
	}

	return store, nil
}

// CreateStore creates the caller's store under a freshly generated unique slug.
func (srv *storeService) CreateStore(ctx context.Context, userID uuid.UUID, input *usecase.CreateStoreInput) (*entity.Store, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "store name is required")
	}

	srv.log(ctx).Info("Creating store", slog.Any("userID", userID), slog.String("name", input.Name))

	slug, err := srv.generateUniqueSlug(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store slug")
	}

	store := &entity.Store{
		Name:     input.Name,
		Slug:     slug,
		Status:   entity.StoreStatusDraft,
		Template: defaultTemplate,
		UserID:   userID,
	}

	// The existence check above and this insert are not atomic. A concurrent
	// identical request is resolved by the unique constraints on slug and
	// user_id, which the repository maps to a Conflict.
	if err := srv.storeRepo.Create(ctx, store); err != nil {
		srv.log(ctx).Warn("Failed to create store", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Debug("Store created", slog.Any("storeID", store.ID), slog.String("slug", store.Slug))

	return store, nil
}

// Publish sets the store's status to BUILT.
func (srv *storeService) Publish(ctx context.Context, userID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.SetStatus(ctx, userID, entity.StoreStatusBuilt)
	if err != nil {
		srv.log(ctx).Warn("Failed to publish store", slog.Any("userID", userID), slog.Any("error", err))

		return nil, srv.mapUpdateError(err, "failed to publish store")
	}

	srv.log(ctx).Info("Store published", slog.Any("storeID", store.ID), slog.String("slug", store.Slug))

	return store, nil
}

// SetMaintenance toggles the store's maintenance mode.
func (srv *storeService) SetMaintenance(ctx context.Context, userID uuid.UUID, input *usecase.MaintenanceInput) (*entity.Store, error) {
	store, err := srv.storeRepo.SetMaintenanceMode(ctx, userID, input.IsMaintenanceMode)
	if err != nil {
		srv.log(ctx).Warn("Failed to update maintenance mode", slog.Any("userID", userID), slog.Any("error", err))

		return nil, srv.mapUpdateError(err, "failed to update maintenance mode")
	}

	return store, nil
}

// UpdateTemplate saves the store's appearance settings.
func (srv *storeService) UpdateTemplate(ctx context.Context, userID uuid.UUID, input *usecase.TemplateInput) (*entity.Store, error) {
	settings := entity.TemplateSettings{
		Template:        input.Template,
		HeroTitle:       input.HeroTitle,
		HeroDescription: input.HeroDescription,
		PrimaryColor:    input.PrimaryColor,
	}

	store, err := srv.storeRepo.UpdateTemplate(ctx, userID, settings)
	if err != nil {
		srv.log(ctx).Warn("Failed to save template settings", slog.Any("userID", userID), slog.Any("error", err))

		return nil, srv.mapUpdateError(err, "failed to save template settings")
	}

	return store, nil
}

// mapUpdateError keeps store update failures opaque: the write paths answer
// 500 whether the store is missing or the storage call failed, as the public
// contract promises no finer distinction there.
func (srv *storeService) mapUpdateError(err error, msg string) error {
	if errors.Is(err, repository.ErrStoreNotFound) {
		return errors.Wrap(domainerrors.ErrStoreUpdateFailed, msg)
	}

	return errors.Wrap(err, msg)
}
