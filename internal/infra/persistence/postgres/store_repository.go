package postgres

import (
	"context"
	"strings"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/errors"
	"tienda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new GORM-backed store repository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeModel := fromStoreDomain(store)
	if err := r.db.WithContext(ctx).Create(storeModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Two unique indexes can fire here. user_id means the caller
			// already owns a store; slug means another creation won the
			// race for the same candidate slug.
			if strings.Contains(strings.ToLower(err.Error()), "slug") {
				return domainerrors.ErrSlugTaken
			}

			return domainerrors.ErrStoreAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to create store"), "insert into stores failed")
	}

	store.ID = storeModel.ID
	store.CreatedAt = storeModel.CreatedAt
	store.UpdatedAt = storeModel.UpdatedAt

	return nil
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeModel model.StoreModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeModel), nil
}

func (r *storeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Store, error) {
	var storeModel model.StoreModel
	if err := r.db.WithContext(ctx).
		Preload("Products").
		Where("user_id = ?", userID).
		First(&storeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by user id")
	}

	return toStoreDomain(&storeModel), nil
}

func (r *storeRepository) FindPublishedBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	var storeModel model.StoreModel
	if err := r.db.WithContext(ctx).
		Preload("Products").
		Where("slug = ? AND status = ?", slug, string(entity.StoreStatusBuilt)).
		First(&storeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find published store by slug")
	}

	return toStoreDomain(&storeModel), nil
}

func (r *storeRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count stores by slug")
	}

	return count > 0, nil
}

func (r *storeRepository) SetStatus(ctx context.Context, userID uuid.UUID, status entity.StoreStatus) (*entity.Store, error) {
	return r.updateByUserID(ctx, userID, map[string]any{"status": string(status)})
}

func (r *storeRepository) SetMaintenanceMode(ctx context.Context, userID uuid.UUID, enabled bool) (*entity.Store, error) {
	return r.updateByUserID(ctx, userID, map[string]any{"is_maintenance_mode": enabled})
}

func (r *storeRepository) UpdateTemplate(ctx context.Context, userID uuid.UUID, settings entity.TemplateSettings) (*entity.Store, error) {
	return r.updateByUserID(ctx, userID, map[string]any{
		"template":         settings.Template,
		"hero_title":       settings.HeroTitle,
		"hero_description": settings.HeroDescription,
		"primary_color":    settings.PrimaryColor,
	})
}

// updateByUserID applies the column updates to the caller's store and
// re-reads the row so callers always get the fresh record back.
func (r *storeRepository) updateByUserID(ctx context.Context, userID uuid.UUID, updates map[string]any) (*entity.Store, error) {
	result := r.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrStoreNotFound
	}

	var storeModel model.StoreModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&storeModel).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload store after update")
	}

	return toStoreDomain(&storeModel), nil
}

func toStoreDomain(m *model.StoreModel) *entity.Store {
	store := &entity.Store{
		ID:                m.ID,
		Name:              m.Name,
		Slug:              m.Slug,
		Status:            entity.StoreStatus(m.Status),
		IsMaintenanceMode: m.IsMaintenanceMode,
		Template:          m.Template,
		HeroTitle:         m.HeroTitle,
		HeroDescription:   m.HeroDescription,
		PrimaryColor:      m.PrimaryColor,
		UserID:            m.UserID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.Products != nil {
		store.Products = make([]*entity.Product, 0, len(m.Products))
		for _, productModel := range m.Products {
			store.Products = append(store.Products, toProductDomain(productModel))
		}
	}

	return store
}

func fromStoreDomain(s *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		ID:                s.ID,
		Name:              s.Name,
		Slug:              s.Slug,
		Status:            string(s.Status),
		IsMaintenanceMode: s.IsMaintenanceMode,
		Template:          s.Template,
		HeroTitle:         s.HeroTitle,
		HeroDescription:   s.HeroDescription,
		PrimaryColor:      s.PrimaryColor,
		UserID:            s.UserID,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
