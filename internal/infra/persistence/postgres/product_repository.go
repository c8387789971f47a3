package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/errors"
	"tienda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new GORM-backed product repository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := fromProductDomain(product)
	if err := r.db.WithContext(ctx).Create(productModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to create product"), "insert into products failed")
	}

	product.ID = productModel.ID
	product.CreatedAt = productModel.CreatedAt
	product.UpdatedAt = productModel.UpdatedAt

	return nil
}

func (r *productRepository) FindByIDWithStore(ctx context.Context, id uuid.UUID) (*entity.Product, *entity.Store, error) {
	var productModel model.ProductModel
	if err := r.db.WithContext(ctx).
		Preload("Store").
		Where("id = ?", id).
		First(&productModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, repository.ErrProductNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find product by id")
	}
	if productModel.Store == nil {
		// A product row without its store means the association is broken.
		return nil, nil, repository.ErrStoreNotFound
	}

	return toProductDomain(&productModel), toStoreDomain(productModel.Store), nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		ImageURL:  m.ImageURL,
		StoreID:   m.StoreID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		StoreID:   p.StoreID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
