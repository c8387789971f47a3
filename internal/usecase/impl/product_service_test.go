package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProductService(productRepo *fakeProductRepo, storeRepo *fakeStoreRepo) usecase.ProductUsecase {
	return NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		StoreRepo:   storeRepo,
		Logger:      discardLogger(),
	})
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	ownerID := uuid.New()
	storeID := uuid.New()
	storeRepo := &fakeStoreRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.Store, error) {
			return &entity.Store{ID: id, UserID: ownerID}, nil
		},
	}
	productRepo := &fakeProductRepo{
		createFn: func(_ context.Context, product *entity.Product) error {
			product.ID = uuid.New()

			return nil
		},
	}
	service := createTestProductService(productRepo, storeRepo)

	product, err := service.CreateProduct(context.Background(), ownerID, &usecase.CreateProductInput{
		Name:    "Zapatos",
		Price:   49.99,
		StoreID: storeID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Zapatos", product.Name)
	assert.Equal(t, storeID, product.StoreID)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestProductService_CreateProduct_StoreMissingAnswersForbidden(t *testing.T) {
	storeRepo := &fakeStoreRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.Store, error) {
			return nil, repository.ErrStoreNotFound
		},
	}
	service := createTestProductService(&fakeProductRepo{}, storeRepo)

	product, err := service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:    "Zapatos",
		StoreID: uuid.New(),
	})

	require.Error(t, err)
	assert.Nil(t, product)
	// A nonexistent store and someone else's store share one answer.
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_CreateProduct_NotOwner(t *testing.T) {
	storeRepo := &fakeStoreRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.Store, error) {
			return &entity.Store{ID: id, UserID: uuid.New()}, nil
		},
	}
	service := createTestProductService(&fakeProductRepo{}, storeRepo)

	product, err := service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:    "Zapatos",
		StoreID: uuid.New(),
	})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	ownerID := uuid.New()
	productID := uuid.New()
	deleted := false
	productRepo := &fakeProductRepo{
		findByIDWithStore: func(_ context.Context, id uuid.UUID) (*entity.Product, *entity.Store, error) {
			return &entity.Product{ID: id}, &entity.Store{UserID: ownerID}, nil
		},
		deleteFn: func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, productID, id)
			deleted = true

			return nil
		},
	}
	service := createTestProductService(productRepo, &fakeStoreRepo{})

	err := service.DeleteProduct(context.Background(), ownerID, productID)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	productRepo := &fakeProductRepo{
		findByIDWithStore: func(_ context.Context, id uuid.UUID) (*entity.Product, *entity.Store, error) {
			return nil, nil, repository.ErrProductNotFound
		},
	}
	service := createTestProductService(productRepo, &fakeStoreRepo{})

	err := service.DeleteProduct(context.Background(), uuid.New(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_NotOwner(t *testing.T) {
	productRepo := &fakeProductRepo{
		findByIDWithStore: func(_ context.Context, id uuid.UUID) (*entity.Product, *entity.Store, error) {
			return &entity.Product{ID: id}, &entity.Store{UserID: uuid.New()}, nil
		},
	}
	service := createTestProductService(productRepo, &fakeStoreRepo{})

	err := service.DeleteProduct(context.Background(), uuid.New(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
