package impl

import (
	"context"
	"regexp"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStoreService(storeRepo *fakeStoreRepo, suffixer *fakeSuffixer) usecase.StoreUsecase {
	if suffixer == nil {
		suffixer = &fakeSuffixer{suffixes: []string{"abc12"}}
	}

	return NewStoreService(StoreServiceParams{
		StoreRepo: storeRepo,
		Suffixer:  suffixer,
		Logger:    discardLogger(),
	})
}

func TestGenerateBaseSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases and hyphenates", "My Store", "my-store"},
		{"strips non ascii letters", "My Café Shop!", "my-caf-shop"},
		{"trims surrounding whitespace", "  Tienda  ", "tienda"},
		{"collapses internal whitespace runs", "a \t b", "a-b"},
		{"keeps underscores and hyphens", "a_b-c", "a_b-c"},
		{"drops punctuation", "Shoes & Bags, S.A.", "shoes--bags-sa"},
		{"empty input", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, generateBaseSlug(tt.input))
		})
	}
}

func TestGenerateBaseSlug_Idempotent(t *testing.T) {
	once := generateBaseSlug("My Café Shop!")
	twice := generateBaseSlug(once)

	assert.Equal(t, once, twice)
}

func TestStoreService_CreateStore_FirstSlugFree(t *testing.T) {
	userID := uuid.New()
	var created *entity.Store
	storeRepo := &fakeStoreRepo{
		existsBySlugFn: func(_ context.Context, slug string) (bool, error) {
			return false, nil
		},
		createFn: func(_ context.Context, store *entity.Store) error {
			store.ID = uuid.New()
			created = store

			return nil
		},
	}
	service := createTestStoreService(storeRepo, nil)

	store, err := service.CreateStore(context.Background(), userID, &usecase.CreateStoreInput{Name: "My Store"})

	require.NoError(t, err)
	assert.Equal(t, "my-store", store.Slug)
	assert.Equal(t, entity.StoreStatusDraft, store.Status)
	assert.Equal(t, "classic", store.Template)
	assert.Equal(t, userID, store.UserID)
	assert.Same(t, created, store)
}

func TestStoreService_CreateStore_SlugCollisionAppendsSuffixToBase(t *testing.T) {
	taken := map[string]bool{
		"my-store":       true,
		"my-store-aaaaa": true,
	}
	var candidates []string
	storeRepo := &fakeStoreRepo{
		existsBySlugFn: func(_ context.Context, slug string) (bool, error) {
			candidates = append(candidates, slug)

			return taken[slug], nil
		},
		createFn: func(_ context.Context, store *entity.Store) error {
			return nil
		},
	}
	suffixer := &fakeSuffixer{suffixes: []string{"aaaaa", "bbbbb"}}
	service := createTestStoreService(storeRepo, suffixer)

	store, err := service.CreateStore(context.Background(), uuid.New(), &usecase.CreateStoreInput{Name: "My Store"})

	require.NoError(t, err)
	assert.Equal(t, "my-store-bbbbb", store.Slug)
	// Every retry starts from the base slug, so candidates never stack suffixes.
	assert.Equal(t, []string{"my-store", "my-store-aaaaa", "my-store-bbbbb"}, candidates)
	for _, candidate := range candidates[1:] {
		assert.Regexp(t, regexp.MustCompile(`^my-store-[a-z0-9]{5}$`), candidate)
	}
}

func TestStoreService_CreateStore_EmptyName(t *testing.T) {
	service := createTestStoreService(&fakeStoreRepo{}, nil)

	store, err := service.CreateStore(context.Background(), uuid.New(), &usecase.CreateStoreInput{Name: "   "})

	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_CreateStore_ConflictFromStorage(t *testing.T) {
	storeRepo := &fakeStoreRepo{
		existsBySlugFn: func(_ context.Context, slug string) (bool, error) {
			return false, nil
		},
		createFn: func(_ context.Context, store *entity.Store) error {
			// A concurrent identical request won the insert race.
			return domainerrors.ErrStoreAlreadyExists
		},
	}
	service := createTestStoreService(storeRepo, nil)

	store, err := service.CreateStore(context.Background(), uuid.New(), &usecase.CreateStoreInput{Name: "Tienda"})

	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrStoreAlreadyExists)
}

func TestStoreService_GetStore_NotFound(t *testing.T) {
	storeRepo := &fakeStoreRepo{
		findByUserIDFn: func(_ context.Context, userID uuid.UUID) (*entity.Store, error) {
			return nil, repository.ErrStoreNotFound
		},
	}
	service := createTestStoreService(storeRepo, nil)

	store, err := service.GetStore(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_Publish_Success(t *testing.T) {
	userID := uuid.New()
	storeRepo := &fakeStoreRepo{
		setStatusFn: func(_ context.Context, id uuid.UUID, status entity.StoreStatus) (*entity.Store, error) {
			assert.Equal(t, userID, id)
			assert.Equal(t, entity.StoreStatusBuilt, status)

			return &entity.Store{UserID: id, Status: status, Slug: "tienda"}, nil
		},
	}
	service := createTestStoreService(storeRepo, nil)

	store, err := service.Publish(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, entity.StoreStatusBuilt, store.Status)
}

func TestStoreService_Publish_MissingStoreAnswersUpdateFailed(t *testing.T) {
	storeRepo := &fakeStoreRepo{
		setStatusFn: func(_ context.Context, userID uuid.UUID, status entity.StoreStatus) (*entity.Store, error) {
			return nil, repository.ErrStoreNotFound
		},
	}
	service := createTestStoreService(storeRepo, nil)

	store, err := service.Publish(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUpdateFailed)
}

func TestStoreService_SetMaintenance(t *testing.T) {
	storeRepo := &fakeStoreRepo{
		setMaintenanceModeFn: func(_ context.Context, userID uuid.UUID, enabled bool) (*entity.Store, error) {
			return &entity.Store{UserID: userID, IsMaintenanceMode: enabled}, nil
		},
	}
	service := createTestStoreService(storeRepo, nil)

	store, err := service.SetMaintenance(context.Background(), uuid.New(), &usecase.MaintenanceInput{IsMaintenanceMode: true})

	require.NoError(t, err)
	assert.True(t, store.IsMaintenanceMode)
}

func TestStoreService_UpdateTemplate(t *testing.T) {
	input := &usecase.TemplateInput{
		Template:        "minimal",
		HeroTitle:       "Bienvenido",
		HeroDescription: "La mejor tienda",
		PrimaryColor:    "#ff0000",
	}
	storeRepo := &fakeStoreRepo{
		updateTemplateFn: func(_ context.Context, userID uuid.UUID, settings entity.TemplateSettings) (*entity.Store, error) {
			assert.Equal(t, "minimal", settings.Template)
			assert.Equal(t, "Bienvenido", settings.HeroTitle)

			return &entity.Store{
				UserID:          userID,
				Template:        settings.Template,
				HeroTitle:       settings.HeroTitle,
				HeroDescription: settings.HeroDescription,
				PrimaryColor:    settings.PrimaryColor,
			}, nil
		},
	}
	service := createTestStoreService(storeRepo, nil)

	store, err := service.UpdateTemplate(context.Background(), uuid.New(), input)

	require.NoError(t, err)
	assert.Equal(t, "minimal", store.Template)
	assert.Equal(t, "#ff0000", store.PrimaryColor)
}

func TestStoreService_UpdateTemplate_MissingStoreAnswersUpdateFailed(t *testing.T) {
	storeRepo := &fakeStoreRepo{
		updateTemplateFn: func(_ context.Context, userID uuid.UUID, settings entity.TemplateSettings) (*entity.Store, error) {
			return nil, repository.ErrStoreNotFound
		},
	}
	service := createTestStoreService(storeRepo, nil)

	store, err := service.UpdateTemplate(context.Background(), uuid.New(), &usecase.TemplateInput{Template: "classic"})

	require.Error(t, err)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUpdateFailed)
}
