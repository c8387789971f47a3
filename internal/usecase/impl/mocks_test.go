package impl

import (
	"context"
	"io"
	"log/slog"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"

	"github.com/google/uuid"
)

// Hand-rolled fakes for the repository and service interfaces. Each method
// delegates to an optional function field so tests only wire what they use.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	createFn      func(ctx context.Context, user *entity.User) error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.findByEmailFn(ctx, email)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.createFn(ctx, user)
}

type fakeStoreRepo struct {
	createFn              func(ctx context.Context, store *entity.Store) error
	findByIDFn            func(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	findByUserIDFn        func(ctx context.Context, userID uuid.UUID) (*entity.Store, error)
	findPublishedBySlugFn func(ctx context.Context, slug string) (*entity.Store, error)
	existsBySlugFn        func(ctx context.Context, slug string) (bool, error)
	setStatusFn           func(ctx context.Context, userID uuid.UUID, status entity.StoreStatus) (*entity.Store, error)
	setMaintenanceModeFn  func(ctx context.Context, userID uuid.UUID, enabled bool) (*entity.Store, error)
	updateTemplateFn      func(ctx context.Context, userID uuid.UUID, settings entity.TemplateSettings) (*entity.Store, error)
}

func (f *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	return f.createFn(ctx, store)
}

func (f *fakeStoreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeStoreRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Store, error) {
	return f.findByUserIDFn(ctx, userID)
}

func (f *fakeStoreRepo) FindPublishedBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return f.findPublishedBySlugFn(ctx, slug)
}

func (f *fakeStoreRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return f.existsBySlugFn(ctx, slug)
}

func (f *fakeStoreRepo) SetStatus(ctx context.Context, userID uuid.UUID, status entity.StoreStatus) (*entity.Store, error) {
	return f.setStatusFn(ctx, userID, status)
}

func (f *fakeStoreRepo) SetMaintenanceMode(ctx context.Context, userID uuid.UUID, enabled bool) (*entity.Store, error) {
	return f.setMaintenanceModeFn(ctx, userID, enabled)
}

func (f *fakeStoreRepo) UpdateTemplate(ctx context.Context, userID uuid.UUID, settings entity.TemplateSettings) (*entity.Store, error) {
	return f.updateTemplateFn(ctx, userID, settings)
}

type fakeProductRepo struct {
	createFn          func(ctx context.Context, product *entity.Product) error
	findByIDWithStore func(ctx context.Context, id uuid.UUID) (*entity.Product, *entity.Store, error)
	deleteFn          func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return f.createFn(ctx, product)
}

func (f *fakeProductRepo) FindByIDWithStore(ctx context.Context, id uuid.UUID) (*entity.Product, *entity.Store, error) {
	return f.findByIDWithStore(ctx, id)
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

// fakeSuffixer hands out suffixes from a fixed sequence.
type fakeSuffixer struct {
	suffixes []string
	calls    int
}

func (f *fakeSuffixer) Suffix() string {
	s := f.suffixes[f.calls%len(f.suffixes)]
	f.calls++

	return s
}

type fakeHasher struct {
	hashFn  func(password string) (string, error)
	checkFn func(password, hash string) bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	return f.hashFn(password)
}

func (f *fakeHasher) Check(password, hash string) bool {
	return f.checkFn(password, hash)
}

type fakeTokenService struct {
	generateFn func(userID uuid.UUID) (string, error)
}

func (f *fakeTokenService) Generate(userID uuid.UUID) (string, error) {
	return f.generateFn(userID)
}

func (f *fakeTokenService) Validate(tokenString string) (*service.Claims, error) {
	return nil, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.StoreRepository = (*fakeStoreRepo)(nil)
var _ repository.ProductRepository = (*fakeProductRepo)(nil)
