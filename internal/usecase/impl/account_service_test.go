package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAccountService(userRepo *fakeUserRepo, hasher *fakeHasher, tokens *fakeTokenService) usecase.AccountUsecase {
	if hasher == nil {
		hasher = &fakeHasher{
			hashFn:  func(password string) (string, error) { return "hashed:" + password, nil },
			checkFn: func(password, hash string) bool { return "hashed:"+password == hash },
		}
	}
	if tokens == nil {
		tokens = &fakeTokenService{
			generateFn: func(userID uuid.UUID) (string, error) { return "token-" + userID.String(), nil },
		}
	}

	return NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       discardLogger(),
	})
}

func TestAccountService_Register_Success(t *testing.T) {
	userRepo := &fakeUserRepo{
		createFn: func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()

			return nil
		},
	}
	service := createTestAccountService(userRepo, nil, nil)

	output, err := service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "ana@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", output.User.Email)
	assert.Equal(t, "hashed:secret", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAccountService_Register_MissingCredentials(t *testing.T) {
	service := createTestAccountService(&fakeUserRepo{}, nil, nil)

	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{"empty email", &usecase.RegisterInput{Password: "secret"}},
		{"empty password", &usecase.RegisterInput{Email: "ana@example.com"}},
		{"both empty", &usecase.RegisterInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := service.Register(context.Background(), tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
		})
	}
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	userRepo := &fakeUserRepo{
		createFn: func(_ context.Context, user *entity.User) error {
			return domainerrors.ErrEmailTaken
		},
	}
	service := createTestAccountService(userRepo, nil, nil)

	output, err := service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "ana@example.com",
		Password: "secret",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	hasher := &fakeHasher{
		hashFn: func(password string) (string, error) { return "", errors.New("boom") },
	}
	service := createTestAccountService(&fakeUserRepo{}, hasher, nil)

	output, err := service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "ana@example.com",
		Password: "secret",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	userID := uuid.New()
	userRepo := &fakeUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: userID, Email: email, PasswordHash: "hashed:secret"}, nil
		},
	}
	service := createTestAccountService(userRepo, nil, nil)

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-"+userID.String(), output.AccessToken)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	userRepo := &fakeUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	service := createTestAccountService(userRepo, nil, nil)

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "secret",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// An unknown email and a wrong password share one answer.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	userRepo := &fakeUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: uuid.New(), Email: email, PasswordHash: "hashed:secret"}, nil
		},
	}
	service := createTestAccountService(userRepo, nil, nil)

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
