package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/contact-service/internal/user"
	"github.com/vasiliy-maslov/contact-service/internal/validation"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, username, passwordHash string) (*user.User, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByToken(ctx context.Context, token string) (*user.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ListByUsername(ctx context.Context, username string) ([]user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserRepository) UpdateToken(ctx context.Context, id int64, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func TestUserService_Register_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := user.NewService(mockRepo)

	rawPassword := "Secret1!"

	mockRepo.On("Create", mock.Anything, "alice", mock.MatchedBy(func(hash string) bool {
		return user.CheckPassword(hash, rawPassword)
	})).Return(&user.User{ID: 1, Username: "alice", PasswordHash: "stored"}, nil).Once()

	created, err := userService.Register(context.Background(), "alice", rawPassword)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "alice", created.Username)
	require.Nil(t, created.Token)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	weakPasswords := []string{"weak", "secret1!", "SECRET1!", "Secrets!", "Secret12", "Se1!"}

	for _, password := range weakPasswords {
		t.Run(password, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			userService := user.NewService(mockRepo)

			created, err := userService.Register(context.Background(), "bob", password)

			require.Error(t, err)
			var fieldErr *validation.Error
			require.ErrorAs(t, err, &fieldErr)
			require.Equal(t, "password", fieldErr.Field)
			require.Nil(t, created)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_Register_LongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := user.NewService(mockRepo)

	long := "Secret1!" + strings.Repeat("a", 80)
	var storedHash string

	mockRepo.On("Create", mock.Anything, "carol", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(&user.User{ID: 3, Username: "carol"}, nil).
		Once()

	created, err := userService.Register(context.Background(), "carol", long)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.True(t, user.CheckPassword(storedHash, long))
	require.False(t, user.CheckPassword(storedHash, long[:72]))
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := user.NewService(mockRepo)

	repoErr := errors.New("connection refused")
	mockRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string")).
		Return(nil, repoErr).
		Once()

	created, err := userService.Register(context.Background(), "alice", "Secret1!")

	require.Error(t, err)
	require.ErrorIs(t, err, repoErr)
	require.Nil(t, created)
	mockRepo.AssertExpectations(t)
}
