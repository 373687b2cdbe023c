package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staybook/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil && u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token-for-test", nil
}

func TestRegisterTraveler(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, fakeJWT{})
	ctx := context.Background()

	users.On("GetByEmail", ctx, "ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	res, err := svc.RegisterTraveler(ctx, RegisterRequest{
		Email:    "  Ana@Example.com ",
		Password: "correct horse",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for-test", res.Token)
	assert.Equal(t, "ana@example.com", res.User.Email, "email is normalized")
	assert.Equal(t, domain.RoleTraveler, res.User.Role)
	assert.NotEqual(t, "correct horse", res.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("correct horse")))
}

func TestRegisterManagerRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, fakeJWT{})
	ctx := context.Background()

	users.On("GetByEmail", ctx, "mgr@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", ctx, mock.Anything).Return(nil)

	res, err := svc.RegisterManager(ctx, RegisterRequest{
		Email:    "mgr@example.com",
		Password: "swordfish1",
		Name:     "Mara",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, res.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, fakeJWT{})
	ctx := context.Background()

	users.On("GetByEmail", ctx, "taken@example.com").Return(&domain.User{ID: 1}, nil)

	_, err := svc.RegisterTraveler(ctx, RegisterRequest{
		Email:    "taken@example.com",
		Password: "swordfish1",
		Name:     "Ana",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, fakeJWT{})
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("swordfish1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: 5, Email: "ana@example.com", PasswordHash: string(hash), Role: domain.RoleTraveler}
	users.On("GetByEmail", ctx, "ana@example.com").Return(stored, nil)

	res, err := svc.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "swordfish1"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-test", res.Token)
	assert.Equal(t, int64(5), res.User.ID)

	_, err = svc.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, fakeJWT{})
	ctx := context.Background()

	users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
