package service

import (
	"context"
	"testing"
	"time"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/models"
	"cinehub/internal/middleware/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestAuthService(users *MockUserRepository, tokens *MockRefreshTokenRepository) AuthService {
	return NewAuthService(users, tokens, testSecret, 15*time.Minute, 168*time.Hour)
}

func TestRegister_EmailInUse(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestAuthService(users, tokens)

	existing := &models.User{ID: 1, Email: "taken@example.com"}
	users.On("FindByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "Taken@Example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrEmailInUse)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_NormalizesEmailAndDefaultsRole(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestAuthService(users, tokens)

	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "new@example.com" && u.Role == models.RoleUser && u.PasswordHash != "password123"
	})).Return(nil)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "  New@Example.COM ",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.NoError(t, auth.VerifyPassword(user.PasswordHash, "password123"))
	users.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestAuthService(users, tokens)

	users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestAuthService(users, tokens)

	hash, _ := auth.HashPassword("correct-password")
	user := &models.User{ID: 5, Email: "user@example.com", PasswordHash: hash, Role: models.RoleUser}
	users.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_IssuesValidatableToken(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestAuthService(users, tokens)

	hash, _ := auth.HashPassword("correct-password")
	user := &models.User{ID: 5, Email: "user@example.com", PasswordHash: hash, Role: models.RoleAdmin}
	users.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)
	tokens.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("UpdateLastLogin", mock.Anything, int64(5), mock.Anything).Return(nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "correct-password",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	claims, err := svc.ValidateToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, claims.Identity().IsAdmin())
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestAuthService(new(MockUserRepository), new(MockRefreshTokenRepository))

	_, err := svc.ValidateToken("not-a-jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockRefreshTokenRepository)
	// negative TTL makes every issued token already expired
	svc := NewAuthService(users, tokens, testSecret, -time.Minute, 168*time.Hour)

	hash, _ := auth.HashPassword("correct-password")
	user := &models.User{ID: 5, Email: "user@example.com", PasswordHash: hash, Role: models.RoleUser}
	users.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)
	tokens.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("UpdateLastLogin", mock.Anything, int64(5), mock.Anything).Return(nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "correct-password",
	})
	assert.NoError(t, err)

	_, err = svc.ValidateToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRefreshAccessToken_UnknownToken(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestAuthService(users, tokens)

	tokens.On("FindByToken", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RefreshAccessToken(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestAuthService(users, tokens)

	stored := &models.RefreshToken{
		ID:        "tok-1",
		UserID:    5,
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	tokens.On("FindByToken", mock.Anything, "stale").Return(stored, nil)
	tokens.On("Delete", mock.Anything, "tok-1").Return(nil)

	_, err := svc.RefreshAccessToken(context.Background(), "stale")

	assert.ErrorIs(t, err, ErrExpiredToken)
	tokens.AssertCalled(t, "Delete", mock.Anything, "tok-1")
}

func TestRefreshAccessToken_Success(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockRefreshTokenRepository)
	svc := newTestAuthService(users, tokens)

	stored := &models.RefreshToken{
		ID:        "tok-2",
		UserID:    5,
		Token:     "fresh",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &models.User{ID: 5, Email: "user@example.com", Role: models.RoleUser}
	tokens.On("FindByToken", mock.Anything, "fresh").Return(stored, nil)
	users.On("FindByID", mock.Anything, int64(5)).Return(user, nil)

	resp, err := svc.RefreshAccessToken(context.Background(), "fresh")

	assert.NoError(t, err)
	claims, err := svc.ValidateToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
}
