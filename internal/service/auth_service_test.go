package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
	"github.com/ddoc14896/Realty-Website-sub000/pkg/jwt"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Find(page, limit int) ([]domain.User, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 3600, 604800)
}

func newTestFavoriteStore() (*FavoriteStore, *MockPersister, *MockPersister) {
	users := new(MockPersister)
	sessions := new(MockPersister)
	return NewFavoriteStore(users, sessions), users, sessions
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegister_CreatesAccountAndIssuesTokens(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", "new@example.com").Return(nil, common.ErrUserNotFound)
	users.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)

	store, _, _ := newTestFavoriteStore()
	svc := NewAuthService(users, store, newTestJWTManager())

	resp, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Email:    "new@example.com",
		Name:     "New User",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Equal(t, 1, resp.User.Level)
	assert.False(t, resp.FavoritesMerged)
	users.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", "taken@example.com").Return(&domain.User{ID: "u1"}, nil)

	store, _, _ := newTestFavoriteStore()
	svc := NewAuthService(users, store, newTestJWTManager())

	_, err := svc.Register(context.Background(), &domain.RegisterRequest{
		Email: "taken@example.com", Name: "X", Password: "supersecret",
	})

	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", "a@example.com").Return(&domain.User{
		ID: "u1", Email: "a@example.com", Password: hashPassword(t, "correct"),
	}, nil)

	store, _, _ := newTestFavoriteStore()
	svc := NewAuthService(users, store, newTestJWTManager())

	_, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email: "a@example.com", Password: "wrong",
	}, "")

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", "ghost@example.com").Return(nil, common.ErrUserNotFound)

	store, _, _ := newTestFavoriteStore()
	svc := NewAuthService(users, store, newTestJWTManager())

	_, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email: "ghost@example.com", Password: "whatever",
	}, "")

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_WithSessionMergesFavorites(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", "a@example.com").Return(&domain.User{
		ID: "u1", Email: "a@example.com", Password: hashPassword(t, "correct"),
	}, nil)

	store, userPersister, sessionPersister := newTestFavoriteStore()
	session := domain.SessionIdentity("anon-1")
	authed := domain.UserIdentity("u1")
	sessionPersister.On("Load", session).Return([]string{"p1", "p2"}, nil)
	userPersister.On("Load", authed).Return([]string{}, nil)
	userPersister.On("Add", authed, "p1").Return(nil)
	userPersister.On("Add", authed, "p2").Return(nil)
	sessionPersister.On("Clear", session).Return(nil)

	svc := NewAuthService(users, store, newTestJWTManager())

	resp, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email: "a@example.com", Password: "correct",
	}, "anon-1")

	assert.NoError(t, err)
	assert.True(t, resp.FavoritesMerged)
	userPersister.AssertExpectations(t)
	sessionPersister.AssertExpectations(t)
}

func TestLogin_MergeFailureStillLogsIn(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", "a@example.com").Return(&domain.User{
		ID: "u1", Email: "a@example.com", Password: hashPassword(t, "correct"),
	}, nil)

	store, userPersister, sessionPersister := newTestFavoriteStore()
	session := domain.SessionIdentity("anon-1")
	authed := domain.UserIdentity("u1")
	sessionPersister.On("Load", session).Return([]string{"p1"}, nil)
	userPersister.On("Load", authed).Return([]string{}, nil)
	userPersister.On("Add", authed, "p1").Return(assert.AnError)

	svc := NewAuthService(users, store, newTestJWTManager())

	resp, err := svc.Login(context.Background(), &domain.LoginRequest{
		Email: "a@example.com", Password: "correct",
	}, "anon-1")

	assert.NoError(t, err)
	assert.False(t, resp.FavoritesMerged)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefresh_RoundTrip(t *testing.T) {
	manager := newTestJWTManager()
	refreshToken, err := manager.GenerateRefreshToken("u1")
	assert.NoError(t, err)

	users := new(MockUserRepository)
	users.On("FindByID", "u1").Return(&domain.User{ID: "u1", Email: "a@example.com"}, nil)

	store, _, _ := newTestFavoriteStore()
	svc := NewAuthService(users, store, manager)

	resp, err := svc.Refresh(context.Background(), refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestRefresh_GarbageToken(t *testing.T) {
	store, _, _ := newTestFavoriteStore()
	svc := NewAuthService(new(MockUserRepository), store, newTestJWTManager())

	_, err := svc.Refresh(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
