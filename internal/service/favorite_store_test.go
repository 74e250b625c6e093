package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

// MockPersister is a mock implementation of FavoritePersister
type MockPersister struct {
	mock.Mock
}

func (m *MockPersister) Load(_ context.Context, id domain.Identity) ([]string, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPersister) Save(_ context.Context, id domain.Identity, propertyIDs []string) error {
	args := m.Called(id, propertyIDs)
	return args.Error(0)
}

func (m *MockPersister) Add(_ context.Context, id domain.Identity, propertyID string) error {
	args := m.Called(id, propertyID)
	return args.Error(0)
}

func (m *MockPersister) Clear(_ context.Context, id domain.Identity) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestFavoriteStore_ListUnseenIdentityIsEmpty(t *testing.T) {
	users := new(MockPersister)
	sessions := new(MockPersister)
	session := domain.SessionIdentity("anon-1")
	sessions.On("Load", session).Return([]string{}, nil)

	store := NewFavoriteStore(users, sessions)

	favorites, err := store.List(context.Background(), session)

	assert.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoriteStore_ToggleAddsThenRemoves(t *testing.T) {
	users := new(MockPersister)
	sessions := new(MockPersister)
	user := domain.UserIdentity("42")
	users.On("Load", user).Return([]string{}, nil)
	users.On("Save", user, mock.Anything).Return(nil)

	store := NewFavoriteStore(users, sessions)
	ctx := context.Background()

	favorites, err := store.Toggle(ctx, user, "p1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"p1"}, favorites)
	assert.True(t, store.IsFavorite(ctx, user, "p1"))

	favorites, err = store.Toggle(ctx, user, "p1")
	assert.NoError(t, err)
	assert.Empty(t, favorites)
	assert.False(t, store.IsFavorite(ctx, user, "p1"))
}

func TestFavoriteStore_TogglePreservesInsertionOrder(t *testing.T) {
	users := new(MockPersister)
	sessions := new(MockPersister)
	user := domain.UserIdentity("42")
	users.On("Load", user).Return([]string{}, nil)
	users.On("Save", user, mock.Anything).Return(nil)

	store := NewFavoriteStore(users, sessions)
	ctx := context.Background()

	store.Toggle(ctx, user, "p1")
	store.Toggle(ctx, user, "p2")
	store.Toggle(ctx, user, "p3")
	store.Toggle(ctx, user, "p2")

	favorites, err := store.List(ctx, user)
	assert.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3"}, favorites)
}

func TestFavoriteStore_AddDuplicateIsConflict(t *testing.T) {
	users := new(MockPersister)
	sessions := new(MockPersister)
	user := domain.UserIdentity("42")
	users.On("Load", user).Return([]string{"p1"}, nil)

	store := NewFavoriteStore(users, sessions)

	_, err := store.Add(context.Background(), user, "p1")

	assert.ErrorIs(t, err, common.ErrAlreadyFavorited)
	users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFavoriteStore_RemoveAbsentIsNoOp(t *testing.T) {
	users := new(MockPersister)
	sessions := new(MockPersister)
	user := domain.UserIdentity("42")
	users.On("Load", user).Return([]string{"p1"}, nil)

	store := NewFavoriteStore(users, sessions)

	favorites, err := store.Remove(context.Background(), user, "p9")

	assert.NoError(t, err)
	assert.Equal(t, []string{"p1"}, favorites)
	users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFavoriteStore_PersistFailureRollsBack(t *testing.T) {
	users := new(MockPersister)
	sessions := new(MockPersister)
	user := domain.UserIdentity("42")
	users.On("Load", user).Return([]string{"p1"}, nil)
	users.On("Save", user, mock.Anything).Return(errors.New("connection lost"))

	store := NewFavoriteStore(users, sessions)
	ctx := context.Background()

	_, err := store.Toggle(ctx, user, "p2")

	assert.ErrorIs(t, err, common.ErrFavoriteUpdate)

	// In-memory set keeps its pre-toggle value
	favorites, listErr := store.List(ctx, user)
	assert.NoError(t, listErr)
	assert.Equal(t, []string{"p1"}, favorites)
}

func TestFavoriteStore_AnonymousGoesToSessionPersister(t *testing.T) {
	users := new(MockPersister)
	sessions := new(MockPersister)
	session := domain.SessionIdentity("anon-1")
	sessions.On("Load", session).Return([]string{}, nil)
	sessions.On("Save", session, []string{"p1"}).Return(nil)

	store := NewFavoriteStore(users, sessions)

	_, err := store.Add(context.Background(), session, "p1")

	assert.NoError(t, err)
	sessions.AssertExpectations(t)
	users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFavoriteStore_MergeCopiesAndClears(t *testing.T) {
	users := new(MockPersister)
	sessions := new(MockPersister)
	session := domain.SessionIdentity("anon-1")
	user := domain.UserIdentity("42")

	sessions.On("Load", session).Return([]string{"p1", "p2", "p3"}, nil)
	users.On("Load", user).Return([]string{"p2"}, nil)
	users.On("Add", user, "p1").Return(nil)
	users.On("Add", user, "p3").Return(nil)
	sessions.On("Clear", session).Return(nil)

	store := NewFavoriteStore(users, sessions)
	ctx := context.Background()

	err := store.MergeAnonymous(ctx, session, user)

	assert.NoError(t, err)
	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
	// p2 was already favorited; no duplicate add
	users.AssertNotCalled(t, "Add", user, "p2")

	merged, _ := store.List(ctx, user)
	assert.Equal(t, []string{"p2", "p1", "p3"}, merged)

	remaining, _ := store.List(ctx, session)
	assert.Empty(t, remaining)
}

func TestFavoriteStore_MergePartialFailureKeepsAnonymousSet(t *testing.T) {
	users := new(MockPersister)
	sessions := new(MockPersister)
	session := domain.SessionIdentity("anon-1")
	user := domain.UserIdentity("42")

	sessions.On("Load", session).Return([]string{"p1", "p2"}, nil)
	users.On("Load", user).Return([]string{}, nil)
	users.On("Add", user, "p1").Return(nil)
	users.On("Add", user, "p2").Return(errors.New("insert failed"))

	store := NewFavoriteStore(users, sessions)
	ctx := context.Background()

	err := store.MergeAnonymous(ctx, session, user)

	assert.ErrorIs(t, err, common.ErrFavoriteUpdate)
	// Anonymous set survives so the visitor's favorites are not lost
	sessions.AssertNotCalled(t, "Clear", mock.Anything)
	remaining, _ := store.List(ctx, session)
	assert.Equal(t, []string{"p1", "p2"}, remaining)

	// The add that succeeded stays merged
	merged, _ := store.List(ctx, user)
	assert.Equal(t, []string{"p1"}, merged)
}

func TestFavoriteStore_MergeRejectsWrongKinds(t *testing.T) {
	store := NewFavoriteStore(new(MockPersister), new(MockPersister))
	ctx := context.Background()

	err := store.MergeAnonymous(ctx, domain.UserIdentity("42"), domain.UserIdentity("43"))
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	err = store.MergeAnonymous(ctx, domain.SessionIdentity("anon-1"), domain.SessionIdentity("anon-2"))
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
