package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
	pkglogger "github.com/ddoc14896/Realty-Website-sub000/pkg/logger"
)

// FavoritePersister is the backing store for one kind of identity:
// the favorites table for users, the Redis session store for visitors.
type FavoritePersister interface {
	// Load returns the identity's persisted set; empty for unseen identities
	Load(ctx context.Context, id domain.Identity) ([]string, error)
	// Save replaces the identity's persisted set with the given one
	Save(ctx context.Context, id domain.Identity, propertyIDs []string) error
	// Add inserts one pair; adding an existing pair is a no-op
	Add(ctx context.Context, id domain.Identity, propertyID string) error
	// Clear removes the identity's whole set
	Clear(ctx context.Context, id domain.Identity) error
}

// FavoriteStore tracks each identity's favorite set in memory and keeps it
// in step with the identity's backing store. Construct one per process and
// inject it; there is no package-level instance.
type FavoriteStore struct {
	mu       sync.Mutex
	sets     map[string][]string // identity key -> property IDs, insertion order
	loaded   map[string]bool
	users    FavoritePersister
	sessions FavoritePersister
}

// NewFavoriteStore creates a FavoriteStore over the two backing stores
func NewFavoriteStore(users, sessions FavoritePersister) *FavoriteStore {
	return &FavoriteStore{
		sets:     make(map[string][]string),
		loaded:   make(map[string]bool),
		users:    users,
		sessions: sessions,
	}
}

func (s *FavoriteStore) persisterFor(id domain.Identity) FavoritePersister {
	if id.IsAnonymous() {
		return s.sessions
	}
	return s.users
}

// ensureLoaded lazily pulls the identity's set from its backing store.
// Caller holds s.mu.
func (s *FavoriteStore) ensureLoaded(ctx context.Context, id domain.Identity) error {
	key := id.Key()
	if s.loaded[key] {
		return nil
	}
	set, err := s.persisterFor(id).Load(ctx, id)
	if err != nil {
		return fmt.Errorf("load favorites for %s: %w", key, err)
	}
	s.sets[key] = set
	s.loaded[key] = true
	return nil
}

// IsFavorite reports whether the pair exists in the identity's current set
func (s *FavoriteStore) IsFavorite(ctx context.Context, id domain.Identity, propertyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx, id); err != nil {
		return false
	}
	return contains(s.sets[id.Key()], propertyID)
}

// List returns the identity's current favorite set. An identity with no
// prior record gets an empty slice, not an error.
func (s *FavoriteStore) List(ctx context.Context, id domain.Identity) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx, id); err != nil {
		return nil, err
	}
	return copySet(s.sets[id.Key()]), nil
}

// Toggle adds the pair when absent and removes it when present, then
// persists the new set. On persist failure the in-memory set keeps its
// pre-toggle value and common.ErrFavoriteUpdate is returned, so memory
// and storage never diverge. Toggling twice restores the original set.
func (s *FavoriteStore) Toggle(ctx context.Context, id domain.Identity, propertyID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx, id); err != nil {
		return nil, err
	}

	current := s.sets[id.Key()]
	var next []string
	if contains(current, propertyID) {
		next = remove(current, propertyID)
	} else {
		next = append(copySet(current), propertyID)
	}

	return s.commit(ctx, id, next)
}

// Add inserts the pair; inserting an existing pair returns
// common.ErrAlreadyFavorited.
func (s *FavoriteStore) Add(ctx context.Context, id domain.Identity, propertyID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx, id); err != nil {
		return nil, err
	}

	current := s.sets[id.Key()]
	if contains(current, propertyID) {
		return nil, common.ErrAlreadyFavorited
	}

	return s.commit(ctx, id, append(copySet(current), propertyID))
}

// Remove deletes the pair; removing an absent pair is a silent no-op
func (s *FavoriteStore) Remove(ctx context.Context, id domain.Identity, propertyID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx, id); err != nil {
		return nil, err
	}

	current := s.sets[id.Key()]
	if !contains(current, propertyID) {
		return copySet(current), nil
	}

	return s.commit(ctx, id, remove(current, propertyID))
}

// commit persists next and swaps it in; on failure the in-memory set is
// untouched. Caller holds s.mu.
func (s *FavoriteStore) commit(ctx context.Context, id domain.Identity, next []string) ([]string, error) {
	if err := s.persisterFor(id).Save(ctx, id, next); err != nil {
		pkglogger.Get().Error().Err(err).Str("identity", id.Key()).Msg("favorite persist failed, rolled back")
		return nil, fmt.Errorf("%w: %v", common.ErrFavoriteUpdate, err)
	}
	s.sets[id.Key()] = next
	return copySet(next), nil
}

// MergeAnonymous copies every property in the anonymous identity's set
// into the authenticated identity's set. Duplicate adds are no-ops and a
// failed add never aborts the remaining ones. The anonymous set is cleared
// only when every add succeeded; on partial failure it is kept so the
// visitor's favorites are not silently lost, and an error is returned.
func (s *FavoriteStore) MergeAnonymous(ctx context.Context, anon, user domain.Identity) error {
	if !anon.IsAnonymous() || user.IsAnonymous() {
		return common.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx, anon); err != nil {
		return err
	}
	if err := s.ensureLoaded(ctx, user); err != nil {
		return err
	}

	anonSet := s.sets[anon.Key()]
	userKey := user.Key()
	failed := 0
	for _, propertyID := range anonSet {
		if contains(s.sets[userKey], propertyID) {
			continue
		}
		if err := s.users.Add(ctx, user, propertyID); err != nil {
			pkglogger.Get().Warn().Err(err).
				Str("property_id", propertyID).
				Str("user", userKey).
				Msg("favorite merge: add failed")
			failed++
			continue
		}
		s.sets[userKey] = append(s.sets[userKey], propertyID)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d favorites not merged", common.ErrFavoriteUpdate, failed, len(anonSet))
	}

	if err := s.sessions.Clear(ctx, anon); err != nil {
		// Merge itself succeeded; a stale anonymous set only risks a
		// second no-op merge, so report success and log.
		pkglogger.Get().Warn().Err(err).Str("session", anon.Key()).Msg("favorite merge: clear failed")
	}
	s.sets[anon.Key()] = nil
	return nil
}

func contains(set []string, propertyID string) bool {
	for _, id := range set {
		if id == propertyID {
			return true
		}
	}
	return false
}

func remove(set []string, propertyID string) []string {
	next := make([]string, 0, len(set))
	for _, id := range set {
		if id != propertyID {
			next = append(next, id)
		}
	}
	return next
}

func copySet(set []string) []string {
	out := make([]string, len(set))
	copy(out, set)
	return out
}
