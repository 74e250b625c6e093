package service

import (
	"context"

	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
	"github.com/ddoc14896/Realty-Website-sub000/internal/repository"
)

// userFavoritePersister backs authenticated identities with the favorites table
type userFavoritePersister struct {
	repo repository.FavoriteRepository
}

// NewUserFavoritePersister wraps a FavoriteRepository as a FavoritePersister
func NewUserFavoritePersister(repo repository.FavoriteRepository) FavoritePersister {
	return &userFavoritePersister{repo: repo}
}

func (p *userFavoritePersister) Load(_ context.Context, id domain.Identity) ([]string, error) {
	return p.repo.FindByUser(id.ID)
}

func (p *userFavoritePersister) Save(_ context.Context, id domain.Identity, propertyIDs []string) error {
	return p.repo.Replace(id.ID, propertyIDs)
}

func (p *userFavoritePersister) Add(_ context.Context, id domain.Identity, propertyID string) error {
	return p.repo.Create(id.ID, propertyID)
}

func (p *userFavoritePersister) Clear(_ context.Context, id domain.Identity) error {
	return p.repo.Replace(id.ID, nil)
}

// sessionFavoritePersister backs anonymous identities with the Redis session store
type sessionFavoritePersister struct {
	store repository.SessionFavoriteStore
}

// NewSessionFavoritePersister wraps a SessionFavoriteStore as a FavoritePersister
func NewSessionFavoritePersister(store repository.SessionFavoriteStore) FavoritePersister {
	return &sessionFavoritePersister{store: store}
}

func (p *sessionFavoritePersister) Load(ctx context.Context, id domain.Identity) ([]string, error) {
	return p.store.Members(ctx, id.ID)
}

func (p *sessionFavoritePersister) Save(ctx context.Context, id domain.Identity, propertyIDs []string) error {
	return p.store.Replace(ctx, id.ID, propertyIDs)
}

func (p *sessionFavoritePersister) Add(ctx context.Context, id domain.Identity, propertyID string) error {
	current, err := p.store.Members(ctx, id.ID)
	if err != nil {
		return err
	}
	for _, existing := range current {
		if existing == propertyID {
			return nil
		}
	}
	return p.store.Replace(ctx, id.ID, append(current, propertyID))
}

func (p *sessionFavoritePersister) Clear(ctx context.Context, id domain.Identity) error {
	return p.store.Clear(ctx, id.ID)
}
