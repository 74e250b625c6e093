package service

import (
	"context"

	"github.com/ddoc14896/Realty-Website-sub000/internal/repository"
	pkgcache "github.com/ddoc14896/Realty-Website-sub000/pkg/cache"
)

// Stats back-office dashboard counters
type Stats struct {
	Properties int64 `json:"properties"`
	Users      int64 `json:"users"`
	Inquiries  int64 `json:"inquiries"`
	Favorites  int64 `json:"favorites"`
}

// StatsService aggregates counters for the admin dashboard
type StatsService interface {
	Get(ctx context.Context) (*Stats, error)
}

type statsService struct {
	properties repository.PropertyRepository
	users      repository.UserRepository
	inquiries  repository.InquiryRepository
	favorites  repository.FavoriteRepository
	cache      pkgcache.Service // nil when Redis is unavailable
}

// NewStatsService creates a new StatsService. cache may be nil.
func NewStatsService(
	properties repository.PropertyRepository,
	users repository.UserRepository,
	inquiries repository.InquiryRepository,
	favorites repository.FavoriteRepository,
	cache pkgcache.Service,
) StatsService {
	return &statsService{
		properties: properties,
		users:      users,
		inquiries:  inquiries,
		favorites:  favorites,
		cache:      cache,
	}
}

func (s *statsService) Get(ctx context.Context) (*Stats, error) {
	const key = pkgcache.PrefixStats + "dashboard"

	if s.cache != nil {
		var cached Stats
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &Stats{}
	var err error
	if stats.Properties, err = s.properties.Count(); err != nil {
		return nil, err
	}
	if stats.Users, err = s.users.Count(); err != nil {
		return nil, err
	}
	if stats.Inquiries, err = s.inquiries.Count(); err != nil {
		return nil, err
	}
	if stats.Favorites, err = s.favorites.Count(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, stats, pkgcache.TTLStats)
	}
	return stats, nil
}
