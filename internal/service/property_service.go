package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
	"github.com/ddoc14896/Realty-Website-sub000/internal/repository"
	pkgcache "github.com/ddoc14896/Realty-Website-sub000/pkg/cache"
	pkges "github.com/ddoc14896/Realty-Website-sub000/pkg/elasticsearch"
	pkglogger "github.com/ddoc14896/Realty-Website-sub000/pkg/logger"
)

// PropertiesIndex is the Elasticsearch index holding property documents
const PropertiesIndex = "realty_properties"

// PropertyDocument represents a property indexed in Elasticsearch
type PropertyDocument struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	City        string `json:"city"`
	State       string `json:"state"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Price       int64  `json:"price"`
	Bedrooms    int    `json:"bedrooms"`
	CreatedAt   string `json:"created_at"`
}

// PropertyService business logic for the property catalog
type PropertyService interface {
	Search(ctx context.Context, f domain.SearchFilter) (*domain.SearchResponse, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, req *domain.CreatePropertyRequest) (*domain.Property, error)
	Update(ctx context.Context, id string, req *domain.UpdatePropertyRequest) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
	FullTextSearch(ctx context.Context, query string, page, limit int) (*pkges.SearchResponse, error)
	Reindex(ctx context.Context) (int, error)
}

type propertyService struct {
	repo  repository.PropertyRepository
	cache pkgcache.Service // nil when Redis is unavailable
	es    *pkges.Client    // nil when Elasticsearch is disabled
}

// NewPropertyService creates a new PropertyService. cache and es may be nil.
func NewPropertyService(repo repository.PropertyRepository, cache pkgcache.Service, es *pkges.Client) PropertyService {
	svc := &propertyService{repo: repo, cache: cache, es: es}
	if es != nil {
		if err := svc.ensureIndex(context.Background()); err != nil {
			pkglogger.Get().Error().Err(err).Msg("failed to create properties index")
		}
	}
	return svc
}

func (s *propertyService) ensureIndex(ctx context.Context) error {
	mapping := map[string]interface{}{
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"id":          map[string]interface{}{"type": "keyword"},
				"title":       map[string]interface{}{"type": "text"},
				"description": map[string]interface{}{"type": "text"},
				"city":        map[string]interface{}{"type": "text", "fields": map[string]interface{}{"keyword": map[string]interface{}{"type": "keyword"}}},
				"state":       map[string]interface{}{"type": "text", "fields": map[string]interface{}{"keyword": map[string]interface{}{"type": "keyword"}}},
				"type":        map[string]interface{}{"type": "keyword"},
				"status":      map[string]interface{}{"type": "keyword"},
				"price":       map[string]interface{}{"type": "long"},
				"bedrooms":    map[string]interface{}{"type": "integer"},
				"created_at":  map[string]interface{}{"type": "date"},
			},
		},
	}
	return s.es.CreateIndex(ctx, PropertiesIndex, mapping)
}

// loadAll returns the full collection in its canonical order, through the
// cache when one is wired.
func (s *propertyService) loadAll(ctx context.Context) ([]domain.Property, error) {
	if s.cache != nil {
		var cached []domain.Property
		if err := s.cache.GetProperties(ctx, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, pkgcache.ErrCacheMiss) {
			pkglogger.Get().Warn().Err(err).Msg("property cache read failed")
		}
	}

	properties, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProperties(ctx, properties); err != nil {
			pkglogger.Get().Warn().Err(err).Msg("property cache write failed")
		}
	}
	return properties, nil
}

// Search runs the filter pipeline over the collection and echoes the filter back
func (s *propertyService) Search(ctx context.Context, f domain.SearchFilter) (*domain.SearchResponse, error) {
	properties, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	page, pagination := SearchProperties(properties, f)
	f.Normalize()
	return &domain.SearchResponse{
		Properties: page,
		Pagination: pagination,
		Filters:    f,
	}, nil
}

func (s *propertyService) Get(_ context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(id)
}

func (s *propertyService) Create(ctx context.Context, req *domain.CreatePropertyRequest) (*domain.Property, error) {
	if !domain.ValidPropertyType(req.Type) || !domain.ValidPropertyStatus(req.Status) {
		return nil, common.ErrInvalidInput
	}

	p := &domain.Property{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Price:       req.Price,
		Type:        req.Type,
		Status:      req.Status,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		YearBuilt:   req.YearBuilt,
		Features:    datatypes.NewJSONSlice(req.Features),
		OwnerName:   req.OwnerName,
		OwnerEmail:  req.OwnerEmail,
		Images:      req.Images,
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	for i := range p.Images {
		p.Images[i].PropertyID = p.ID
		p.Images[i].Position = i
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.index(ctx, p)
	return p, nil
}

func (s *propertyService) Update(ctx context.Context, id string, req *domain.UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	applyPropertyUpdate(p, req)
	if !domain.ValidPropertyType(p.Type) || !domain.ValidPropertyStatus(p.Status) {
		return nil, common.ErrInvalidInput
	}

	if err := s.repo.Update(p); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.index(ctx, p)
	return p, nil
}

func (s *propertyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidate(ctx)
	if s.es != nil {
		if err := s.es.DeleteDocument(ctx, PropertiesIndex, id); err != nil {
			pkglogger.Get().Warn().Err(err).Str("property_id", id).Msg("ES delete failed")
		}
	}
	return nil
}

// FullTextSearch queries the Elasticsearch index directly. It serves the
// relevance-ranked /search endpoint; the deterministic filter pipeline is
// unaffected by it.
func (s *propertyService) FullTextSearch(ctx context.Context, query string, page, limit int) (*pkges.SearchResponse, error) {
	if s.es == nil {
		return nil, fmt.Errorf("search backend not available")
	}
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 {
		limit = domain.DefaultLimit
	}

	esQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title^3", "description", "city", "state"},
				"type":   "best_fields",
			},
		},
	}

	from := (page - 1) * limit
	return s.es.Search(ctx, PropertiesIndex, esQuery, from, limit)
}

// Reindex bulk-indexes the whole collection, returning the document count
func (s *propertyService) Reindex(ctx context.Context) (int, error) {
	if s.es == nil {
		return 0, fmt.Errorf("search backend not available")
	}

	properties, err := s.repo.FindAll()
	if err != nil {
		return 0, err
	}

	docs := make(map[string]interface{}, len(properties))
	for i := range properties {
		docs[properties[i].ID] = newPropertyDocument(&properties[i])
	}
	if err := s.es.BulkIndex(ctx, PropertiesIndex, docs); err != nil {
		return 0, err
	}

	pkglogger.Get().Info().Int("count", len(docs)).Msg("bulk indexed properties")
	return len(docs), nil
}

func (s *propertyService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProperties(ctx); err != nil {
		pkglogger.Get().Warn().Err(err).Msg("property cache invalidation failed")
	}
}

// index writes the ES document best-effort; catalog writes never fail on it
func (s *propertyService) index(ctx context.Context, p *domain.Property) {
	if s.es == nil {
		return
	}
	if err := s.es.IndexDocument(ctx, PropertiesIndex, p.ID, newPropertyDocument(p)); err != nil {
		pkglogger.Get().Warn().Err(err).Str("property_id", p.ID).Msg("ES index failed")
	}
}

func newPropertyDocument(p *domain.Property) *PropertyDocument {
	return &PropertyDocument{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		City:        p.City,
		State:       p.State,
		Type:        string(p.Type),
		Status:      string(p.Status),
		Price:       p.Price,
		Bedrooms:    p.Bedrooms,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func applyPropertyUpdate(p *domain.Property, req *domain.UpdatePropertyRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Street != nil {
		p.Street = *req.Street
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.State != nil {
		p.State = *req.State
	}
	if req.PostalCode != nil {
		p.PostalCode = *req.PostalCode
	}
	if req.Latitude != nil {
		p.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		p.Longitude = *req.Longitude
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Type != nil {
		p.Type = *req.Type
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Bedrooms != nil {
		p.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		p.Bathrooms = *req.Bathrooms
	}
	if req.Area != nil {
		p.Area = *req.Area
	}
	if req.YearBuilt != nil {
		p.YearBuilt = *req.YearBuilt
	}
	if req.Features != nil {
		p.Features = datatypes.NewJSONSlice(req.Features)
	}
	if req.OwnerName != nil {
		p.OwnerName = *req.OwnerName
	}
	if req.OwnerEmail != nil {
		p.OwnerEmail = *req.OwnerEmail
	}
}
