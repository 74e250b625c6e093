package service

import (
	"strings"

	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

// SearchProperties narrows the collection to the subset matching every
// present constraint, then slices it into one page. The input order is
// preserved; no sort is applied. A page past the end yields an empty
// page, not an error.
func SearchProperties(properties []domain.Property, f domain.SearchFilter) ([]domain.Property, domain.Pagination) {
	f.Normalize()

	filtered := make([]domain.Property, 0, len(properties))
	for i := range properties {
		if matchesFilter(&properties[i], &f) {
			filtered = append(filtered, properties[i])
		}
	}

	total := len(filtered)
	totalPages := (total + f.Limit - 1) / f.Limit

	skip := (f.Page - 1) * f.Limit
	end := skip + f.Limit
	if skip > total {
		skip = total
	}
	if end > total {
		end = total
	}
	page := filtered[skip:end]

	return page, domain.Pagination{
		Page:         f.Page,
		Limit:        f.Limit,
		TotalResults: total,
		TotalPages:   totalPages,
		HasNext:      f.Page < totalPages,
		HasPrev:      f.Page > 1,
	}
}

// matchesFilter applies every present constraint conjunctively
func matchesFilter(p *domain.Property, f *domain.SearchFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Address()), q) {
			return false
		}
	}

	if f.Location != "" {
		loc := strings.ToLower(f.Location)
		if !strings.Contains(strings.ToLower(p.City), loc) &&
			!strings.Contains(strings.ToLower(p.State), loc) {
			return false
		}
	}

	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}

	if f.Type != "" && !strings.EqualFold(string(p.Type), f.Type) {
		return false
	}

	if f.Bedrooms != nil && p.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && p.Bathrooms < *f.Bathrooms {
		return false
	}

	if f.Status != "" && !strings.EqualFold(string(p.Status), f.Status) {
		return false
	}

	return true
}
