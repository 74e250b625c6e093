package domain

import "strconv"

// Search defaults
const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// SearchFilter is the set of optional constraints narrowing a property
// search. A nil/empty field imposes no constraint on that dimension.
type SearchFilter struct {
	Query     string `json:"q,omitempty"`
	Location  string `json:"location,omitempty"`
	MinPrice  *int64 `json:"minPrice,omitempty"`
	MaxPrice  *int64 `json:"maxPrice,omitempty"`
	Type      string `json:"type,omitempty"`
	Bedrooms  *int   `json:"bedrooms,omitempty"` // exact match
	Bathrooms *int   `json:"bathrooms,omitempty"` // at least
	Status    string `json:"status,omitempty"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

// Pagination describes one page of search results
type Pagination struct {
	Page         int  `json:"page"`
	Limit        int  `json:"limit"`
	TotalResults int  `json:"totalResults"`
	TotalPages   int  `json:"totalPages"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

// SearchResponse is the property search envelope
type SearchResponse struct {
	Properties []Property   `json:"properties"`
	Pagination Pagination   `json:"pagination"`
	Filters    SearchFilter `json:"filters"`
}

// ParseSearchFilter builds a SearchFilter from flat string query params.
// Numeric values that fail to parse are treated as absent constraints,
// never as errors.
func ParseSearchFilter(get func(string) string) SearchFilter {
	f := SearchFilter{
		Query:     get("q"),
		Location:  get("location"),
		MinPrice:  parseOptionalInt64(get("minPrice")),
		MaxPrice:  parseOptionalInt64(get("maxPrice")),
		Type:      get("type"),
		Bedrooms:  parseOptionalInt(get("bedrooms")),
		Bathrooms: parseOptionalInt(get("bathrooms")),
		Status:    get("status"),
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}
	if p := parseOptionalInt(get("page")); p != nil && *p > 0 {
		f.Page = *p
	}
	if l := parseOptionalInt(get("limit")); l != nil && *l > 0 {
		f.Limit = *l
	}
	return f
}

// Normalize fills in default page/limit on a hand-built filter
func (f *SearchFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
}

func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseOptionalInt64(s string) *int64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
