package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func testProperties() []domain.Property {
	return []domain.Property{
		{ID: "p1", Title: "Sunlit Family House", Description: "Large backyard", Street: "18 Willow Creek Rd", City: "Austin", State: "TX", Price: 15000000, Type: domain.PropertyTypeHouse, Status: domain.PropertyStatusForSale, Bedrooms: 3, Bathrooms: 2},
		{ID: "p2", Title: "Downtown Loft", Description: "River walk views", Street: "402 Congress Ave", City: "Austin", State: "TX", Price: 8500000, Type: domain.PropertyTypeApartment, Status: domain.PropertyStatusForSale, Bedrooms: 2, Bathrooms: 2},
		{ID: "p3", Title: "Hillside Villa", Description: "Infinity pool", Street: "77 Summit Dr", City: "Scottsdale", State: "AZ", Price: 32000000, Type: domain.PropertyTypeVilla, Status: domain.PropertyStatusForSale, Bedrooms: 4, Bathrooms: 4},
		{ID: "p4", Title: "Cozy Studio", Description: "Near campus", Street: "210 College St", City: "Tempe", State: "AZ", Price: 120000, Type: domain.PropertyTypeStudio, Status: domain.PropertyStatusForRent, Bedrooms: 0, Bathrooms: 1},
		{ID: "p5", Title: "Riverside Penthouse", Description: "Wraparound terrace", Street: "1 Harbor Pl", City: "Portland", State: "OR", Price: 45000000, Type: domain.PropertyTypePenthouse, Status: domain.PropertyStatusForSale, Bedrooms: 3, Bathrooms: 3},
	}
}

func resultIDs(properties []domain.Property) []string {
	ids := make([]string, len(properties))
	for i := range properties {
		ids[i] = properties[i].ID
	}
	return ids
}

func TestSearchProperties_EmptyFilterReturnsAllInOrder(t *testing.T) {
	results, pagination := SearchProperties(testProperties(), domain.SearchFilter{})

	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, resultIDs(results))
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, domain.DefaultLimit, pagination.Limit)
	assert.Equal(t, 5, pagination.TotalResults)
	assert.Equal(t, 1, pagination.TotalPages)
	assert.False(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
}

func TestSearchProperties_MinPriceExcludesCheaper(t *testing.T) {
	results, _ := SearchProperties(testProperties(), domain.SearchFilter{
		MinPrice: int64Ptr(10000000),
	})

	assert.Equal(t, []string{"p1", "p3", "p5"}, resultIDs(results))
}

func TestSearchProperties_PriceRangeIsInclusive(t *testing.T) {
	results, _ := SearchProperties(testProperties(), domain.SearchFilter{
		MinPrice: int64Ptr(8500000),
		MaxPrice: int64Ptr(15000000),
	})

	assert.Equal(t, []string{"p1", "p2"}, resultIDs(results))
}

func TestSearchProperties_BedroomsIsExactMatch(t *testing.T) {
	results, _ := SearchProperties(testProperties(), domain.SearchFilter{
		Bedrooms: intPtr(3),
	})
	assert.Equal(t, []string{"p1", "p5"}, resultIDs(results))

	results, _ = SearchProperties(testProperties(), domain.SearchFilter{
		Bedrooms: intPtr(2),
	})
	assert.Equal(t, []string{"p2"}, resultIDs(results))
}

func TestSearchProperties_BathroomsIsMinimum(t *testing.T) {
	results, _ := SearchProperties(testProperties(), domain.SearchFilter{
		Bathrooms: intPtr(3),
	})

	assert.Equal(t, []string{"p3", "p5"}, resultIDs(results))
}

func TestSearchProperties_QueryMatchesTitleDescriptionAddress(t *testing.T) {
	byTitle, _ := SearchProperties(testProperties(), domain.SearchFilter{Query: "villa"})
	assert.Equal(t, []string{"p3"}, resultIDs(byTitle))

	byDescription, _ := SearchProperties(testProperties(), domain.SearchFilter{Query: "terrace"})
	assert.Equal(t, []string{"p5"}, resultIDs(byDescription))

	byStreet, _ := SearchProperties(testProperties(), domain.SearchFilter{Query: "congress"})
	assert.Equal(t, []string{"p2"}, resultIDs(byStreet))
}

func TestSearchProperties_QueryIsCaseInsensitive(t *testing.T) {
	results, _ := SearchProperties(testProperties(), domain.SearchFilter{Query: "LOFT"})

	assert.Equal(t, []string{"p2"}, resultIDs(results))
}

func TestSearchProperties_LocationMatchesCityOrState(t *testing.T) {
	byCity, _ := SearchProperties(testProperties(), domain.SearchFilter{Location: "austin"})
	assert.Equal(t, []string{"p1", "p2"}, resultIDs(byCity))

	byState, _ := SearchProperties(testProperties(), domain.SearchFilter{Location: "az"})
	assert.Equal(t, []string{"p3", "p4"}, resultIDs(byState))
}

func TestSearchProperties_TypeAndStatusIgnoreCase(t *testing.T) {
	results, _ := SearchProperties(testProperties(), domain.SearchFilter{
		Type:   "APARTMENT",
		Status: "For-Sale",
	})

	assert.Equal(t, []string{"p2"}, resultIDs(results))
}

func TestSearchProperties_FiltersAreConjunctive(t *testing.T) {
	results, _ := SearchProperties(testProperties(), domain.SearchFilter{
		Location: "austin",
		Bedrooms: intPtr(3),
	})

	assert.Equal(t, []string{"p1"}, resultIDs(results))
}

func TestSearchProperties_NoMatchYieldsEmptyPage(t *testing.T) {
	results, pagination := SearchProperties(testProperties(), domain.SearchFilter{
		Location: "chicago",
	})

	assert.Empty(t, results)
	assert.Equal(t, 0, pagination.TotalResults)
	assert.Equal(t, 0, pagination.TotalPages)
	assert.False(t, pagination.HasNext)
}

func TestSearchProperties_Pagination(t *testing.T) {
	results, pagination := SearchProperties(testProperties(), domain.SearchFilter{
		Page: 2, Limit: 2,
	})

	assert.Equal(t, []string{"p3", "p4"}, resultIDs(results))
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 5, pagination.TotalResults)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestSearchProperties_LastPartialPage(t *testing.T) {
	results, pagination := SearchProperties(testProperties(), domain.SearchFilter{
		Page: 3, Limit: 2,
	})

	assert.Equal(t, []string{"p5"}, resultIDs(results))
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestSearchProperties_PageBeyondEndIsEmptyNotError(t *testing.T) {
	results, pagination := SearchProperties(testProperties(), domain.SearchFilter{
		Page: 5, Limit: 2,
	})

	assert.Empty(t, results)
	assert.Equal(t, 5, pagination.Page)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestSearchProperties_ZeroPageNormalizedToDefaults(t *testing.T) {
	results, pagination := SearchProperties(testProperties(), domain.SearchFilter{
		Page: 0, Limit: 0,
	})

	assert.Len(t, results, 5)
	assert.Equal(t, domain.DefaultPage, pagination.Page)
	assert.Equal(t, domain.DefaultLimit, pagination.Limit)
}

func TestSearchProperties_InputOrderPreserved(t *testing.T) {
	reversed := testProperties()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	results, _ := SearchProperties(reversed, domain.SearchFilter{Status: "for-sale"})

	assert.Equal(t, []string{"p5", "p3", "p2", "p1"}, resultIDs(results))
}
