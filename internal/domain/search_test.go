package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func queryGetter(params map[string]string) func(string) string {
	return func(key string) string { return params[key] }
}

func TestParseSearchFilter_AllParams(t *testing.T) {
	f := ParseSearchFilter(queryGetter(map[string]string{
		"q":         "villa",
		"location":  "austin",
		"minPrice":  "1000000",
		"maxPrice":  "5000000",
		"type":      "house",
		"bedrooms":  "3",
		"bathrooms": "2",
		"status":    "for-sale",
		"page":      "2",
		"limit":     "24",
	}))

	assert.Equal(t, "villa", f.Query)
	assert.Equal(t, "austin", f.Location)
	if assert.NotNil(t, f.MinPrice) {
		assert.Equal(t, int64(1000000), *f.MinPrice)
	}
	if assert.NotNil(t, f.MaxPrice) {
		assert.Equal(t, int64(5000000), *f.MaxPrice)
	}
	assert.Equal(t, "house", f.Type)
	if assert.NotNil(t, f.Bedrooms) {
		assert.Equal(t, 3, *f.Bedrooms)
	}
	if assert.NotNil(t, f.Bathrooms) {
		assert.Equal(t, 2, *f.Bathrooms)
	}
	assert.Equal(t, "for-sale", f.Status)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 24, f.Limit)
}

func TestParseSearchFilter_EmptyParamsUseDefaults(t *testing.T) {
	f := ParseSearchFilter(queryGetter(nil))

	assert.Empty(t, f.Query)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.Bedrooms)
	assert.Nil(t, f.Bathrooms)
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
}

func TestParseSearchFilter_UnparseableNumbersAreAbsent(t *testing.T) {
	f := ParseSearchFilter(queryGetter(map[string]string{
		"minPrice": "cheap",
		"bedrooms": "many",
		"page":     "first",
		"limit":    "-5",
	}))

	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.Bedrooms)
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
}

func TestParseSearchFilter_ZeroBedroomsIsAConstraint(t *testing.T) {
	f := ParseSearchFilter(queryGetter(map[string]string{"bedrooms": "0"}))

	if assert.NotNil(t, f.Bedrooms) {
		assert.Equal(t, 0, *f.Bedrooms)
	}
}

func TestNormalize_FillsDefaults(t *testing.T) {
	f := SearchFilter{Page: -1, Limit: 0}
	f.Normalize()

	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
}
