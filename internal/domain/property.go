package domain

import (
	"time"

	"gorm.io/datatypes"
)

// PropertyType represents the kind of listing
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypePenthouse  PropertyType = "penthouse"
	PropertyTypeStudio     PropertyType = "studio"
	PropertyTypeDuplex     PropertyType = "duplex"
	PropertyTypePlot       PropertyType = "plot"
	PropertyTypeTownhouse  PropertyType = "townhouse"
	PropertyTypeCommercial PropertyType = "commercial"
)

// PropertyStatus represents the listing status
type PropertyStatus string

const (
	PropertyStatusForSale PropertyStatus = "for-sale"
	PropertyStatusForRent PropertyStatus = "for-rent"
	PropertyStatusSold    PropertyStatus = "sold"
	PropertyStatusRented  PropertyStatus = "rented"
)

// Property represents a real-estate listing
// Table: properties
type Property struct {
	ID          string                      `gorm:"column:id;primaryKey;size:64" json:"id"`
	Title       string                      `gorm:"column:title" json:"title"`
	Description string                      `gorm:"column:description;type:text" json:"description"`
	Street      string                      `gorm:"column:street" json:"street"`
	City        string                      `gorm:"column:city;index" json:"city"`
	State       string                      `gorm:"column:state;index" json:"state"`
	PostalCode  string                      `gorm:"column:postal_code" json:"postalCode"`
	Latitude    float64                     `gorm:"column:latitude" json:"latitude"`
	Longitude   float64                     `gorm:"column:longitude" json:"longitude"`
	Price       int64                       `gorm:"column:price;index" json:"price"`
	Type        PropertyType                `gorm:"column:type;size:32;index" json:"type"`
	Status      PropertyStatus              `gorm:"column:status;size:16;index" json:"status"`
	Bedrooms    int                         `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms   int                         `gorm:"column:bathrooms" json:"bathrooms"`
	Area        float64                     `gorm:"column:area" json:"area"`
	YearBuilt   int                         `gorm:"column:year_built" json:"yearBuilt"`
	Features    datatypes.JSONSlice[string] `gorm:"column:features" json:"features"`
	OwnerName   string                      `gorm:"column:owner_name" json:"ownerName"`
	OwnerEmail  string                      `gorm:"column:owner_email" json:"ownerEmail"`
	CreatedAt   time.Time                   `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time                   `gorm:"column:updated_at" json:"updatedAt"`

	Images []PropertyImage `gorm:"foreignKey:PropertyID" json:"images"`
}

// TableName specifies the table name for Property model
func (Property) TableName() string {
	return "properties"
}

// Address returns the full address line used for free-text matching
func (p *Property) Address() string {
	return p.Street + ", " + p.City + ", " + p.State + " " + p.PostalCode
}

// PrimaryImage returns the image flagged primary, or the first image.
// Exactly one primary flag is expected but not enforced.
func (p *Property) PrimaryImage() *PropertyImage {
	for i := range p.Images {
		if p.Images[i].Primary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

// PropertyImage represents an ordered image descriptor for a listing
// Table: property_images
type PropertyImage struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PropertyID string `gorm:"column:property_id;size:64;index" json:"-"`
	URL        string `gorm:"column:url" json:"url"`
	Alt        string `gorm:"column:alt" json:"alt"`
	Primary    bool   `gorm:"column:is_primary" json:"primary"`
	Position   int    `gorm:"column:position" json:"-"`
}

// TableName specifies the table name for PropertyImage model
func (PropertyImage) TableName() string {
	return "property_images"
}

// CreatePropertyRequest admin payload for creating or replacing a listing
type CreatePropertyRequest struct {
	ID          string          `json:"id"`
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Street      string          `json:"street"`
	City        string          `json:"city" binding:"required"`
	State       string          `json:"state"`
	PostalCode  string          `json:"postalCode"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Price       int64           `json:"price" binding:"required"`
	Type        PropertyType    `json:"type" binding:"required"`
	Status      PropertyStatus  `json:"status" binding:"required"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	Area        float64         `json:"area"`
	YearBuilt   int             `json:"yearBuilt"`
	Features    []string        `json:"features"`
	OwnerName   string          `json:"ownerName"`
	OwnerEmail  string          `json:"ownerEmail"`
	Images      []PropertyImage `json:"images"`
}

// UpdatePropertyRequest admin payload for partial updates; nil means unchanged
type UpdatePropertyRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Street      *string         `json:"street"`
	City        *string         `json:"city"`
	State       *string         `json:"state"`
	PostalCode  *string         `json:"postalCode"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	Price       *int64          `json:"price"`
	Type        *PropertyType   `json:"type"`
	Status      *PropertyStatus `json:"status"`
	Bedrooms    *int            `json:"bedrooms"`
	Bathrooms   *int            `json:"bathrooms"`
	Area        *float64        `json:"area"`
	YearBuilt   *int            `json:"yearBuilt"`
	Features    []string        `json:"features"`
	OwnerName   *string         `json:"ownerName"`
	OwnerEmail  *string         `json:"ownerEmail"`
}

// ValidPropertyType reports whether t is a known property type
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeVilla,
		PropertyTypePenthouse, PropertyTypeStudio, PropertyTypeDuplex,
		PropertyTypePlot, PropertyTypeTownhouse, PropertyTypeCommercial:
		return true
	}
	return false
}

// ValidPropertyStatus reports whether s is a known listing status
func ValidPropertyStatus(s PropertyStatus) bool {
	switch s {
	case PropertyStatusForSale, PropertyStatusForRent, PropertyStatusSold, PropertyStatusRented:
		return true
	}
	return false
}
