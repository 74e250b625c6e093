package migration

import (
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

// Run executes AutoMigrate for all tables and seeds default data if empty.
func Run(db *gorm.DB) error {
	// 1. AutoMigrate - 테이블 없으면 생성, 있으면 skip
	if err := db.AutoMigrate(
		&domain.Property{},
		&domain.PropertyImage{},
		&domain.Favorite{},
		&domain.User{},
		&domain.Inquiry{},
	); err != nil {
		return err
	}

	// 2. Seed - properties 테이블이 비어있을 때만 샘플 매물 삽입
	var count int64
	db.Model(&domain.Property{}).Count(&count)
	if count == 0 {
		if err := seedProperties(db); err != nil {
			return err
		}
	}

	// 3. Seed - 관리자 계정이 없으면 생성
	var users int64
	db.Model(&domain.User{}).Count(&users)
	if users == 0 {
		return seedAdmin(db)
	}

	return nil
}

func seedProperties(db *gorm.DB) error {
	features := func(v ...string) datatypes.JSONSlice[string] {
		return datatypes.NewJSONSlice(v)
	}
	at := func(day int) time.Time {
		return time.Date(2024, time.March, day, 9, 0, 0, 0, time.UTC)
	}

	properties := []domain.Property{
		{
			ID: "prop-001", Title: "Sunlit Family House in Willow Creek",
			Description: "Renovated three-bedroom house with a large backyard and a two-car garage.",
			Street:      "18 Willow Creek Rd", City: "Austin", State: "TX", PostalCode: "78701",
			Latitude: 30.2672, Longitude: -97.7431,
			Price: 15000000, Type: domain.PropertyTypeHouse, Status: domain.PropertyStatusForSale,
			Bedrooms: 3, Bathrooms: 2, Area: 185.0, YearBuilt: 2008,
			Features:  features("garage", "garden", "fireplace"),
			OwnerName: "Laura Bennett", OwnerEmail: "laura.bennett@example.com",
			CreatedAt: at(1), UpdatedAt: at(1),
			Images: []domain.PropertyImage{
				{URL: "https://cdn.example.com/properties/prop-001/front.jpg", Alt: "Front view", Primary: true, Position: 0},
				{URL: "https://cdn.example.com/properties/prop-001/yard.jpg", Alt: "Backyard", Position: 1},
			},
		},
		{
			ID: "prop-002", Title: "Downtown Loft Apartment",
			Description: "Two-bedroom loft with floor-to-ceiling windows, steps from the river walk.",
			Street:      "402 Congress Ave", City: "Austin", State: "TX", PostalCode: "78704",
			Latitude: 30.2648, Longitude: -97.7443,
			Price: 8500000, Type: domain.PropertyTypeApartment, Status: domain.PropertyStatusForSale,
			Bedrooms: 2, Bathrooms: 2, Area: 110.0, YearBuilt: 2017,
			Features:  features("elevator", "gym", "concierge"),
			OwnerName: "Marcus Hale", OwnerEmail: "marcus.hale@example.com",
			CreatedAt: at(3), UpdatedAt: at(3),
			Images: []domain.PropertyImage{
				{URL: "https://cdn.example.com/properties/prop-002/living.jpg", Alt: "Living room", Primary: true, Position: 0},
			},
		},
		{
			ID: "prop-003", Title: "Hillside Villa with Pool",
			Description: "Four-bedroom villa overlooking the valley, infinity pool and outdoor kitchen.",
			Street:      "77 Summit Dr", City: "Scottsdale", State: "AZ", PostalCode: "85251",
			Latitude: 33.4942, Longitude: -111.9261,
			Price: 32000000, Type: domain.PropertyTypeVilla, Status: domain.PropertyStatusForSale,
			Bedrooms: 4, Bathrooms: 4, Area: 340.0, YearBuilt: 2015,
			Features:  features("pool", "view", "smart-home"),
			OwnerName: "Dana Whitfield", OwnerEmail: "dana.whitfield@example.com",
			CreatedAt: at(5), UpdatedAt: at(5),
			Images: []domain.PropertyImage{
				{URL: "https://cdn.example.com/properties/prop-003/pool.jpg", Alt: "Pool deck", Primary: true, Position: 0},
				{URL: "https://cdn.example.com/properties/prop-003/kitchen.jpg", Alt: "Kitchen", Position: 1},
				{URL: "https://cdn.example.com/properties/prop-003/valley.jpg", Alt: "Valley view", Position: 2},
			},
		},
		{
			ID: "prop-004", Title: "Cozy Studio near Campus",
			Description: "Compact studio ideal for students, furnished, utilities included.",
			Street:      "210 College St", City: "Tempe", State: "AZ", PostalCode: "85281",
			Latitude: 33.4255, Longitude: -111.9400,
			Price: 120000, Type: domain.PropertyTypeStudio, Status: domain.PropertyStatusForRent,
			Bedrooms: 0, Bathrooms: 1, Area: 32.0, YearBuilt: 1998,
			Features:  features("furnished", "laundry"),
			OwnerName: "Priya Raman", OwnerEmail: "priya.raman@example.com",
			CreatedAt: at(7), UpdatedAt: at(7),
			Images: []domain.PropertyImage{
				{URL: "https://cdn.example.com/properties/prop-004/room.jpg", Alt: "Studio interior", Primary: true, Position: 0},
			},
		},
		{
			ID: "prop-005", Title: "Riverside Penthouse",
			Description: "Top-floor penthouse with a wraparound terrace and private elevator access.",
			Street:      "1 Harbor Pl", City: "Portland", State: "OR", PostalCode: "97201",
			Latitude: 45.5051, Longitude: -122.6750,
			Price: 45000000, Type: domain.PropertyTypePenthouse, Status: domain.PropertyStatusForSale,
			Bedrooms: 3, Bathrooms: 3, Area: 260.0, YearBuilt: 2021,
			Features:  features("terrace", "elevator", "view", "parking"),
			OwnerName: "Tom Okafor", OwnerEmail: "tom.okafor@example.com",
			CreatedAt: at(9), UpdatedAt: at(9),
			Images: []domain.PropertyImage{
				{URL: "https://cdn.example.com/properties/prop-005/terrace.jpg", Alt: "Terrace", Primary: true, Position: 0},
			},
		},
		{
			ID: "prop-006", Title: "Suburban Duplex with Rental Unit",
			Description: "Owner-occupied duplex, second unit currently rented, separate entrances.",
			Street:      "54 Maple Ln", City: "Portland", State: "OR", PostalCode: "97211",
			Latitude: 45.5590, Longitude: -122.6460,
			Price: 21000000, Type: domain.PropertyTypeDuplex, Status: domain.PropertyStatusForSale,
			Bedrooms: 5, Bathrooms: 3, Area: 290.0, YearBuilt: 2003,
			Features:  features("garage", "basement"),
			OwnerName: "Ellen Marsh", OwnerEmail: "ellen.marsh@example.com",
			CreatedAt: at(11), UpdatedAt: at(11),
			Images: []domain.PropertyImage{
				{URL: "https://cdn.example.com/properties/prop-006/front.jpg", Alt: "Street view", Primary: true, Position: 0},
			},
		},
		{
			ID: "prop-007", Title: "Corner Plot in Cedar Heights",
			Description: "Half-acre corner plot zoned residential, all utilities at the street.",
			Street:      "Lot 12, Cedar Heights", City: "Boise", State: "ID", PostalCode: "83702",
			Latitude: 43.6150, Longitude: -116.2023,
			Price: 6500000, Type: domain.PropertyTypePlot, Status: domain.PropertyStatusForSale,
			Bedrooms: 0, Bathrooms: 0, Area: 2020.0, YearBuilt: 0,
			Features:  features("corner-lot", "utilities"),
			OwnerName: "Cedar Heights LLC", OwnerEmail: "sales@cedarheights.example.com",
			CreatedAt: at(13), UpdatedAt: at(13),
		},
		{
			ID: "prop-008", Title: "Modern Townhouse, Gated Community",
			Description: "Three-storey townhouse with rooftop deck inside a gated community.",
			Street:      "9 Garden Mews", City: "Boise", State: "ID", PostalCode: "83706",
			Latitude: 43.5900, Longitude: -116.1940,
			Price: 18500000, Type: domain.PropertyTypeTownhouse, Status: domain.PropertyStatusForSale,
			Bedrooms: 3, Bathrooms: 3, Area: 175.0, YearBuilt: 2019,
			Features:  features("gated", "rooftop", "parking"),
			OwnerName: "Hector Alvarez", OwnerEmail: "hector.alvarez@example.com",
			CreatedAt: at(15), UpdatedAt: at(15),
			Images: []domain.PropertyImage{
				{URL: "https://cdn.example.com/properties/prop-008/exterior.jpg", Alt: "Exterior", Primary: true, Position: 0},
			},
		},
		{
			ID: "prop-009", Title: "Retail Space on Main Street",
			Description: "Ground-floor commercial unit with large display windows and storage room.",
			Street:      "300 Main St", City: "Austin", State: "TX", PostalCode: "78702",
			Latitude: 30.2640, Longitude: -97.7200,
			Price: 900000, Type: domain.PropertyTypeCommercial, Status: domain.PropertyStatusForRent,
			Bedrooms: 0, Bathrooms: 1, Area: 95.0, YearBuilt: 1985,
			Features:  features("storefront", "storage"),
			OwnerName: "Main Street Holdings", OwnerEmail: "lease@mainstreet.example.com",
			CreatedAt: at(17), UpdatedAt: at(17),
		},
		{
			ID: "prop-010", Title: "Lakefront Cottage (Sold)",
			Description: "Two-bedroom cottage with a private dock, sold in February.",
			Street:      "8 Lakeshore Rd", City: "Coeur d'Alene", State: "ID", PostalCode: "83814",
			Latitude: 47.6777, Longitude: -116.7805,
			Price: 27500000, Type: domain.PropertyTypeHouse, Status: domain.PropertyStatusSold,
			Bedrooms: 2, Bathrooms: 1, Area: 95.0, YearBuilt: 1972,
			Features:  features("waterfront", "dock"),
			OwnerName: "June Parker", OwnerEmail: "june.parker@example.com",
			CreatedAt: at(19), UpdatedAt: at(19),
			Images: []domain.PropertyImage{
				{URL: "https://cdn.example.com/properties/prop-010/lake.jpg", Alt: "Lake view", Primary: true, Position: 0},
			},
		},
	}

	return db.Create(&properties).Error
}

func seedAdmin(db *gorm.DB) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme-admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := domain.User{
		ID:       uuid.New().String(),
		Email:    "admin@realty.local",
		Name:     "Administrator",
		Password: string(hash),
		Level:    domain.AdminLevel,
	}
	return db.Create(&admin).Error
}
