package domain

import "time"

// Favorite represents an authenticated user's favorited property
// Table: favorites
type Favorite struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"column:user_id;size:64;uniqueIndex:idx_user_property" json:"user_id"`
	PropertyID string    `gorm:"column:property_id;size:64;uniqueIndex:idx_user_property" json:"property_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for Favorite model
func (Favorite) TableName() string {
	return "favorites"
}

// FavoriteSetResponse is the favorites API envelope
type FavoriteSetResponse struct {
	Identity    string   `json:"identity"`
	Favorites   []string `json:"favorites"`
	Count       int      `json:"count"`
	IsAnonymous bool     `json:"isAnonymous"`
}

// NewFavoriteSetResponse builds the envelope for an identity's current set
func NewFavoriteSetResponse(id Identity, favorites []string) *FavoriteSetResponse {
	if favorites == nil {
		favorites = []string{}
	}
	return &FavoriteSetResponse{
		Identity:    id.ID,
		Favorites:   favorites,
		Count:       len(favorites),
		IsAnonymous: id.IsAnonymous(),
	}
}
