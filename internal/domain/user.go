package domain

import "time"

// Admin accounts have level >= AdminLevel
const AdminLevel = 10

// User represents a registered account
// Table: users
type User struct {
	ID        string    `gorm:"column:id;primaryKey;size:64" json:"id"`
	Email     string    `gorm:"column:email;uniqueIndex;size:191" json:"email"`
	Name      string    `gorm:"column:name" json:"name"`
	Password  string    `gorm:"column:password" json:"-"`
	Level     int       `gorm:"column:level;default:1" json:"level"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user can access the back-office
func (u *User) IsAdmin() bool {
	return u.Level >= AdminLevel
}

// RegisterRequest signup payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse login/register response
type AuthResponse struct {
	User            *User  `json:"user"`
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	FavoritesMerged bool   `json:"favoritesMerged,omitempty"`
}
