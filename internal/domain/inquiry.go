package domain

import "time"

// InquiryStatus back-office processing state of an inquiry
type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusInProgress InquiryStatus = "in-progress"
	InquiryStatusClosed     InquiryStatus = "closed"
)

// ValidInquiryStatus reports whether s is a known inquiry status
func ValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusInProgress, InquiryStatusClosed:
		return true
	}
	return false
}

// Inquiry represents a visitor's question about a listing
// Table: inquiries
type Inquiry struct {
	ID         string        `gorm:"column:id;primaryKey;size:64" json:"id"`
	PropertyID string        `gorm:"column:property_id;size:64;index" json:"property_id"`
	Name       string        `gorm:"column:name" json:"name"`
	Email      string        `gorm:"column:email" json:"email"`
	Phone      string        `gorm:"column:phone" json:"phone,omitempty"`
	Message    string        `gorm:"column:message;type:text" json:"message"`
	Status     InquiryStatus `gorm:"column:status;size:16;index;default:new" json:"status"`
	CreatedAt  time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Inquiry model
func (Inquiry) TableName() string {
	return "inquiries"
}

// CreateInquiryRequest public inquiry submission payload
type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// UpdateInquiryStatusRequest admin status transition payload
type UpdateInquiryStatusRequest struct {
	Status InquiryStatus `json:"status" binding:"required"`
}

// InquiryCreatedEvent is published to the broker when a new inquiry arrives
type InquiryCreatedEvent struct {
	InquiryID  string    `json:"inquiry_id"`
	PropertyID string    `json:"property_id"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}
