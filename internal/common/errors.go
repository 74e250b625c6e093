package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Property errors
	ErrPropertyNotFound = errors.New("property not found")

	// Favorite errors
	ErrAlreadyFavorited = errors.New("already in favorites")
	ErrFavoriteUpdate   = errors.New("favorite update failed")

	// Inquiry errors
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrInvalidInquiryStatus = errors.New("invalid inquiry status")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
