package repository

import (
	authdomain "legox-backend/internal/auth/domain"
)

// UserRepository defines user persistence operations
type UserRepository interface {
	// Create inserts the user; the email primary key makes the insert its
	// own uniqueness check (gorm.ErrDuplicatedKey on conflict).
	Create(user *authdomain.User) error
	// FindByEmail returns (nil, nil) when the user does not exist
	FindByEmail(email string) (*authdomain.User, error)
	// UpdateAttribute replaces a single named column for the user
	UpdateAttribute(email, attribute, value string) error
}

// TokenRepository defines auth token persistence operations
type TokenRepository interface {
	// Save inserts a token; existing valid tokens for the same user remain
	Save(token *authdomain.AuthToken) error
	// FindByCode returns (nil, nil) when the code is unknown
	FindByCode(code string) (*authdomain.AuthToken, error)
}
