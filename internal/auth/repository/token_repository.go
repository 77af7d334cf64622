package repository

import (
	"errors"
	"time"

	authdomain "legox-backend/internal/auth/domain"

	"gorm.io/gorm"
)

// tokenRepository implements TokenRepository interface
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new instance of tokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Save adds a new token for the user without deleting existing ones.
// This allows multi-device sessions - each login keeps its own token.
// Only cleans up expired tokens to prevent DB bloat.
func (r *tokenRepository) Save(token *authdomain.AuthToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Only delete EXPIRED tokens for this user (cleanup, not invalidation)
		if err := tx.Where("email = ? AND expires < ?", token.Email, time.Now().Unix()).
			Delete(&authdomain.AuthToken{}).Error; err != nil {
			return err
		}
		// Insert the new token (existing valid tokens remain)
		return tx.Create(token).Error
	})
}

func (r *tokenRepository) FindByCode(code string) (*authdomain.AuthToken, error) {
	var token authdomain.AuthToken
	err := r.db.Where("code = ?", code).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}
