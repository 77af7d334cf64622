package repository

import (
	"errors"

	catalogdomain "legox-backend/internal/catalog/domain"

	"gorm.io/gorm"
)

// setRepository implements SetRepository using GORM
type setRepository struct {
	db *gorm.DB
}

// NewSetRepository creates a new GORM-based SetRepository
func NewSetRepository(db *gorm.DB) SetRepository {
	return &setRepository{db: db}
}

func (r *setRepository) FindByKey(key string) (*catalogdomain.Set, error) {
	var set catalogdomain.Set
	err := r.db.Where("key = ?", key).First(&set).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

func (r *setRepository) SearchByYear(year, limit int) ([]*catalogdomain.Set, error) {
	var sets []*catalogdomain.Set
	err := r.db.Where("year = ?", year).Order("key").Limit(limit).Find(&sets).Error
	return sets, err
}

func (r *setRepository) SearchByTheme(theme, limit int) ([]*catalogdomain.Set, error) {
	var sets []*catalogdomain.Set
	err := r.db.Where("theme = ?", theme).Order("key").Limit(limit).Find(&sets).Error
	return sets, err
}

func (r *setRepository) SearchByYearAndTheme(year, theme, limit int) ([]*catalogdomain.Set, error) {
	var sets []*catalogdomain.Set
	err := r.db.Where("year = ? AND theme = ?", year, theme).Order("key").Limit(limit).Find(&sets).Error
	return sets, err
}
