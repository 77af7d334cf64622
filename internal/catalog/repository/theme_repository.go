package repository

import (
	"errors"

	catalogdomain "legox-backend/internal/catalog/domain"

	"gorm.io/gorm"
)

// themeRepository implements ThemeRepository using GORM
type themeRepository struct {
	db *gorm.DB
}

// NewThemeRepository creates a new GORM-based ThemeRepository
func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

func (r *themeRepository) FindByKey(key int) (*catalogdomain.Theme, error) {
	var theme catalogdomain.Theme
	err := r.db.Where("key = ?", key).First(&theme).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &theme, nil
}

func (r *themeRepository) ListAll() ([]*catalogdomain.Theme, error) {
	var themes []*catalogdomain.Theme
	err := r.db.Order("key").Find(&themes).Error
	return themes, err
}
