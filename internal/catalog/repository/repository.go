package repository

import (
	catalogdomain "legox-backend/internal/catalog/domain"
)

// SetRepository defines read-only lookups over the set catalog
type SetRepository interface {
	// FindByKey returns (nil, nil) when the set does not exist
	FindByKey(key string) (*catalogdomain.Set, error)
	SearchByYear(year, limit int) ([]*catalogdomain.Set, error)
	SearchByTheme(theme, limit int) ([]*catalogdomain.Set, error)
	SearchByYearAndTheme(year, theme, limit int) ([]*catalogdomain.Set, error)
}

// ThemeRepository defines read-only lookups over the theme catalog
type ThemeRepository interface {
	// FindByKey returns (nil, nil) when the theme does not exist
	FindByKey(key int) (*catalogdomain.Theme, error)
	ListAll() ([]*catalogdomain.Theme, error)
}
