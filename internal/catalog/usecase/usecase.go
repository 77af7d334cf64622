package usecase

import (
	catalogdomain "legox-backend/internal/catalog/domain"
)

// CatalogUsecase exposes read-only catalog lookups.
type CatalogUsecase interface {
	// Search precedence: both filters -> combined query; one filter ->
	// single-index query; neither -> (nil, nil), the caller falls back to
	// sets referenced by current listings.
	Search(year, theme int) ([]*catalogdomain.Set, error)
	GetSet(key string) (*catalogdomain.Set, error)
	// ThemeName returns "" for the "no theme" sentinel (key <= 0)
	ThemeName(key int) (string, error)
	ListThemes() ([]*catalogdomain.Theme, error)
}
