package usecase

import (
	catalogdomain "legox-backend/internal/catalog/domain"
	"legox-backend/internal/catalog/repository"
	"legox-backend/pkg/apperrors"
)

// catalogUsecase implements CatalogUsecase interface
type catalogUsecase struct {
	setRepo   repository.SetRepository
	themeRepo repository.ThemeRepository
	limit     int
}

// NewCatalogUsecase creates a new instance of catalogUsecase. limit caps
// every search result.
func NewCatalogUsecase(setRepo repository.SetRepository, themeRepo repository.ThemeRepository, limit int) CatalogUsecase {
	return &catalogUsecase{
		setRepo:   setRepo,
		themeRepo: themeRepo,
		limit:     limit,
	}
}

func (u *catalogUsecase) Search(year, theme int) ([]*catalogdomain.Set, error) {
	switch {
	case year != 0 && theme > 0:
		return u.setRepo.SearchByYearAndTheme(year, theme, u.limit)
	case year != 0:
		return u.setRepo.SearchByYear(year, u.limit)
	case theme > 0:
		return u.setRepo.SearchByTheme(theme, u.limit)
	}
	return nil, nil
}

func (u *catalogUsecase) GetSet(key string) (*catalogdomain.Set, error) {
	set, err := u.setRepo.FindByKey(key)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, apperrors.NotFound("set not found: " + key)
	}
	return set, nil
}

func (u *catalogUsecase) ThemeName(key int) (string, error) {
	if key <= 0 {
		return "", nil
	}
	theme, err := u.themeRepo.FindByKey(key)
	if err != nil {
		return "", err
	}
	if theme == nil {
		return "", apperrors.NotFound("theme not found")
	}
	return theme.Name, nil
}

func (u *catalogUsecase) ListThemes() ([]*catalogdomain.Theme, error) {
	return u.themeRepo.ListAll()
}
