package usecase

import (
	"errors"
	"log"

	catalogdomain "legox-backend/internal/catalog/domain"
	catalogusecase "legox-backend/internal/catalog/usecase"
	listingdomain "legox-backend/internal/listing/domain"
	listingrepo "legox-backend/internal/listing/repository"
	statsdto "legox-backend/internal/stats/dto"
	"legox-backend/pkg/apperrors"
)

// salesUsecase implements SalesUsecase interface
type salesUsecase struct {
	catalogUsecase catalogusecase.CatalogUsecase
	listingRepo    listingrepo.ListingRepository
}

// NewSalesUsecase creates a new instance of salesUsecase
func NewSalesUsecase(catalogUsecase catalogusecase.CatalogUsecase, listingRepo listingrepo.ListingRepository) SalesUsecase {
	return &salesUsecase{
		catalogUsecase: catalogUsecase,
		listingRepo:    listingRepo,
	}
}

func (u *salesUsecase) SalesOverview() ([]*statsdto.SetStat, error) {
	listings, err := u.listingRepo.ScanAll()
	if err != nil {
		return nil, err
	}

	// Per-pass lookup cache: one catalog round-trip per distinct set key,
	// including keys known to be missing. Discarded when the pass ends.
	stats := make(map[string]*statsdto.SetStat)
	missing := make(map[string]bool)
	var order []string

	for _, listing := range listings {
		stat, ok := stats[listing.Key]
		if !ok {
			if missing[listing.Key] {
				continue
			}
			set, err := u.catalogUsecase.GetSet(listing.Key)
			if err != nil {
				if isNotFound(err) {
					// A listing for a vanished set must not abort the
					// whole pass; skip it and keep going.
					log.Printf("sales: skipping listing %s, set %s missing from catalog", listing.ID, listing.Key)
					missing[listing.Key] = true
					continue
				}
				return nil, err
			}
			stat, err = u.newStat(set)
			if err != nil {
				return nil, err
			}
			stats[listing.Key] = stat
			order = append(order, listing.Key)
		}
		stat.Observe(listing.Price)
	}

	result := make([]*statsdto.SetStat, 0, len(order))
	for _, key := range order {
		result = append(result, stats[key])
	}
	return result, nil
}

func (u *salesUsecase) SetsWithSales(year, theme int) ([]*statsdto.SetStat, error) {
	listings, err := u.listingRepo.ScanAll()
	if err != nil {
		return nil, err
	}

	var sets []*catalogdomain.Set
	if year == 0 && theme <= 0 {
		// No filter: fall back to the sets referenced by current listings
		sets, err = u.listedSets(listings)
	} else {
		sets, err = u.catalogUsecase.Search(year, theme)
	}
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*statsdto.SetStat, len(sets))
	result := make([]*statsdto.SetStat, 0, len(sets))
	for _, set := range sets {
		stat, err := u.newStat(set)
		if err != nil {
			return nil, err
		}
		stats[set.Key] = stat
		result = append(result, stat)
	}

	// Only listings for the searched sets contribute; the rest are
	// silently ignored. A set without listings keeps sales=0 and no min.
	for _, listing := range listings {
		if stat, ok := stats[listing.Key]; ok {
			stat.Observe(listing.Price)
		}
	}
	return result, nil
}

func (u *salesUsecase) SetWithSales(key string) (*statsdto.SetStat, error) {
	set, err := u.catalogUsecase.GetSet(key)
	if err != nil {
		return nil, err
	}

	stat, err := u.newStat(set)
	if err != nil {
		return nil, err
	}

	listings, err := u.listingRepo.FindByKey(key)
	if err != nil {
		return nil, err
	}
	for _, listing := range listings {
		stat.Observe(listing.Price)
	}
	return stat, nil
}

// listedSets resolves the distinct set keys referenced by the listing scan,
// in first-encounter order. Keys missing from the catalog are skipped.
func (u *salesUsecase) listedSets(listings []*listingdomain.Listing) ([]*catalogdomain.Set, error) {
	seen := make(map[string]bool)
	var sets []*catalogdomain.Set
	for _, listing := range listings {
		if seen[listing.Key] {
			continue
		}
		seen[listing.Key] = true
		set, err := u.catalogUsecase.GetSet(listing.Key)
		if err != nil {
			if isNotFound(err) {
				log.Printf("sales: skipping listing %s, set %s missing from catalog", listing.ID, listing.Key)
				continue
			}
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// newStat builds an empty aggregate for the set with its theme name
// resolved once. A dangling theme reference degrades to an empty name.
func (u *salesUsecase) newStat(set *catalogdomain.Set) (*statsdto.SetStat, error) {
	name, err := u.catalogUsecase.ThemeName(set.Theme)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		log.Printf("sales: set %s references unknown theme %d", set.Key, set.Theme)
		name = ""
	}
	return &statsdto.SetStat{Set: *set, ThemeName: name}, nil
}

func isNotFound(err error) bool {
	var appErr *apperrors.Error
	return errors.As(err, &appErr) && appErr.Code == apperrors.CodeNotFound
}
