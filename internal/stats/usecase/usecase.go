package usecase

import (
	statsdto "legox-backend/internal/stats/dto"
)

// SalesUsecase builds the sales read model: catalog sets joined with the
// current listing scan. Nothing here is persisted; scans are eventually
// consistent with writes, which is acceptable for this domain.
type SalesUsecase interface {
	// SalesOverview aggregates every listed set
	SalesOverview() ([]*statsdto.SetStat, error)
	// SetsWithSales searches the catalog (year and/or theme; with neither
	// filter it falls back to the sets referenced by current listings) and
	// scopes the aggregation to the searched sets
	SetsWithSales(year, theme int) ([]*statsdto.SetStat, error)
	// SetWithSales aggregates a single set's listings
	SetWithSales(key string) (*statsdto.SetStat, error)
}
