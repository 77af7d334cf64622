package dto

import (
	catalogdomain "legox-backend/internal/catalog/domain"
)

// SetStat is a derived, non-persisted aggregate: one catalog set joined
// with its active listings. Min is nil when the set has no listings; a nil
// Min means "no listings", never a price of zero, and the field is omitted
// from JSON.
type SetStat struct {
	catalogdomain.Set
	Sales     int    `json:"sales"`
	Min       *int   `json:"min,omitempty"`
	ThemeName string `json:"theme_name"`
}

// Observe folds one listing price into the aggregate.
func (s *SetStat) Observe(price int) {
	s.Sales++
	if s.Min == nil || price < *s.Min {
		p := price
		s.Min = &p
	}
}
