package repository

import (
	listingdomain "legox-backend/internal/listing/domain"
)

// ListingRepository defines listing persistence operations
type ListingRepository interface {
	Create(listing *listingdomain.Listing) error
	FindByUser(user string) ([]*listingdomain.Listing, error)
	FindByKey(key string) ([]*listingdomain.Listing, error)
	// DeleteByUserAndKey removes every listing the owner has for the set key
	DeleteByUserAndKey(user, key string) error
	// ScanAll feeds the sales aggregation pass
	ScanAll() ([]*listingdomain.Listing, error)
}
