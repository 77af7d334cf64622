package usecase

import (
	listingdomain "legox-backend/internal/listing/domain"
)

// ListingUsecase covers a user's own sale listings.
type ListingUsecase interface {
	// Create accepts duplicate (user, key) listings; re-listing the same
	// set at another price is a supported flow.
	Create(user, key string, price int) (*listingdomain.Listing, error)
	ForUser(user string) ([]*listingdomain.Listing, error)
	// Delete removes every listing the owner has for the key, leaving the
	// owner's other listings and everyone else's untouched
	Delete(user, key string) error
}
