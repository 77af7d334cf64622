package usecase

import (
	listingdomain "legox-backend/internal/listing/domain"
	"legox-backend/internal/listing/repository"
	"legox-backend/pkg/apperrors"
)

// listingUsecase implements ListingUsecase interface
type listingUsecase struct {
	listingRepo repository.ListingRepository
}

// NewListingUsecase creates a new instance of listingUsecase
func NewListingUsecase(listingRepo repository.ListingRepository) ListingUsecase {
	return &listingUsecase{
		listingRepo: listingRepo,
	}
}

func (u *listingUsecase) Create(user, key string, price int) (*listingdomain.Listing, error) {
	if key == "" {
		return nil, apperrors.InvalidUsage("set key is required")
	}
	if price < 0 {
		return nil, apperrors.InvalidUsage("price must not be negative")
	}

	listing := &listingdomain.Listing{
		User:  user,
		Key:   key,
		Price: price,
	}
	if err := u.listingRepo.Create(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (u *listingUsecase) ForUser(user string) ([]*listingdomain.Listing, error) {
	return u.listingRepo.FindByUser(user)
}

func (u *listingUsecase) Delete(user, key string) error {
	if key == "" {
		return apperrors.InvalidUsage("set key is required")
	}
	return u.listingRepo.DeleteByUserAndKey(user, key)
}
