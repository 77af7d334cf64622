package repository

import (
	"time"

	listingdomain "legox-backend/internal/listing/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormListingRepository implements ListingRepository using GORM
type gormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GORM-based ListingRepository
func NewGormListingRepository(db *gorm.DB) ListingRepository {
	return &gormListingRepository{db: db}
}

func (r *gormListingRepository) Create(listing *listingdomain.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = time.Now()
	return r.db.Create(listing).Error
}

func (r *gormListingRepository) FindByUser(user string) ([]*listingdomain.Listing, error) {
	var listings []*listingdomain.Listing
	err := r.db.Where("owner = ?", user).Order("created_at DESC").Find(&listings).Error
	return listings, err
}

func (r *gormListingRepository) FindByKey(key string) ([]*listingdomain.Listing, error) {
	var listings []*listingdomain.Listing
	err := r.db.Where("key = ?", key).Order("created_at DESC").Find(&listings).Error
	return listings, err
}

func (r *gormListingRepository) DeleteByUserAndKey(user, key string) error {
	return r.db.Where("owner = ? AND key = ?", user, key).Delete(&listingdomain.Listing{}).Error
}

func (r *gormListingRepository) ScanAll() ([]*listingdomain.Listing, error) {
	var listings []*listingdomain.Listing
	err := r.db.Order("created_at").Find(&listings).Error
	return listings, err
}
