package usecase

import (
	"testing"

	listingdomain "legox-backend/internal/listing/domain"
	"legox-backend/internal/listing/repository"
	"legox-backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestListings(t *testing.T) ListingUsecase {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&listingdomain.Listing{}))
	return NewListingUsecase(repository.NewGormListingRepository(db))
}

func TestCreate(t *testing.T) {
	uc := newTestListings(t)

	listing, err := uc.Create("alice@example.com", "75192-1", 650)
	require.NoError(t, err)
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "alice@example.com", listing.User)
	assert.Equal(t, 650, listing.Price)
}

func TestCreate_Validation(t *testing.T) {
	uc := newTestListings(t)

	_, err := uc.Create("alice@example.com", "", 100)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidUsage, apperrors.Translate(err).Code)

	_, err = uc.Create("alice@example.com", "75192-1", -1)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidUsage, apperrors.Translate(err).Code)
}

func TestCreate_DuplicatesAccepted(t *testing.T) {
	uc := newTestListings(t)

	first, err := uc.Create("alice@example.com", "75192-1", 650)
	require.NoError(t, err)
	second, err := uc.Create("alice@example.com", "75192-1", 600)
	require.NoError(t, err)

	// Same user, same set key: both listings kept, distinct rows
	assert.NotEqual(t, first.ID, second.ID)

	items, err := uc.ForUser("alice@example.com")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDelete_RemovesOnlyOwnersPair(t *testing.T) {
	uc := newTestListings(t)

	_, err := uc.Create("alice@example.com", "75192-1", 650)
	require.NoError(t, err)
	_, err = uc.Create("alice@example.com", "75192-1", 600)
	require.NoError(t, err)
	_, err = uc.Create("alice@example.com", "10242-1", 90)
	require.NoError(t, err)
	_, err = uc.Create("bob@example.com", "75192-1", 700)
	require.NoError(t, err)

	require.NoError(t, uc.Delete("alice@example.com", "75192-1"))

	// Alice keeps her other listing
	aliceItems, err := uc.ForUser("alice@example.com")
	require.NoError(t, err)
	require.Len(t, aliceItems, 1)
	assert.Equal(t, "10242-1", aliceItems[0].Key)

	// Bob's listing for the same set is untouched
	bobItems, err := uc.ForUser("bob@example.com")
	require.NoError(t, err)
	require.Len(t, bobItems, 1)
	assert.Equal(t, "75192-1", bobItems[0].Key)
}

func TestForUser_Empty(t *testing.T) {
	uc := newTestListings(t)

	items, err := uc.ForUser("nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}
