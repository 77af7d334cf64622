package delivery

import (
	"net/http"

	authdelivery "legox-backend/internal/auth/delivery"
	"legox-backend/internal/listing/usecase"
	"legox-backend/pkg/apperrors"
	"legox-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles the authenticated "mysets" HTTP requests
type ListingHandler struct {
	listingUsecase usecase.ListingUsecase
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(listingUsecase usecase.ListingUsecase) *ListingHandler {
	return &ListingHandler{
		listingUsecase: listingUsecase,
	}
}

// CreateListingRequest represents the request body for listing a set
type CreateListingRequest struct {
	Key   string `json:"key" binding:"required"`
	Price int    `json:"price"`
}

// GetMySets returns the caller's own listings
// GET /api/mysets
func (h *ListingHandler) GetMySets(c *gin.Context) {
	email := c.GetString(authdelivery.ContextEmailKey)

	items, err := h.listingUsecase.ForUser(email)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateMySet lists a set for sale and returns the caller's listings
// POST /api/mysets
func (h *ListingHandler) CreateMySet(c *gin.Context) {
	email := c.GetString(authdelivery.ContextEmailKey)

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, apperrors.BadRequest("invalid request body"))
		return
	}

	if _, err := h.listingUsecase.Create(email, req.Key, req.Price); err != nil {
		httputil.Error(c, err)
		return
	}

	items, err := h.listingUsecase.ForUser(email)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": items})
}

// DeleteMySet removes the caller's listings for a set and returns the rest
// DELETE /api/mysets/:key
func (h *ListingHandler) DeleteMySet(c *gin.Context) {
	email := c.GetString(authdelivery.ContextEmailKey)
	key := c.Param("key")

	if err := h.listingUsecase.Delete(email, key); err != nil {
		httputil.Error(c, err)
		return
	}

	items, err := h.listingUsecase.ForUser(email)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
