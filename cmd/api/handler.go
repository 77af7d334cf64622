package api

import (
	authUsecase "legox-backend/internal/auth/usecase"
	catalogUsecase "legox-backend/internal/catalog/usecase"
	listingUsecase "legox-backend/internal/listing/usecase"
	statsUsecase "legox-backend/internal/stats/usecase"
	"legox-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	catalogUsecase catalogUsecase.CatalogUsecase
	listingUsecase listingUsecase.ListingUsecase
	salesUsecase   statsUsecase.SalesUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, catalogUc catalogUsecase.CatalogUsecase, listingUc listingUsecase.ListingUsecase, salesUc statsUsecase.SalesUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		catalogUsecase: catalogUc,
		listingUsecase: listingUc,
		salesUsecase:   salesUc,
		config:         cfg,
	}
}

// Start builds the gin engine and blocks serving HTTP.
func (h *Handler) Start(addr string) error {
	r := gin.Default()
	r.Use(CORSMiddleware(h.config.CORSOrigin))

	SetupRoutes(r, h.authUsecase, h.catalogUsecase, h.listingUsecase, h.salesUsecase)

	return r.Run(addr)
}
