package delivery

import (
	"net/http"

	"legox-backend/internal/catalog/usecase"
	"legox-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles theme and icon HTTP requests
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

// GetThemes returns the full theme catalog
// GET /api/themes
func (h *CatalogHandler) GetThemes(c *gin.Context) {
	themes, err := h.catalogUsecase.ListThemes()
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"themes": themes})
}

// GetIcons returns the avatar icons users can pick as their logo
// GET /api/icons
func (h *CatalogHandler) GetIcons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"icons": avatarIcons})
}

var avatarIcons = []string{
	"character.png",
	"emoticon.png",
	"emoticon_1.png",
	"emoticon_2.png",
	"emoticon_3.png",
	"face.png",
	"face_1.png",
	"face_10.png",
	"face_11.png",
	"face_12.png",
	"face_2.png",
	"face_3.png",
	"face_4.png",
	"face_5.png",
	"face_6.png",
	"face_7.png",
	"face_8.png",
	"face_9.png",
	"glasses.png",
	"glasses_2.png",
	"happy.png",
	"happy_1.png",
	"happy_2.png",
	"interface.png",
	"man.png",
	"man_1.png",
	"open.png",
	"people.png",
	"people_1.png",
	"people_2.png",
	"smiley.png",
	"ufo.png",
}
