package delivery

import (
	"net/http"
	"strconv"

	"legox-backend/internal/stats/usecase"
	"legox-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles the aggregated sales HTTP requests
type StatsHandler struct {
	salesUsecase usecase.SalesUsecase
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(salesUsecase usecase.SalesUsecase) *StatsHandler {
	return &StatsHandler{
		salesUsecase: salesUsecase,
	}
}

// GetSets returns searched sets with their sale statistics. Year 0 and a
// missing theme both mean "no filter".
// GET /api/sets/:year
// GET /api/sets/:year/:theme
func (h *StatsHandler) GetSets(c *gin.Context) {
	year, _ := strconv.Atoi(c.Param("year"))
	theme, _ := strconv.Atoi(c.Param("theme"))

	sets, err := h.salesUsecase.SetsWithSales(year, theme)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sets": sets})
}

// GetSet returns one set with its sale statistics
// GET /api/set/:key
func (h *StatsHandler) GetSet(c *gin.Context) {
	stat, err := h.salesUsecase.SetWithSales(c.Param("key"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"set": stat})
}

// GetSales returns the full sales overview across every listed set
// GET /api/sales
func (h *StatsHandler) GetSales(c *gin.Context) {
	items, err := h.salesUsecase.SalesOverview()
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
