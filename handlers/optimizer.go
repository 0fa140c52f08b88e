package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barberbook/services/optimizer"
	"barberbook/utils"
)

// OptimizerHandler exposes the queue optimizer to admins.
type OptimizerHandler struct {
	Optimizer optimizer.OptimizerService
	Loc       *time.Location
}

func NewOptimizerHandler(svc optimizer.OptimizerService, loc *time.Location) *OptimizerHandler {
	return &OptimizerHandler{Optimizer: svc, Loc: loc}
}

type optimizeDayRequest struct {
	Date        string   `json:"date" binding:"required"` // YYYY-MM-DD
	Preferences []string `json:"preferences"`
}

// OptimizeDayHandler handles POST /admin/optimize (admin). The
// proposal is advisory: nothing is rescheduled until the admin applies
// it through the normal appointment endpoints.
func (h *OptimizerHandler) OptimizeDayHandler(c *gin.Context) {
	var req optimizeDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, h.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	proposal, err := h.Optimizer.OptimizeDay(c.Request.Context(), date, req.Preferences)
	if err != nil {
		if errors.Is(err, optimizer.ErrOptimizeFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "optimizer did not produce a usable proposal"})
			return
		}
		utils.GetLogger().Error("optimizer run failed", zap.String("date", req.Date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "optimizer run failed"})
		return
	}
	c.JSON(http.StatusOK, proposal)
}
