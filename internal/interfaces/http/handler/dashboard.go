package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/application/placement"
)

// DashboardHandler handles dashboard summary and admin statistics requests
type DashboardHandler struct {
	BaseHandler
	dashboardService *placement.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *placement.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSummary returns the cached dashboard summary, rebuilding it on a cache miss
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// InitializeStats recomputes system-wide placement statistics from the raw
// collections and refreshes the summary cache
func (h *DashboardHandler) InitializeStats(c *gin.Context) {
	stats, err := h.dashboardService.InitializeStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"message": "Statistics initialized successfully",
		"stats":   stats,
	})
}
