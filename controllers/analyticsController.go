package controllers

import (
	"net/http"

	"ecotrack-be/store"

	"github.com/gin-gonic/gin"
)

// AnalyticsController serves the admin dashboard aggregates: collection
// stats by status, waste type and area, plus the issue resolved/pending
// split. Everything is derived on demand; nothing here is cached or stored.
type AnalyticsController struct {
	Schedules *store.ScheduleStore
	Issues    *store.IssueStore
}

func NewAnalyticsController(schedules *store.ScheduleStore, issues *store.IssueStore) *AnalyticsController {
	return &AnalyticsController{Schedules: schedules, Issues: issues}
}

// GetCollectionStats returns the aggregate over schedules and issues.
func (ctl *AnalyticsController) GetCollectionStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats := ctl.Schedules.Stats(ctx)

	c.JSON(http.StatusOK, gin.H{
		"collections":   stats.Collections,
		"wasteTypeData": stats.WasteTypeData,
		"areaData":      stats.AreaData,
		"issues":        ctl.Issues.Totals(ctx),
	})
}
