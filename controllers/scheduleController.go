package controllers

import (
	"errors"
	"net/http"

	"ecotrack-be/models"
	"ecotrack-be/store"

	"github.com/gin-gonic/gin"
)

// ScheduleController exposes the pickup-schedule lifecycle over HTTP. Role
// checks run in the route-level access guard; handlers only read the actor
// identity from the request context.
type ScheduleController struct {
	Schedules *store.ScheduleStore
}

func NewScheduleController(schedules *store.ScheduleStore) *ScheduleController {
	return &ScheduleController{Schedules: schedules}
}

// ListSchedules returns every schedule in insertion order.
func (ctl *ScheduleController) ListSchedules(c *gin.Context) {
	schedules := ctl.Schedules.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// CreateSchedule handles the admin add operation.
func (ctl *ScheduleController) CreateSchedule(c *gin.Context) {
	var input struct {
		Area      string `json:"area" binding:"required,max=100"`
		Address   string `json:"address" binding:"required,max=200"`
		Date      string `json:"date" binding:"required"`
		Time      string `json:"time" binding:"required"`
		WasteType string `json:"wasteType" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wasteType := models.WasteType(input.WasteType)
	if !wasteType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid waste type"})
		return
	}

	schedule, err := ctl.Schedules.Add(c.Request.Context(), input.Area, input.Address, input.Date, input.Time, wasteType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// UpdateScheduleStatus marks a pickup collected or missed, recording the
// acting collector or admin.
func (ctl *ScheduleController) UpdateScheduleStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.PickupStatus(input.Status)
	if !status.Terminal() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be collected or missed"})
		return
	}

	schedule, err := ctl.Schedules.SetStatus(c.Request.Context(), c.Param("id"), status, userID.(string))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, schedule)
}
