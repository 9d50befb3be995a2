package controllers

import (
	"errors"
	"net/http"

	"ecotrack-be/access"
	"ecotrack-be/middlewares"
	"ecotrack-be/models"
	"ecotrack-be/store"

	"github.com/gin-gonic/gin"
)

// IssueController exposes the issue lifecycle over HTTP.
type IssueController struct {
	Issues *store.IssueStore
}

func NewIssueController(issues *store.IssueStore) *IssueController {
	return &IssueController{Issues: issues}
}

// CreateIssue handles the resident report operation; reportedBy is always
// the caller's own id.
func (ctl *IssueController) CreateIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title       string `json:"title" binding:"required,max=200"`
		Description string `json:"description" binding:"required,max=1000"`
		Area        string `json:"area" binding:"required,max=100"`
		Address     string `json:"address" binding:"required,max=200"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issue, err := ctl.Issues.Add(c.Request.Context(), input.Title, input.Description, input.Area, input.Address, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// ListIssues returns issues scoped by role: admins see everything, residents
// only their own reports. Collectors never reach this handler; the route
// guard denies them.
func (ctl *IssueController) ListIssues(c *gin.Context) {
	var issues []models.Issue

	switch access.IssueScope(middlewares.CurrentRole(c)) {
	case access.ScopeAll:
		issues = ctl.Issues.List(c.Request.Context())
	case access.ScopeOwn:
		userID, _ := c.Get("user_id")
		issues = ctl.Issues.ListForReporter(c.Request.Context(), userID.(string))
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": issues})
}

// UpdateIssueStatus handles the admin resolve operation. Moving to resolved
// stamps the resolver; other statuses leave prior resolver fields untouched.
func (ctl *IssueController) UpdateIssueStatus(c *gin.Context) {
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

	status := models.IssueStatus(input.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	issue, err := ctl.Issues.SetStatus(c.Request.Context(), c.Param("id"), status, userID.(string))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		}
		return
	}

	c.JSON(http.StatusOK, issue)
}
