package controllers

import (
	"log"
	"net/http"
	"os"

	"ecotrack-be/models"
	authUtils "ecotrack-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthController issues and clears session identities. Identity is advisory:
// register and login accept any name plus a self-declared role and mint a
// fresh id, matching the demo's credential-free login contract.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

func (ctl *AuthController) createSession(c *gin.Context, created bool) {
	var input struct {
		Name string `json:"name" binding:"required,max=50"`
		Role string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.UserRole(input.Role)
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	user := models.User{
		ID:   uuid.NewString(),
		Name: input.Name,
		Role: role,
	}

	token, err := authUtils.GenerateAndSetToken(user)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600 * 72,
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"id":   user.ID,
		"name": user.Name,
		"role": user.Role,
	})
}

// RegisterUser creates a new session identity.
func (ctl *AuthController) RegisterUser(c *gin.Context) {
	ctl.createSession(c, true)
}

// LoginUser starts a session. Same contract as register; the app keeps no
// user records, so there is nothing to look up.
func (ctl *AuthController) LoginUser(c *gin.Context) {
	ctl.createSession(c, false)
}

// GetMe returns the identity carried by the current session token.
func (ctl *AuthController) GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	name, _ := c.Get("user_name")
	role, _ := c.Get("user_role")

	c.JSON(http.StatusOK, gin.H{
		"id":   userID,
		"name": name,
		"role": role,
	})
}

// LogoutUser clears the auth_token cookie, destroying the session identity.
func (ctl *AuthController) LogoutUser(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
