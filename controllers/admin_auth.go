package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Govind-619/OrderLadder/utils"
)

// AdminAuth holds the single configured admin credential.
type AdminAuth struct {
	email        string
	passwordHash string
	jwtSecret    string
}

func NewAdminAuth(email, passwordHash, jwtSecret string) *AdminAuth {
	return &AdminAuth{email: email, passwordHash: passwordHash, jwtSecret: jwtSecret}
}

// AdminLoginRequest represents the admin login request
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /admin/login
func (a *AdminAuth) AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, utils.ReasonMissingField, "Email and password are required")
		return
	}

	if !strings.EqualFold(req.Email, a.email) || !utils.CheckPassword(req.Password, a.passwordHash) {
		utils.LogError("Invalid admin credentials for %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	tokenString, err := utils.GenerateAdminToken(a.email, a.jwtSecret)
	if err != nil {
		utils.LogError("Failed to sign admin token: %v", err)
		utils.InternalServerError(c, "Failed to generate token")
		return
	}
	if err := utils.SetAdminSession(c, a.email); err != nil {
		utils.LogError("Failed to store admin session: %v", err)
	}

	utils.LogInfo("Admin login successful: %s", a.email)
	utils.Success(c, utils.MsgLoginSuccess, gin.H{
		"token":      tokenString,
		"expires_in": int(utils.AdminTokenTTL.Seconds()),
		"admin":      gin.H{"email": a.email},
	})
}

// POST /admin/logout
func (a *AdminAuth) AdminLogout(c *gin.Context) {
	if err := utils.ClearAdminSession(c); err != nil {
		utils.LogError("Failed to clear admin session: %v", err)
	}
	utils.Success(c, utils.MsgLogoutSuccess, nil)
}
