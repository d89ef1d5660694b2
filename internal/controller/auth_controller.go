package controller

import (
	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=supervisor hod pg_coordinator dean provost"`
	Department string `json:"department"`
	StaffTitle string `json:"staffTitle"`
}

// Register godoc
// @Summary Register a staff account
// @Description Creates a lecturer or management account. Student accounts are created through enrollment.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "account details"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/v1/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       model.UserRole(req.Role),
		Department: req.Department,
		StaffTitle: req.StaffTitle,
	}
	if err := c.AuthService.Register(user); err != nil {
		respondError(ctx, err)
		return
	}

	user.Password = ""
	util.Created(ctx, user)
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/v1/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"token": token})
}

// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "passwords"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/v1/auth/password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.ChangePassword(claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Me godoc
// @Summary Current account profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/v1/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	user.Password = ""
	util.Success(ctx, user)
}
