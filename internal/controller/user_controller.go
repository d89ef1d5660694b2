package controller

import (
	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.UpdateProfileRequest true "profile fields"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/v1/users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	user.Password = ""
	util.Success(ctx, user)
}

// List godoc
// @Summary List accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Param role query string false "filter by role"
// @Param name query string false "name or email search"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/v1/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	users, total, err := c.UserService.ListUsers(page, limit, model.UserRole(ctx.Query("role")), ctx.Query("name"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// Lecturers godoc
// @Summary List lecturer accounts eligible for panels
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "filter by staff role"
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/v1/users/lecturers [get]
func (c *UserController) Lecturers(ctx *gin.Context) {
	users, err := c.UserService.ListLecturers(model.UserRole(ctx.Query("role")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	util.Success(ctx, users)
}

// Get godoc
// @Summary Fetch one account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/v1/users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	user, err := c.UserService.GetUser(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	user.Password = ""
	util.Success(ctx, user)
}

// AdminUpdate godoc
// @Summary Update an account (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user ID"
// @Param body body service.AdminUpdateUserRequest true "fields"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/v1/users/{id} [put]
func (c *UserController) AdminUpdate(ctx *gin.Context) {
	var req service.AdminUpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.AdminUpdateUser(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	user.Password = ""
	util.Success(ctx, user)
}

// swagger:model SetDisabledRequest
type SetDisabledRequest struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

// SetDisabled godoc
// @Summary Enable or disable an account (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user ID"
// @Param body body SetDisabledRequest true "flag"
// @Success 200 {object} util.Response
// @Router /api/v1/users/{id}/disabled [put]
func (c *UserController) SetDisabled(ctx *gin.Context) {
	var req SetDisabledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetDisabled(util.MustParseUint(ctx.Param("id")), *req.Disabled); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ResetPassword godoc
// @Summary Reset an account's password (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user ID"
// @Param body body ResetPasswordRequest true "new password"
// @Success 200 {object} util.Response
// @Router /api/v1/users/{id}/password [put]
func (c *UserController) ResetPassword(ctx *gin.Context) {
	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.ResetPassword(util.MustParseUint(ctx.Param("id")), req.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary Delete an account (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user ID"
// @Success 200 {object} util.Response
// @Router /api/v1/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.UserService.DeleteUser(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
