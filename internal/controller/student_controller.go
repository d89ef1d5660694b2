package controller

import (
	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService     *service.StudentService
	ProgressionService *service.ProgressionService
}

func NewStudentController(studentService *service.StudentService, progressionService *service.ProgressionService) *StudentController {
	return &StudentController{StudentService: studentService, ProgressionService: progressionService}
}

// Enroll godoc
// @Summary Enroll a postgraduate student
// @Description Creates the student's account and a progress record at the Start stage of their program.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.EnrollStudentRequest true "student details"
// @Success 201 {object} util.Response{data=model.StudentRecord}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/v1/students [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	var req service.EnrollStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.StudentService.Enroll(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if record.User != nil {
		record.User.Password = ""
	}
	util.Created(ctx, record)
}

// List godoc
// @Summary List student records
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Param sessionId query int false "filter by session"
// @Param program query string false "msc or phd"
// @Param stage query string false "filter by current stage"
// @Param name query string false "name or matric number search"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/v1/students [get]
func (c *StudentController) List(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	students, total, err := c.StudentService.List(page, limit,
		util.MustParseUint(ctx.Query("sessionId")),
		ctx.Query("program"), ctx.Query("stage"), ctx.Query("name"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: students, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Fetch one student record
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Success 200 {object} util.Response{data=model.StudentRecord}
// @Failure 404 {object} util.Response
// @Router /api/v1/students/{id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	record, err := c.StudentService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// Progress godoc
// @Summary A student's full stage history
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Success 200 {object} util.Response{data=service.ProgressView}
// @Failure 404 {object} util.Response
// @Router /api/v1/students/{id}/progress [get]
func (c *StudentController) Progress(ctx *gin.Context) {
	view, err := c.ProgressionService.Progress(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// MyProgress godoc
// @Summary The calling student's own stage history
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ProgressView}
// @Failure 404 {object} util.Response
// @Router /api/v1/students/me/progress [get]
func (c *StudentController) MyProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	if claims.Role != model.Student {
		util.Forbidden(ctx, "")
		return
	}

	record, err := c.StudentService.GetByUserID(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	view, err := c.ProgressionService.Progress(record.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Update godoc
// @Summary Update a student's department or thesis title
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Param body body service.UpdateStudentRequest true "fields"
// @Success 200 {object} util.Response{data=model.StudentRecord}
// @Router /api/v1/students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	var req service.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.StudentService.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// Delete godoc
// @Summary Delete a student record (admin)
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Success 200 {object} util.Response
// @Router /api/v1/students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	if err := c.StudentService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
