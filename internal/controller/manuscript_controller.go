package controller

import (
	"fmt"
	"net/http"

	"thesistrack_backend/internal/model"
	"thesistrack_backend/internal/service"
	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ManuscriptController struct {
	ManuscriptService *service.ManuscriptService
	StudentService    *service.StudentService
}

func NewManuscriptController(manuscriptService *service.ManuscriptService, studentService *service.StudentService) *ManuscriptController {
	return &ManuscriptController{ManuscriptService: manuscriptService, StudentService: studentService}
}

// Upload godoc
// @Summary Upload a manuscript for a student's current stage
// @Description Students may only upload to their own record; staff upload on a student's behalf. Each upload gets the next revision number.
// @Tags manuscripts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Param file formData file true "manuscript file (.pdf, .doc, .docx)"
// @Success 201 {object} util.Response{data=model.Manuscript}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/v1/students/{id}/manuscripts [post]
func (c *ManuscriptController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID := util.MustParseUint(ctx.Param("id"))
	if claims.Role == model.Student {
		record, err := c.StudentService.GetByUserID(claims.UserID)
		if err != nil || record.ID != studentID {
			util.Forbidden(ctx, "students may only upload to their own record")
			return
		}
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	manuscript, err := c.ManuscriptService.Upload(ctx.Request.Context(),
		studentID, claims.UserID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, manuscript)
}

// List godoc
// @Summary List a student's manuscript revisions
// @Tags manuscripts
// @Produce json
// @Security BearerAuth
// @Param id path int true "student record ID"
// @Param stage query string false "filter by stage"
// @Success 200 {object} util.Response{data=[]model.Manuscript}
// @Router /api/v1/students/{id}/manuscripts [get]
func (c *ManuscriptController) List(ctx *gin.Context) {
	manuscripts, err := c.ManuscriptService.ListForStudent(util.MustParseUint(ctx.Param("id")), ctx.Query("stage"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, manuscripts)
}

// Download godoc
// @Summary Download one manuscript revision
// @Tags manuscripts
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "manuscript ID"
// @Success 200 {file} binary
// @Failure 404 {object} util.Response
// @Router /api/v1/manuscripts/{id} [get]
func (c *ManuscriptController) Download(ctx *gin.Context) {
	manuscript, reader, err := c.ManuscriptService.Open(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	defer reader.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", manuscript.FileName))
	ctx.DataFromReader(http.StatusOK, manuscript.Size, manuscript.ContentType, reader, nil)
}
