package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/umid/rosterhub/internal/app/models/dto"
	"github.com/umid/rosterhub/internal/app/services"
	"github.com/umid/rosterhub/internal/middleware"
)

// RosterController handles student and admin management endpoints
type RosterController struct {
	rosterService services.RosterService
	logger        zerolog.Logger
}

// NewRosterController creates a new RosterController
func NewRosterController(rosterService services.RosterService, logger zerolog.Logger) *RosterController {
	return &RosterController{
		rosterService: rosterService,
		logger:        logger,
	}
}

// callerUsername reads the token subject placed in the context by the
// auth middleware.
func callerUsername(ctx *gin.Context) string {
	return ctx.GetString(middleware.ContextUsernameKey)
}

// GetStudents lists the students visible to the caller's role scope
func (c *RosterController) GetStudents(ctx *gin.Context) {
	students, err := c.rosterService.ListStudents(ctx.Request.Context(), callerUsername(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{Students: students})
}

// AddStudent enrolls a new student (admin and superadmin only)
func (c *RosterController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid add student request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.rosterService.AddStudent(ctx.Request.Context(), callerUsername(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteStudent removes a student record by path id
func (c *RosterController) DeleteStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.rosterService.DeleteStudent(ctx.Request.Context(), callerUsername(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted"})
}

// AddAdmin creates an admin account (superadmin only)
func (c *RosterController) AddAdmin(ctx *gin.Context) {
	var req dto.AddAdminRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid add admin request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	message, err := c.rosterService.AddAdmin(ctx.Request.Context(), callerUsername(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: message})
}

// GetTeachers lists the teachers of a branch (admin and superadmin)
func (c *RosterController) GetTeachers(ctx *gin.Context) {
	teachers, err := c.rosterService.ListTeachers(ctx.Request.Context(), callerUsername(ctx), ctx.Query("branch"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherListResponse{Teachers: teachers})
}
