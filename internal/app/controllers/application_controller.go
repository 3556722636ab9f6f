package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/placementhub/internal/app/auth"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/services"
	"github.com/yigit/placementhub/internal/middleware"
	"github.com/yigit/placementhub/internal/pkg/helpers"
)

// ApplicationController handles the application lifecycle endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
	authzService       *appauth.AuthorizationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(
	applicationService *services.ApplicationService,
	authzService *appauth.AuthorizationService,
	logger zerolog.Logger,
) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		authzService:       authzService,
		logger:             logger,
	}
}

// Create submits an application for the calling student
// @Summary Apply for an internship
// @Description Creates the application at mentor_pending with an 'applied' history entry and mails a confirmation
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateApplicationRequest true "Target internship"
// @Success 201 {object} dto.APIResponse{data=models.Application}
// @Failure 404 {object} dto.ErrorResponse "Internship or profile not found"
// @Failure 409 {object} dto.ErrorResponse "No seats available or already applied"
// @Router /applications [post]
func (c *ApplicationController) Create(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.Apply(ctx.Request.Context(), userID, req.InternshipID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userId", userID).Int64("internshipId", req.InternshipID).Msg("Application failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: application, Timestamp: time.Now()})
}

// ListMine returns the calling student's applications
// @Summary My applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application}
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Router /applications/me [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	applications, err := c.applicationService.ListMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: applications, Timestamp: time.Now()})
}

// List returns applications matching the filters. Mentors get mentor_pending
// by default so their review queue is the landing view.
// @Summary List applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param internshipId query int false "Filter by internship"
// @Param department query string false "Filter by student department"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Application}
// @Router /applications [get]
func (c *ApplicationController) List(ctx *gin.Context) {
	filter := dto.ApplicationListFilter{
		Status:     models.ApplicationStatus(ctx.Query("status")),
		Department: ctx.Query("department"),
	}
	if raw := ctx.Query("internshipId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internshipId parameter")
			errorDetail = errorDetail.WithField("internshipId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.InternshipID = id
	}
	if filter.Status != "" && !models.ValidApplicationStatus(filter.Status) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidStatus, "Unknown application status")
		errorDetail = errorDetail.WithField("status")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if role, ok := middleware.Role(ctx); ok && role == models.RoleMentor && filter.Status == "" {
		filter.Status = models.StatusMentorPending
	}

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	applications, total, err := c.applicationService.List(ctx.Request.Context(), filter, int(offset), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       applications,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetByID returns one application with its status history
// @Summary Get an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Application}
// @Failure 403 {object} dto.ErrorResponse "Not your application"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetByID(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	application, err := c.applicationService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	allowed, err := c.authzService.CanAccessApplication(ctx.Request.Context(), userID, application)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !allowed {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "You cannot view this application")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: application, Timestamp: time.Now()})
}

// MentorAction records a mentor's approve or reject decision
// @Summary Review an application as mentor
// @Description Moves a mentor_pending application to mentor_approved or mentor_rejected
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.MentorActionRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.Application}
// @Failure 400 {object} dto.ErrorResponse "Unknown action"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application is not mentor_pending"
// @Router /applications/{id}/mentor-action [put]
func (c *ApplicationController) MentorAction(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	var req dto.MentorActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.MentorReview(ctx.Request.Context(), id, userID, req.Action, req.Comments)
	if err != nil {
		c.logger.Warn().Err(err).Int64("applicationId", id).Msg("Mentor review failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: application, Timestamp: time.Now()})
}

// UpdateStatus moves an application through the placement pipeline
// @Summary Update application status
// @Description Scheduling an interview requires interviewDate and interviewLink; selecting a candidate takes one seat
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateStatusRequest true "New status and details"
// @Success 200 {object} dto.APIResponse{data=models.Application}
// @Failure 400 {object} dto.ErrorResponse "Unknown status or missing interview details"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id}/status [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx.Request.Context(), id, userID, req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("applicationId", id).Str("status", string(req.Status)).Msg("Status update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: application, Timestamp: time.Now()})
}

// Delete removes an application permanently
// @Summary Delete an application
// @Description Hard delete; seats already taken are not restored
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [delete]
func (c *ApplicationController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	if err := c.applicationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Application deleted"},
		Timestamp: time.Now(),
	})
}
