package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/services"
	"github.com/yigit/placementhub/internal/middleware"
)

// FeedbackController handles supervisor feedback endpoints
type FeedbackController struct {
	feedbackService *services.FeedbackService
	logger          zerolog.Logger
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService, logger zerolog.Logger) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// Submit records supervisor feedback for an application
// @Summary Submit internship feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitFeedbackRequest true "Evaluation"
// @Success 201 {object} dto.APIResponse{data=models.Feedback}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Feedback already submitted"
// @Router /feedback [post]
func (c *FeedbackController) Submit(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	feedback, err := c.feedbackService.Submit(ctx.Request.Context(), userID, req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("applicationId", req.ApplicationID).Msg("Feedback submission failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: feedback, Timestamp: time.Now()})
}

// GetByApplication returns the feedback for one application
// @Summary Get feedback for an application
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Feedback}
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Router /applications/{id}/feedback [get]
func (c *FeedbackController) GetByApplication(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	feedback, err := c.feedbackService.GetByApplication(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: feedback, Timestamp: time.Now()})
}
