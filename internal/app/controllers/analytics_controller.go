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

// AnalyticsController serves the placement-cell dashboards
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
	logger           zerolog.Logger
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService, logger zerolog.Logger) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// Dashboard returns the placement overview
// @Summary Placement dashboard
// @Description Headline totals, applications by status, placement rate, unfilled seats, department stats, skill demand and recent applications
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Router /analytics/dashboard [get]
func (c *AnalyticsController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.analyticsService.Dashboard(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Dashboard assembly failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dashboard, Timestamp: time.Now()})
}

// WeeklyInterviews returns the coming week's interview schedule
// @Summary Weekly interview schedule
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application}
// @Router /analytics/interviews [get]
func (c *AnalyticsController) WeeklyInterviews(ctx *gin.Context) {
	interviews, err := c.analyticsService.WeeklyInterviewSchedule(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: interviews, Timestamp: time.Now()})
}
