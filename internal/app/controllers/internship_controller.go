package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/services"
	"github.com/yigit/placementhub/internal/middleware"
	"github.com/yigit/placementhub/internal/pkg/helpers"
)

// InternshipController handles internship posting operations
type InternshipController struct {
	internshipService     *services.InternshipService
	recommendationService *services.RecommendationService
	logger                zerolog.Logger
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(
	internshipService *services.InternshipService,
	recommendationService *services.RecommendationService,
	logger zerolog.Logger,
) *InternshipController {
	return &InternshipController{
		internshipService:     internshipService,
		recommendationService: recommendationService,
		logger:                logger,
	}
}

// Create publishes a new internship posting
// @Summary Post an internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInternshipRequest true "Internship details"
// @Success 201 {object} dto.APIResponse{data=models.Internship}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Role not allowed"
// @Router /internships [post]
func (c *InternshipController) Create(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Internship creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: internship, Timestamp: time.Now()})
}

// List returns active internships with optional filters
// @Summary List internships
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param department query string false "Filter by eligible department"
// @Param mode query string false "Filter by mode" Enums(online, offline, hybrid)
// @Param search query string false "Search in title, company and description"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Internship}
// @Router /internships [get]
func (c *InternshipController) List(ctx *gin.Context) {
	filter := dto.InternshipListFilter{
		Department: ctx.Query("department"),
		Mode:       ctx.Query("mode"),
		Search:     ctx.Query("search"),
	}

	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	internships, total, err := c.internshipService.List(ctx.Request.Context(), filter, int(offset), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       internships,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// Recommended returns the internships ranked for the calling student
// @Summary Recommended internships for me
// @Description Scores active internships open to the student's department and returns those matching at least 40, best first
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RecommendedInternship}
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Router /internships/recommended [get]
func (c *InternshipController) Recommended(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	recommended, err := c.recommendationService.RecommendForUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: recommended, Timestamp: time.Now()})
}

// GetByID returns one internship
// @Summary Get an internship
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=models.Internship}
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id} [get]
func (c *InternshipController) GetByID(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	internship, err := c.internshipService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: internship, Timestamp: time.Now()})
}

// Update applies partial updates to a posting
// @Summary Update an internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Param request body dto.UpdateInternshipRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Internship}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id} [put]
func (c *InternshipController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	internship, err := c.internshipService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: internship, Timestamp: time.Now()})
}

// Delete soft-deletes a posting
// @Summary Delete an internship
// @Description Marks the posting inactive; existing applications keep running
// @Tags internships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id} [delete]
func (c *InternshipController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	if err := c.internshipService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Internship deleted"},
		Timestamp: time.Now(),
	})
}

// pathID parses a positive int64 path parameter, writing the error response
// itself on failure
func pathID(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		if err == nil {
			err = strconv.ErrSyntax
		}
		return 0, err
	}
	return id, nil
}
