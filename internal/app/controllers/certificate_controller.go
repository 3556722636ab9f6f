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

// CertificateController handles certificate issuance and verification
type CertificateController struct {
	certificateService *services.CertificateService
	logger             zerolog.Logger
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService *services.CertificateService, logger zerolog.Logger) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
		logger:             logger,
	}
}

// Issue renders and stores the certificate for a completed application
// @Summary Issue a completion certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 201 {object} dto.APIResponse{data=models.Certificate}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Not completed or already issued"
// @Router /applications/{id}/certificate [post]
func (c *CertificateController) Issue(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		return
	}

	certificate, err := c.certificateService.Issue(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Warn().Err(err).Int64("applicationId", id).Msg("Certificate issuance failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: certificate, Timestamp: time.Now()})
}

// ListMine returns the calling student's certificates
// @Summary My certificates
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Certificate}
// @Router /certificates/me [get]
func (c *CertificateController) ListMine(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	certificates, err := c.certificateService.ListMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: certificates, Timestamp: time.Now()})
}

// Verify looks up a certificate by its verification code. Public: employers
// check authenticity without an account.
// @Summary Verify a certificate
// @Tags certificates
// @Produce json
// @Param code path string true "Verification code"
// @Success 200 {object} dto.APIResponse{data=models.Certificate}
// @Failure 404 {object} dto.ErrorResponse "Certificate not found"
// @Router /certificates/verify/{code} [get]
func (c *CertificateController) Verify(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Verification code is required")
		errorDetail = errorDetail.WithField("code")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	certificate, err := c.certificateService.Verify(ctx.Request.Context(), code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: certificate, Timestamp: time.Now()})
}
