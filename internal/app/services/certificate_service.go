package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/certpdf"
	"github.com/yigit/placementhub/internal/pkg/filestorage"
)

const certificateSubFolder = "certificates"

// CertificateService issues completion certificates. A certificate can only
// be issued once per application and only after the internship is completed.
type CertificateService struct {
	certificateRepo *repositories.CertificateRepository
	applicationRepo *repositories.ApplicationRepository
	studentRepo     *repositories.StudentRepository
	internshipRepo  *repositories.InternshipRepository
	storage         filestorage.FileStorage
	now             Clock
	logger          zerolog.Logger
}

// NewCertificateService creates a new certificate service instance
func NewCertificateService(
	certificateRepo *repositories.CertificateRepository,
	applicationRepo *repositories.ApplicationRepository,
	studentRepo *repositories.StudentRepository,
	internshipRepo *repositories.InternshipRepository,
	storage filestorage.FileStorage,
	now Clock,
	logger zerolog.Logger,
) *CertificateService {
	return &CertificateService{
		certificateRepo: certificateRepo,
		applicationRepo: applicationRepo,
		studentRepo:     studentRepo,
		internshipRepo:  internshipRepo,
		storage:         storage,
		now:             now,
		logger:          logger,
	}
}

// Issue renders and stores the certificate PDF for a completed application
func (s *CertificateService) Issue(ctx context.Context, applicationID int64) (*models.Certificate, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status != models.StatusCompleted {
		return nil, apperrors.ErrApplicationNotCompleted
	}

	if _, err := s.certificateRepo.GetByApplicationID(ctx, applicationID); err == nil {
		return nil, apperrors.ErrCertificateAlreadyIssued
	} else if !errors.Is(err, apperrors.ErrCertificateNotFound) {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, application.StudentID)
	if err != nil {
		return nil, err
	}
	internship, err := s.internshipRepo.GetByID(ctx, application.InternshipID)
	if err != nil {
		return nil, err
	}

	issuedDate := s.now()
	certificate := &models.Certificate{
		StudentID:         student.ID,
		InternshipID:      internship.ID,
		ApplicationID:     application.ID,
		CertificateNumber: certificateNumber(issuedDate),
		VerificationCode:  strings.ReplaceAll(uuid.New().String(), "-", ""),
		IssuedDate:        issuedDate,
	}

	var endDate *time.Time
	if internship.StartDate != nil {
		end := internship.StartDate.AddDate(0, internship.DurationMonths, 0)
		endDate = &end
	}

	content, err := certpdf.Render(certpdf.CertificateData{
		StudentName:       student.FullName,
		InternshipTitle:   internship.Title,
		Company:           internship.Company,
		StartDate:         internship.StartDate,
		EndDate:           endDate,
		CertificateNumber: certificate.CertificateNumber,
		VerificationCode:  certificate.VerificationCode,
		IssuedDate:        issuedDate,
	})
	if err != nil {
		return nil, fmt.Errorf("error rendering certificate: %w", err)
	}

	url, err := s.storage.SaveBytes(content, certificateSubFolder, certificate.CertificateNumber+".pdf")
	if err != nil {
		return nil, fmt.Errorf("error storing certificate: %w", err)
	}
	certificate.CertificateURL = url

	if err := s.certificateRepo.Create(ctx, certificate); err != nil {
		// Keep storage consistent with the database
		if delErr := s.storage.DeleteFile(url); delErr != nil {
			s.logger.Warn().Err(delErr).Str("url", url).Msg("Could not remove orphaned certificate file")
		}
		return nil, err
	}

	s.logger.Info().
		Int64("applicationId", application.ID).
		Str("certificateNumber", certificate.CertificateNumber).
		Msg("Certificate issued")

	return certificate, nil
}

// Verify looks up a certificate by its public verification code
func (s *CertificateService) Verify(ctx context.Context, code string) (*models.Certificate, error) {
	return s.certificateRepo.GetByVerificationCode(ctx, code)
}

// ListMine retrieves the certificates of the student owning the given user
// account
func (s *CertificateService) ListMine(ctx context.Context, userID int64) ([]*models.Certificate, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.certificateRepo.ListByStudent(ctx, student.ID)
}

// certificateNumber builds a human-readable identifier such as
// CERT-2026-03F2A1. The random suffix comes from a UUID so numbers never
// collide within a year.
func certificateNumber(issued time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("CERT-%d-%s", issued.Year(), suffix)
}
