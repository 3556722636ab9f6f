package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/filestorage"
	"github.com/yigit/placementhub/internal/pkg/scoring"
	"github.com/yigit/placementhub/internal/pkg/validation"
)

// resume upload limits
const (
	maxResumeSize   = 5 << 20 // 5 MB
	resumeSubFolder = "resumes"
)

// StudentService handles student profile operations. Every profile change
// recomputes the employability score and the profile completion flag.
type StudentService struct {
	studentRepo *repositories.StudentRepository
	storage     filestorage.FileStorage
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, storage filestorage.FileStorage, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		storage:     storage,
		logger:      logger,
	}
}

// GetProfile retrieves the student profile owned by the given user account
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*models.Student, error) {
	return s.studentRepo.GetByUserID(ctx, userID)
}

// GetByID retrieves a student profile by its ID
func (s *StudentService) GetByID(ctx context.Context, studentID int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, studentID)
}

// UpdateProfile applies the provided fields to the caller's profile,
// recomputes the employability score and saves the result
func (s *StudentService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if !validation.NewStringValidation(*req.FullName).
			WithMinLength(validation.NameMinLength).
			WithMaxLength(validation.NameMaxLength).
			Validate() {
			return nil, apperrors.NewValidationError("full name length is out of bounds")
		}
		student.FullName = *req.FullName
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Semester != nil {
		if !validation.NumericRange(*req.Semester, validation.SemesterMin, validation.SemesterMax) {
			return nil, apperrors.NewValidationError("semester must be between 1 and 8")
		}
		student.Semester = *req.Semester
	}
	if req.CGPA != nil {
		if *req.CGPA < 0 || *req.CGPA > 10 {
			return nil, apperrors.NewValidationError("cgpa must be between 0 and 10")
		}
		student.CGPA = *req.CGPA
	}
	if req.CoverLetter != nil {
		student.CoverLetter = *req.CoverLetter
	}
	if req.Skills != nil {
		student.Skills = req.Skills
	}
	if req.Certifications != nil {
		student.Certifications = req.Certifications
	}
	if req.Preferences != nil {
		student.Preferences = *req.Preferences
	}

	student.EmployabilityScore = scoring.EmployabilityScore(student)
	student.ProfileCompleted = student.IsProfileComplete()

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// UploadResume stores the resume file, points the profile at it and
// recomputes the employability score with the resume bonus in effect
func (s *StudentService) UploadResume(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.ResumeUploadResponse, error) {
	if fileHeader.Size > maxResumeSize {
		return nil, apperrors.NewValidationError("resume exceeds the 5 MB size limit")
	}
	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".pdf" {
		return nil, apperrors.NewValidationError("resume must be a PDF file")
	}

	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resumeURL, err := s.storage.SaveUpload(fileHeader, resumeSubFolder)
	if err != nil {
		return nil, fmt.Errorf("error storing resume: %w", err)
	}

	student.ResumeURL = &resumeURL
	student.EmployabilityScore = scoring.EmployabilityScore(student)
	student.ProfileCompleted = student.IsProfileComplete()

	if err := s.studentRepo.UpdateResume(ctx, student.ID, resumeURL, student.EmployabilityScore, student.ProfileCompleted); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Int("score", student.EmployabilityScore).Msg("Resume uploaded")

	return &dto.ResumeUploadResponse{
		ResumeURL:          resumeURL,
		EmployabilityScore: student.EmployabilityScore,
		ProfileCompleted:   student.ProfileCompleted,
	}, nil
}
