package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

// InternshipService handles internship posting operations
type InternshipService struct {
	internshipRepo *repositories.InternshipRepository
	logger         zerolog.Logger
}

// NewInternshipService creates a new internship service instance
func NewInternshipService(internshipRepo *repositories.InternshipRepository, logger zerolog.Logger) *InternshipService {
	return &InternshipService{
		internshipRepo: internshipRepo,
		logger:         logger,
	}
}

// Create publishes a new internship. Seat accounting starts full: every
// posting opens with seatsRemaining equal to totalSeats.
func (s *InternshipService) Create(ctx context.Context, postedBy int64, req dto.CreateInternshipRequest) (*models.Internship, error) {
	if !models.ValidInternshipMode(req.Mode) {
		return nil, apperrors.NewValidationError("unknown internship mode")
	}
	if req.StipendMax < req.StipendMin {
		return nil, apperrors.NewValidationError("stipend range is inverted")
	}

	internship := &models.Internship{
		Title:                          req.Title,
		Company:                        req.Company,
		Description:                    req.Description,
		RequiredSkills:                 req.RequiredSkills,
		EligibleDepartments:            req.EligibleDepartments,
		DurationMonths:                 req.DurationMonths,
		StipendMin:                     req.StipendMin,
		StipendMax:                     req.StipendMax,
		Location:                       req.Location,
		Mode:                           req.Mode,
		PlacementConversionProbability: req.PlacementConversionProbability,
		TotalSeats:                     req.TotalSeats,
		SeatsRemaining:                 req.TotalSeats,
		StartDate:                      req.StartDate,
		ApplicationDeadline:            req.ApplicationDeadline,
		PostedBy:                       postedBy,
		IsActive:                       true,
	}
	if internship.RequiredSkills == nil {
		internship.RequiredSkills = []string{}
	}
	if internship.EligibleDepartments == nil {
		internship.EligibleDepartments = []string{}
	}

	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("internshipId", internship.ID).Str("title", internship.Title).Msg("Internship posted")
	return internship, nil
}

// GetByID retrieves one internship. Soft-deleted postings stay retrievable by
// ID so existing applications keep their context.
func (s *InternshipService) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	return s.internshipRepo.GetByID(ctx, id)
}

// List retrieves active internships matching the filter, newest first
func (s *InternshipService) List(ctx context.Context, filter dto.InternshipListFilter, offset, limit int) ([]*models.Internship, int64, error) {
	return s.internshipRepo.GetAll(ctx, filter, offset, limit)
}

// Update applies the provided fields to a posting. Seat counters are never
// touched here; selection is the only thing that moves them.
func (s *InternshipService) Update(ctx context.Context, id int64, req dto.UpdateInternshipRequest) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		internship.Title = *req.Title
	}
	if req.Company != nil {
		internship.Company = *req.Company
	}
	if req.Description != nil {
		internship.Description = *req.Description
	}
	if req.RequiredSkills != nil {
		internship.RequiredSkills = req.RequiredSkills
	}
	if req.EligibleDepartments != nil {
		internship.EligibleDepartments = req.EligibleDepartments
	}
	if req.DurationMonths != nil {
		internship.DurationMonths = *req.DurationMonths
	}
	if req.StipendMin != nil {
		internship.StipendMin = *req.StipendMin
	}
	if req.StipendMax != nil {
		internship.StipendMax = *req.StipendMax
	}
	if req.Location != nil {
		internship.Location = *req.Location
	}
	if req.Mode != nil {
		if !models.ValidInternshipMode(*req.Mode) {
			return nil, apperrors.NewValidationError("unknown internship mode")
		}
		internship.Mode = *req.Mode
	}
	if req.PlacementConversionProbability != nil {
		internship.PlacementConversionProbability = *req.PlacementConversionProbability
	}
	if req.StartDate != nil {
		internship.StartDate = req.StartDate
	}
	if req.ApplicationDeadline != nil {
		internship.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.IsVerified != nil {
		internship.IsVerified = *req.IsVerified
	}
	if internship.StipendMax < internship.StipendMin {
		return nil, apperrors.NewValidationError("stipend range is inverted")
	}

	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, err
	}

	return internship, nil
}

// Delete soft-deletes a posting. Applications already made keep running.
func (s *InternshipService) Delete(ctx context.Context, id int64) error {
	return s.internshipRepo.Deactivate(ctx, id)
}
