package services

import (
	"context"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/repositories"
)

// FeedbackService records supervisor evaluations of internship performance
type FeedbackService struct {
	feedbackRepo    *repositories.FeedbackRepository
	applicationRepo *repositories.ApplicationRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo *repositories.FeedbackRepository, applicationRepo *repositories.ApplicationRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo:    feedbackRepo,
		applicationRepo: applicationRepo,
	}
}

// Submit records feedback for an application. One feedback per application;
// a second submission conflicts.
func (s *FeedbackService) Submit(ctx context.Context, supervisorID int64, req dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	application, err := s.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		ApplicationID:         application.ID,
		StudentID:             application.StudentID,
		InternshipID:          application.InternshipID,
		SupervisorID:          supervisorID,
		Attendance:            req.Attendance,
		TechnicalSkills:       req.TechnicalSkills,
		Communication:         req.Communication,
		Teamwork:              req.Teamwork,
		ProblemSolving:        req.ProblemSolving,
		OverallRating:         req.OverallRating,
		Comments:              req.Comments,
		SkillsAcquired:        req.SkillsAcquired,
		RecommendForPlacement: req.RecommendForPlacement,
	}
	if feedback.SkillsAcquired == nil {
		feedback.SkillsAcquired = []string{}
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

// GetByApplication retrieves the feedback submitted for an application
func (s *FeedbackService) GetByApplication(ctx context.Context, applicationID int64) (*models.Feedback, error) {
	return s.feedbackRepo.GetByApplicationID(ctx, applicationID)
}
