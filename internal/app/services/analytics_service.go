package services

import (
	"context"
	"math"
	"time"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/repositories"
)

const (
	recentApplicationLimit = 10
	topSkillLimit          = 10
)

// AnalyticsService assembles the placement-cell dashboard from repository
// aggregates
type AnalyticsService struct {
	studentRepo     *repositories.StudentRepository
	internshipRepo  *repositories.InternshipRepository
	applicationRepo *repositories.ApplicationRepository
	now             Clock
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(
	studentRepo *repositories.StudentRepository,
	internshipRepo *repositories.InternshipRepository,
	applicationRepo *repositories.ApplicationRepository,
	now Clock,
) *AnalyticsService {
	return &AnalyticsService{
		studentRepo:     studentRepo,
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		now:             now,
	}
}

// Dashboard gathers the headline numbers, per-status and per-department
// breakdowns, seat totals, skill demand and the latest applications
func (s *AnalyticsService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalInternships, err := s.internshipRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalApplications, err := s.applicationRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	placed, err := s.applicationRepo.CountPlaced(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.applicationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	seats, err := s.internshipRepo.SeatTotals(ctx)
	if err != nil {
		return nil, err
	}
	departmentStats, err := s.applicationRepo.DepartmentPlacementStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.applicationRepo.Recent(ctx, recentApplicationLimit)
	if err != nil {
		return nil, err
	}
	topSkills, err := s.internshipRepo.TopRequiredSkills(ctx, topSkillLimit)
	if err != nil {
		return nil, err
	}

	var placementRate float64
	if totalStudents > 0 {
		placementRate = math.Round(float64(placed)/float64(totalStudents)*10000) / 100
	}

	recentValues := make([]models.Application, len(recent))
	for i, application := range recent {
		recentValues[i] = *application
	}

	return &dto.DashboardResponse{
		Overview: dto.DashboardOverview{
			TotalStudents:     totalStudents,
			TotalInternships:  totalInternships,
			TotalApplications: totalApplications,
			StudentsPlaced:    placed,
			PlacementRate:     placementRate,
		},
		ApplicationsByStatus: byStatus,
		Unfilled:             seats,
		DepartmentStats:      departmentStats,
		RecentApplications:   recentValues,
		TopSkills:            topSkills,
	}, nil
}

// WeeklyInterviewSchedule returns interview-stage applications whose
// interview falls in the seven days starting now, ordered by interview time
func (s *AnalyticsService) WeeklyInterviewSchedule(ctx context.Context) ([]*models.Application, error) {
	from := s.now()
	to := from.Add(7 * 24 * time.Hour)
	return s.applicationRepo.InterviewsBetween(ctx, from, to)
}
