package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/dberrors"
)

// FeedbackRepository handles database operations for supervisor feedback
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

const feedbackColumns = `
	id, application_id, student_id, internship_id, supervisor_id, attendance,
	technical_skills, communication, teamwork, problem_solving, overall_rating,
	comments, skills_acquired, recommend_for_placement, submitted_at`

// Create inserts a feedback record. One feedback per application is enforced
// by the database.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (
			application_id, student_id, internship_id, supervisor_id, attendance,
			technical_skills, communication, teamwork, problem_solving,
			overall_rating, comments, skills_acquired, recommend_for_placement,
			submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING id, submitted_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.ApplicationID,
		feedback.StudentID,
		feedback.InternshipID,
		feedback.SupervisorID,
		feedback.Attendance,
		feedback.TechnicalSkills,
		feedback.Communication,
		feedback.Teamwork,
		feedback.ProblemSolving,
		feedback.OverallRating,
		feedback.Comments,
		feedback.SkillsAcquired,
		feedback.RecommendForPlacement,
	).Scan(&feedback.ID, &feedback.SubmittedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrFeedbackAlreadyExists
		}
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// GetByApplicationID retrieves the feedback submitted for an application
func (r *FeedbackRepository) GetByApplicationID(ctx context.Context, applicationID int64) (*models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE application_id = $1`

	var feedback models.Feedback
	err := r.db.QueryRow(ctx, query, applicationID).Scan(
		&feedback.ID,
		&feedback.ApplicationID,
		&feedback.StudentID,
		&feedback.InternshipID,
		&feedback.SupervisorID,
		&feedback.Attendance,
		&feedback.TechnicalSkills,
		&feedback.Communication,
		&feedback.Teamwork,
		&feedback.ProblemSolving,
		&feedback.OverallRating,
		&feedback.Comments,
		&feedback.SkillsAcquired,
		&feedback.RecommendForPlacement,
		&feedback.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}

	return &feedback, nil
}
