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

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	id, user_id, student_number, full_name, department, semester, cgpa, phone,
	cover_letter, skills, certifications, preferences, resume_url,
	employability_score, profile_completed, last_updated`

// Create inserts a new student profile and sets the generated ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			user_id, student_number, full_name, department, semester, cgpa, phone,
			cover_letter, skills, certifications, preferences, resume_url,
			employability_score, profile_completed, last_updated
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING id, last_updated
	`

	err := r.db.QueryRow(ctx, query,
		student.UserID,
		student.StudentNumber,
		student.FullName,
		student.Department,
		student.Semester,
		student.CGPA,
		student.Phone,
		student.CoverLetter,
		student.Skills,
		student.Certifications,
		student.Preferences,
		student.ResumeURL,
		student.EmployabilityScore,
		student.ProfileCompleted,
	).Scan(&student.ID, &student.LastUpdated)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentNumberAlreadyExists
		}
		return fmt.Errorf("error creating student profile: %w", err)
	}

	return nil
}

// GetByID retrieves a student profile by its ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByUserID retrieves the student profile owned by the given user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

// Update persists the mutable profile fields, including the recomputed
// employability score and profile completion flag
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET full_name = $2,
			department = $3,
			semester = $4,
			cgpa = $5,
			phone = $6,
			cover_letter = $7,
			skills = $8,
			certifications = $9,
			preferences = $10,
			employability_score = $11,
			profile_completed = $12,
			last_updated = NOW()
		WHERE id = $1
		RETURNING last_updated
	`

	err := r.db.QueryRow(ctx, query,
		student.ID,
		student.FullName,
		student.Department,
		student.Semester,
		student.CGPA,
		student.Phone,
		student.CoverLetter,
		student.Skills,
		student.Certifications,
		student.Preferences,
		student.EmployabilityScore,
		student.ProfileCompleted,
	).Scan(&student.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error updating student profile: %w", err)
	}

	return nil
}

// UpdateResume stores the resume URL and the score recomputed from it
func (r *StudentRepository) UpdateResume(ctx context.Context, studentID int64, resumeURL string, employabilityScore int, profileCompleted bool) error {
	query := `
		UPDATE students
		SET resume_url = $2,
			employability_score = $3,
			profile_completed = $4,
			last_updated = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, studentID, resumeURL, employabilityScore, profileCompleted)
	if err != nil {
		return fmt.Errorf("error updating resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Count returns the total number of student profiles
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

func (r *StudentRepository) scanOne(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.StudentNumber,
		&student.FullName,
		&student.Department,
		&student.Semester,
		&student.CGPA,
		&student.Phone,
		&student.CoverLetter,
		&student.Skills,
		&student.Certifications,
		&student.Preferences,
		&student.ResumeURL,
		&student.EmployabilityScore,
		&student.ProfileCompleted,
		&student.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &student, nil
}
