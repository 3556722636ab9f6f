package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/dberrors"
)

// ApplicationRepository handles database operations for applications and
// their status history
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

const applicationColumns = `
	a.id, a.student_id, a.internship_id, a.status, a.mentor_comments,
	a.mentor_action_date, a.interview_date, a.interview_mode, a.interview_link,
	a.applied_at`

// Create inserts a new application together with its seed history entry in a
// single transaction. The database enforces one application per
// (student, internship) pair.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application, seed models.StatusHistoryEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertApp := `
		INSERT INTO applications (student_id, internship_id, status, applied_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = tx.QueryRow(ctx, insertApp,
		application.StudentID,
		application.InternshipID,
		application.Status,
		application.AppliedAt,
	).Scan(&application.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateApplication
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	insertHistory := `
		INSERT INTO application_status_history (application_id, status, recorded_at, updated_by, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	seed.ApplicationID = application.ID
	err = tx.QueryRow(ctx, insertHistory,
		seed.ApplicationID,
		seed.Status,
		seed.Timestamp,
		seed.UpdatedBy,
		seed.Comment,
	).Scan(&seed.ID)
	if err != nil {
		return fmt.Errorf("error seeding status history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing application: %w", err)
	}

	application.StatusHistory = []models.StatusHistoryEntry{seed}
	return nil
}

// GetByID retrieves an application with its full status history
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.id = $1`

	var application models.Application
	err := r.scanRow(r.db.QueryRow(ctx, query, id), &application)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	history, err := r.GetHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	application.StatusHistory = history

	return &application, nil
}

// ListByStudent retrieves a student's applications, newest first, with the
// internship relation populated
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, ` + internshipJoinColumns + `
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	return r.collectWithRelations(rows, false)
}

// List retrieves applications matching the filter with student and internship
// relations populated, newest first
func (r *ApplicationRepository) List(ctx context.Context, filter dto.ApplicationListFilter, offset, limit int) ([]*models.Application, int64, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.InternshipID != 0 {
		conditions = append(conditions, fmt.Sprintf("a.internship_id = $%d", argPos))
		args = append(args, filter.InternshipID)
		argPos++
	}
	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("s.department = $%d", argPos))
		args = append(args, filter.Department)
		argPos++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM applications a
		JOIN students s ON s.id = a.student_id
	` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applications: %w", err)
	}

	query := `
		SELECT ` + applicationColumns + `, ` + internshipJoinColumns + `, ` + studentJoinColumns + `
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		JOIN students s ON s.id = a.student_id
	` + where + fmt.Sprintf(" ORDER BY a.applied_at DESC OFFSET $%d LIMIT $%d", argPos, argPos+1)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	applications, err := r.collectWithRelations(rows, true)
	if err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// UpdateStatus persists the status and the fields that travel with it
// (mentor review outcome, interview details)
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, application *models.Application) error {
	query := `
		UPDATE applications
		SET status = $2,
			mentor_comments = $3,
			mentor_action_date = $4,
			interview_date = $5,
			interview_mode = $6,
			interview_link = $7
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		application.ID,
		application.Status,
		application.MentorComments,
		application.MentorActionDate,
		application.InterviewDate,
		application.InterviewMode,
		application.InterviewLink,
	)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// AppendHistory adds one entry to an application's audit trail. Entries are
// insert-only; nothing in the schema or the code edits or removes them.
func (r *ApplicationRepository) AppendHistory(ctx context.Context, entry *models.StatusHistoryEntry) error {
	query := `
		INSERT INTO application_status_history (application_id, status, recorded_at, updated_by, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		entry.ApplicationID,
		entry.Status,
		entry.Timestamp,
		entry.UpdatedBy,
		entry.Comment,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("error appending status history: %w", err)
	}

	return nil
}

// GetHistory retrieves an application's audit trail in chronological order
func (r *ApplicationRepository) GetHistory(ctx context.Context, applicationID int64) ([]models.StatusHistoryEntry, error) {
	query := `
		SELECT id, application_id, status, recorded_at, updated_by, comment
		FROM application_status_history
		WHERE application_id = $1
		ORDER BY recorded_at, id
	`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving status history: %w", err)
	}
	defer rows.Close()

	var history []models.StatusHistoryEntry
	for rows.Next() {
		var entry models.StatusHistoryEntry
		err := rows.Scan(
			&entry.ID,
			&entry.ApplicationID,
			&entry.Status,
			&entry.Timestamp,
			&entry.UpdatedBy,
			&entry.Comment,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning status history: %w", err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status history: %w", err)
	}

	return history, nil
}

// Delete removes an application permanently. The history rows go with it via
// cascade; seats already taken are not restored.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// Count returns the total number of applications
func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}

	return count, nil
}

// CountByStatus tallies applications per status
func (r *ApplicationRepository) CountByStatus(ctx context.Context) ([]dto.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM applications
		GROUP BY status
		ORDER BY status
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error counting applications by status: %w", err)
	}
	defer rows.Close()

	var counts []dto.StatusCount
	for rows.Next() {
		var sc dto.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("error scanning status count: %w", err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}

	return counts, nil
}

// CountPlaced returns the number of distinct students who reached 'selected'
// or 'completed' on at least one application
func (r *ApplicationRepository) CountPlaced(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT student_id)
		FROM applications
		WHERE status IN ('selected', 'completed')
	`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting placed students: %w", err)
	}

	return count, nil
}

// DepartmentPlacementStats tallies placed students per department
func (r *ApplicationRepository) DepartmentPlacementStats(ctx context.Context) ([]dto.DepartmentCount, error) {
	query := `
		SELECT s.department, COUNT(DISTINCT a.student_id)
		FROM applications a
		JOIN students s ON s.id = a.student_id
		WHERE a.status IN ('selected', 'completed')
		GROUP BY s.department
		ORDER BY s.department
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error aggregating department stats: %w", err)
	}
	defer rows.Close()

	var stats []dto.DepartmentCount
	for rows.Next() {
		var dc dto.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, fmt.Errorf("error scanning department stats: %w", err)
		}
		stats = append(stats, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department stats: %w", err)
	}

	return stats, nil
}

// Recent retrieves the most recently submitted applications with relations
func (r *ApplicationRepository) Recent(ctx context.Context, limit int) ([]*models.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, ` + internshipJoinColumns + `, ` + studentJoinColumns + `
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		JOIN students s ON s.id = a.student_id
		ORDER BY a.applied_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent applications: %w", err)
	}
	defer rows.Close()

	return r.collectWithRelations(rows, true)
}

// InterviewsBetween retrieves interview-stage applications whose interview
// falls in [from, to), ordered by interview time
func (r *ApplicationRepository) InterviewsBetween(ctx context.Context, from, to time.Time) ([]*models.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, ` + internshipJoinColumns + `, ` + studentJoinColumns + `
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		JOIN students s ON s.id = a.student_id
		WHERE a.status = 'interview_scheduled'
		  AND a.interview_date >= $1
		  AND a.interview_date < $2
		ORDER BY a.interview_date
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error listing interviews: %w", err)
	}
	defer rows.Close()

	return r.collectWithRelations(rows, true)
}

const internshipJoinColumns = `
	i.id, i.title, i.company, i.description, i.required_skills,
	i.eligible_departments, i.duration_months, i.stipend_min, i.stipend_max,
	i.location, i.mode, i.placement_conversion_probability, i.total_seats,
	i.seats_remaining, i.start_date, i.application_deadline, i.posted_by,
	i.is_verified, i.is_active, i.created_at`

const studentJoinColumns = `
	s.id, s.user_id, s.student_number, s.full_name, s.department, s.semester,
	s.cgpa, s.phone, s.cover_letter, s.skills, s.certifications, s.preferences,
	s.resume_url, s.employability_score, s.profile_completed, s.last_updated`

func (r *ApplicationRepository) scanRow(row pgx.Row, application *models.Application) error {
	return row.Scan(
		&application.ID,
		&application.StudentID,
		&application.InternshipID,
		&application.Status,
		&application.MentorComments,
		&application.MentorActionDate,
		&application.InterviewDate,
		&application.InterviewMode,
		&application.InterviewLink,
		&application.AppliedAt,
	)
}

func (r *ApplicationRepository) collectWithRelations(rows pgx.Rows, withStudent bool) ([]*models.Application, error) {
	var applications []*models.Application
	for rows.Next() {
		var application models.Application
		var internship models.Internship

		targets := []interface{}{
			&application.ID,
			&application.StudentID,
			&application.InternshipID,
			&application.Status,
			&application.MentorComments,
			&application.MentorActionDate,
			&application.InterviewDate,
			&application.InterviewMode,
			&application.InterviewLink,
			&application.AppliedAt,
			&internship.ID,
			&internship.Title,
			&internship.Company,
			&internship.Description,
			&internship.RequiredSkills,
			&internship.EligibleDepartments,
			&internship.DurationMonths,
			&internship.StipendMin,
			&internship.StipendMax,
			&internship.Location,
			&internship.Mode,
			&internship.PlacementConversionProbability,
			&internship.TotalSeats,
			&internship.SeatsRemaining,
			&internship.StartDate,
			&internship.ApplicationDeadline,
			&internship.PostedBy,
			&internship.IsVerified,
			&internship.IsActive,
			&internship.CreatedAt,
		}

		var student models.Student
		if withStudent {
			targets = append(targets,
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
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}

		application.Internship = &internship
		if withStudent {
			application.Student = &student
		}
		applications = append(applications, &application)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return applications, nil
}
