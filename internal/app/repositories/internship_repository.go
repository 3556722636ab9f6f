package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

// InternshipRepository handles database operations for internship postings
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new internship repository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: db,
	}
}

const internshipColumns = `
	id, title, company, description, required_skills, eligible_departments,
	duration_months, stipend_min, stipend_max, location, mode,
	placement_conversion_probability, total_seats, seats_remaining,
	start_date, application_deadline, posted_by, is_verified, is_active, created_at`

// Create inserts a new internship posting and sets the generated ID
func (r *InternshipRepository) Create(ctx context.Context, internship *models.Internship) error {
	query := `
		INSERT INTO internships (
			title, company, description, required_skills, eligible_departments,
			duration_months, stipend_min, stipend_max, location, mode,
			placement_conversion_probability, total_seats, seats_remaining,
			start_date, application_deadline, posted_by, is_verified, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		internship.Title,
		internship.Company,
		internship.Description,
		internship.RequiredSkills,
		internship.EligibleDepartments,
		internship.DurationMonths,
		internship.StipendMin,
		internship.StipendMax,
		internship.Location,
		internship.Mode,
		internship.PlacementConversionProbability,
		internship.TotalSeats,
		internship.SeatsRemaining,
		internship.StartDate,
		internship.ApplicationDeadline,
		internship.PostedBy,
		internship.IsVerified,
		internship.IsActive,
	).Scan(&internship.ID, &internship.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating internship: %w", err)
	}

	return nil
}

// GetByID retrieves an internship by ID regardless of its active flag
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE id = $1`

	var internship models.Internship
	err := r.scanRow(r.db.QueryRow(ctx, query, id), &internship)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("error retrieving internship: %w", err)
	}

	return &internship, nil
}

// GetAll retrieves active internships matching the filter, newest first
func (r *InternshipRepository) GetAll(ctx context.Context, filter dto.InternshipListFilter, offset, limit int) ([]*models.Internship, int64, error) {
	conditions := []string{"is_active = TRUE"}
	args := []interface{}{}
	argPos := 1

	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(eligible_departments)", argPos))
		args = append(args, filter.Department)
		argPos++
	}
	if filter.Mode != "" {
		conditions = append(conditions, fmt.Sprintf("mode = $%d", argPos))
		args = append(args, filter.Mode)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM internships ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting internships: %w", err)
	}

	query := `SELECT ` + internshipColumns + ` FROM internships ` + where +
		fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d LIMIT $%d", argPos, argPos+1)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing internships: %w", err)
	}
	defer rows.Close()

	internships, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}

	return internships, total, nil
}

// GetActiveForDepartment retrieves every active internship that is open to
// the given department. Postings with no department restriction are included.
func (r *InternshipRepository) GetActiveForDepartment(ctx context.Context, department string) ([]*models.Internship, error) {
	query := `
		SELECT ` + internshipColumns + `
		FROM internships
		WHERE is_active = TRUE
		  AND (cardinality(eligible_departments) = 0 OR $1 = ANY(eligible_departments))
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("error listing internships for department: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// Update persists the mutable posting fields
func (r *InternshipRepository) Update(ctx context.Context, internship *models.Internship) error {
	query := `
		UPDATE internships
		SET title = $2,
			company = $3,
			description = $4,
			required_skills = $5,
			eligible_departments = $6,
			duration_months = $7,
			stipend_min = $8,
			stipend_max = $9,
			location = $10,
			mode = $11,
			placement_conversion_probability = $12,
			start_date = $13,
			application_deadline = $14,
			is_verified = $15
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		internship.ID,
		internship.Title,
		internship.Company,
		internship.Description,
		internship.RequiredSkills,
		internship.EligibleDepartments,
		internship.DurationMonths,
		internship.StipendMin,
		internship.StipendMax,
		internship.Location,
		internship.Mode,
		internship.PlacementConversionProbability,
		internship.StartDate,
		internship.ApplicationDeadline,
		internship.IsVerified,
	)
	if err != nil {
		return fmt.Errorf("error updating internship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	return nil
}

// Deactivate soft-deletes an internship so it stops appearing in listings
// and recommendations. Existing applications are untouched.
func (r *InternshipRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE internships SET is_active = FALSE WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deactivating internship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	return nil
}

// DecrementSeats atomically takes one seat, flooring at zero, and returns the
// remaining count. The floor is applied in SQL so concurrent selections can
// never drive the counter negative.
func (r *InternshipRepository) DecrementSeats(ctx context.Context, id int64) (int, error) {
	query := `
		UPDATE internships
		SET seats_remaining = GREATEST(seats_remaining - 1, 0)
		WHERE id = $1
		RETURNING seats_remaining
	`

	var remaining int
	err := r.db.QueryRow(ctx, query, id).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrInternshipNotFound
		}
		return 0, fmt.Errorf("error decrementing seats: %w", err)
	}

	return remaining, nil
}

// CountActive returns the number of active internships
func (r *InternshipRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM internships WHERE is_active = TRUE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting internships: %w", err)
	}

	return count, nil
}

// SeatTotals aggregates total and remaining seats across active internships
func (r *InternshipRepository) SeatTotals(ctx context.Context) (dto.SeatTotals, error) {
	query := `
		SELECT COALESCE(SUM(total_seats), 0), COALESCE(SUM(seats_remaining), 0)
		FROM internships
		WHERE is_active = TRUE
	`

	var totals dto.SeatTotals
	if err := r.db.QueryRow(ctx, query).Scan(&totals.TotalSeats, &totals.SeatsRemaining); err != nil {
		return dto.SeatTotals{}, fmt.Errorf("error aggregating seats: %w", err)
	}

	return totals, nil
}

// TopRequiredSkills returns the most demanded skills across active
// internships, ordered by how many postings require each
func (r *InternshipRepository) TopRequiredSkills(ctx context.Context, limit int) ([]dto.SkillCount, error) {
	query := `
		SELECT skill, COUNT(*) AS demand
		FROM internships, unnest(required_skills) AS skill
		WHERE is_active = TRUE
		GROUP BY skill
		ORDER BY demand DESC, skill
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error aggregating skill demand: %w", err)
	}
	defer rows.Close()

	var skills []dto.SkillCount
	for rows.Next() {
		var sc dto.SkillCount
		if err := rows.Scan(&sc.Skill, &sc.Count); err != nil {
			return nil, fmt.Errorf("error scanning skill demand: %w", err)
		}
		skills = append(skills, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill demand: %w", err)
	}

	return skills, nil
}

func (r *InternshipRepository) collect(rows pgx.Rows) ([]*models.Internship, error) {
	var internships []*models.Internship
	for rows.Next() {
		var internship models.Internship
		if err := r.scanRow(rows, &internship); err != nil {
			return nil, fmt.Errorf("error scanning internship: %w", err)
		}
		internships = append(internships, &internship)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating internships: %w", err)
	}

	return internships, nil
}

func (r *InternshipRepository) scanRow(row pgx.Row, internship *models.Internship) error {
	return row.Scan(
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
	)
}
