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

// CertificateRepository handles database operations for completion certificates
type CertificateRepository struct {
	db *pgxpool.Pool
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: db,
	}
}

const certificateColumns = `
	id, student_id, internship_id, application_id, certificate_number,
	certificate_url, verification_code, issued_date`

// Create inserts a certificate record. One certificate per application is
// enforced by the database.
func (r *CertificateRepository) Create(ctx context.Context, certificate *models.Certificate) error {
	query := `
		INSERT INTO certificates (
			student_id, internship_id, application_id, certificate_number,
			certificate_url, verification_code, issued_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		certificate.StudentID,
		certificate.InternshipID,
		certificate.ApplicationID,
		certificate.CertificateNumber,
		certificate.CertificateURL,
		certificate.VerificationCode,
		certificate.IssuedDate,
	).Scan(&certificate.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCertificateAlreadyIssued
		}
		return fmt.Errorf("error creating certificate: %w", err)
	}

	return nil
}

// GetByApplicationID retrieves the certificate issued for an application
func (r *CertificateRepository) GetByApplicationID(ctx context.Context, applicationID int64) (*models.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE application_id = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, applicationID))
}

// GetByVerificationCode retrieves a certificate by its public verification code
func (r *CertificateRepository) GetByVerificationCode(ctx context.Context, code string) (*models.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE verification_code = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, code))
}

// ListByStudent retrieves all certificates issued to a student
func (r *CertificateRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE student_id = $1 ORDER BY issued_date DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing certificates: %w", err)
	}
	defer rows.Close()

	var certificates []*models.Certificate
	for rows.Next() {
		var certificate models.Certificate
		if err := r.scanRow(rows, &certificate); err != nil {
			return nil, fmt.Errorf("error scanning certificate: %w", err)
		}
		certificates = append(certificates, &certificate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating certificates: %w", err)
	}

	return certificates, nil
}

func (r *CertificateRepository) scanOne(row pgx.Row) (*models.Certificate, error) {
	var certificate models.Certificate
	if err := r.scanRow(row, &certificate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("error retrieving certificate: %w", err)
	}

	return &certificate, nil
}

func (r *CertificateRepository) scanRow(row pgx.Row, certificate *models.Certificate) error {
	return row.Scan(
		&certificate.ID,
		&certificate.StudentID,
		&certificate.InternshipID,
		&certificate.ApplicationID,
		&certificate.CertificateNumber,
		&certificate.CertificateURL,
		&certificate.VerificationCode,
		&certificate.IssuedDate,
	)
}
