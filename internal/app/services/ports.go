package services

import (
	"context"
	"time"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
)

// Clock supplies the current time. Injected so history timestamps and mentor
// action dates are deterministic under test.
type Clock func() time.Time

// ApplicationStore is the persistence surface the workflow needs
type ApplicationStore interface {
	Create(ctx context.Context, application *models.Application, seed models.StatusHistoryEntry) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	List(ctx context.Context, filter dto.ApplicationListFilter, offset, limit int) ([]*models.Application, int64, error)
	UpdateStatus(ctx context.Context, application *models.Application) error
	AppendHistory(ctx context.Context, entry *models.StatusHistoryEntry) error
	Delete(ctx context.Context, id int64) error
}

// InternshipStore is the internship surface the workflow and recommendation
// services need
type InternshipStore interface {
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	GetActiveForDepartment(ctx context.Context, department string) ([]*models.Internship, error)
	DecrementSeats(ctx context.Context, id int64) (int, error)
}

// StudentStore resolves student profiles
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
}

// AccountStore resolves user accounts, used to find notification recipients
type AccountStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
