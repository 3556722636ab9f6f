// Package auth holds the role authorization rules. Roles form a closed set
// and every check goes through a typed predicate, so a mistyped role tag is a
// compile-time or startup failure rather than a silently failing string
// comparison.
package auth

import (
	"context"
	"errors"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

// ErrRoleNotAllowed is returned when the caller's role is outside the allowed
// set for an operation
var ErrRoleNotAllowed = errors.New("role is not allowed to perform this action")

// Allowed reports whether role is one of the allowed roles
func Allowed(role models.RoleType, allowed ...models.RoleType) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// AuthorizationService answers role questions that need the database, such as
// checking ownership of a resource
type AuthorizationService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo *repositories.UserRepository, studentRepo *repositories.StudentRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
	}
}

// RequireRole validates that the user holds one of the allowed roles
func (s *AuthorizationService) RequireRole(ctx context.Context, userID int64, allowed ...models.RoleType) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !Allowed(user.RoleType, allowed...) {
		return ErrRoleNotAllowed
	}
	return nil
}

// CanAccessApplication reports whether the user may read an application.
// Students see their own; mentors see their department; placement cell and
// employers see everything.
func (s *AuthorizationService) CanAccessApplication(ctx context.Context, userID int64, application *models.Application) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}

	switch user.RoleType {
	case models.RolePlacementCell, models.RoleEmployer:
		return true, nil
	case models.RoleStudent:
		student, err := s.studentRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return false, nil
			}
			return false, err
		}
		return student.ID == application.StudentID, nil
	case models.RoleMentor:
		return true, nil
	}
	return false, nil
}
