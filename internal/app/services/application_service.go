package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/notification"
)

// Mentor decisions
const (
	MentorActionApprove = "approve"
	MentorActionReject  = "reject"
)

// ApplicationService drives the application lifecycle: apply, mentor review,
// placement-side status changes and deletion. Every status change appends one
// history entry; seat accounting happens only when a candidate is selected.
type ApplicationService struct {
	applications ApplicationStore
	internships  InternshipStore
	students     StudentStore
	accounts     AccountStore
	notifier     notification.Gateway
	now          Clock
	logger       zerolog.Logger
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	applications ApplicationStore,
	internships InternshipStore,
	students StudentStore,
	accounts AccountStore,
	notifier notification.Gateway,
	now Clock,
	logger zerolog.Logger,
) *ApplicationService {
	if now == nil {
		now = time.Now
	}
	return &ApplicationService{
		applications: applications,
		internships:  internships,
		students:     students,
		accounts:     accounts,
		notifier:     notifier,
		now:          now,
		logger:       logger,
	}
}

// Apply submits a new application for the student owning the given user
// account. The application starts at mentor_pending with an 'applied' history
// entry; seats are not taken until the candidate is selected.
func (s *ApplicationService) Apply(ctx context.Context, userID, internshipID int64) (*models.Application, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	internship, err := s.internships.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if !internship.IsActive {
		return nil, apperrors.ErrInternshipNotFound
	}
	if !internship.HasSeats() {
		return nil, apperrors.ErrNoSeatsAvailable
	}

	appliedAt := s.now()
	application := &models.Application{
		StudentID:    student.ID,
		InternshipID: internship.ID,
		Status:       models.StatusMentorPending,
		AppliedAt:    appliedAt,
	}
	seed := models.StatusHistoryEntry{
		Status:    models.StatusApplied,
		Timestamp: appliedAt,
	}

	if err := s.applications.Create(ctx, application, seed); err != nil {
		return nil, err
	}

	s.notify(ctx, userID, notification.Intent{
		Kind: notification.KindApplicationSubmitted,
		TemplateData: map[string]string{
			"studentName":     student.FullName,
			"internshipTitle": internship.Title,
		},
	})

	return application, nil
}

// GetByID retrieves one application with its history
func (s *ApplicationService) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	return s.applications.GetByID(ctx, id)
}

// ListMine retrieves the applications of the student owning the given user
// account
func (s *ApplicationService) ListMine(ctx context.Context, userID int64) ([]*models.Application, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.applications.ListByStudent(ctx, student.ID)
}

// List retrieves applications matching the filter with relations populated
func (s *ApplicationService) List(ctx context.Context, filter dto.ApplicationListFilter, offset, limit int) ([]*models.Application, int64, error) {
	return s.applications.List(ctx, filter, offset, limit)
}

// MentorReview records a mentor's approve or reject decision. Only
// applications sitting at mentor_pending can be reviewed, and the decision
// does not notify the student.
func (s *ApplicationService) MentorReview(ctx context.Context, applicationID, reviewerID int64, action, comments string) (*models.Application, error) {
	var next models.ApplicationStatus
	switch action {
	case MentorActionApprove:
		next = models.StatusMentorApproved
	case MentorActionReject:
		next = models.StatusMentorRejected
	default:
		return nil, apperrors.ErrInvalidMentorAction
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status != models.StatusMentorPending {
		return nil, fmt.Errorf("%w: application is %s, mentor review needs mentor_pending",
			apperrors.ErrInvalidTransition, application.Status)
	}

	actionDate := s.now()
	application.Status = next
	application.MentorComments = comments
	application.MentorActionDate = &actionDate

	if err := s.applications.UpdateStatus(ctx, application); err != nil {
		return nil, err
	}

	entry := models.StatusHistoryEntry{
		ApplicationID: application.ID,
		Status:        next,
		Timestamp:     actionDate,
		UpdatedBy:     &reviewerID,
		Comment:       comments,
	}
	if err := s.applications.AppendHistory(ctx, &entry); err != nil {
		return nil, err
	}
	application.StatusHistory = append(application.StatusHistory, entry)

	return application, nil
}

// UpdateStatus moves an application to any known status. Scheduling an
// interview requires a date and link and notifies the student with the
// details; selecting a candidate takes one seat, flooring at zero. Every
// change appends a history entry and sends the generic status update mail.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, actorID int64, req dto.UpdateStatusRequest) (*models.Application, error) {
	if !models.ValidApplicationStatus(req.Status) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, req.Status)
	}
	if req.Status == models.StatusInterviewScheduled {
		if req.InterviewDate == nil || req.InterviewLink == "" {
			return nil, apperrors.NewValidationError("interview date and link are required to schedule an interview")
		}
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	student, err := s.students.GetByID(ctx, application.StudentID)
	if err != nil {
		return nil, err
	}
	internship, err := s.internships.GetByID(ctx, application.InternshipID)
	if err != nil {
		return nil, err
	}

	application.Status = req.Status

	if req.Status == models.StatusInterviewScheduled {
		application.InterviewDate = req.InterviewDate
		application.InterviewMode = req.InterviewMode
		application.InterviewLink = req.InterviewLink
	}

	if req.Status == models.StatusSelected {
		remaining, err := s.internships.DecrementSeats(ctx, internship.ID)
		if err != nil {
			return nil, err
		}
		s.logger.Info().
			Int64("internshipId", internship.ID).
			Int("seatsRemaining", remaining).
			Msg("Candidate selected, seat taken")
	}

	if err := s.applications.UpdateStatus(ctx, application); err != nil {
		return nil, err
	}

	entry := models.StatusHistoryEntry{
		ApplicationID: application.ID,
		Status:        req.Status,
		Timestamp:     s.now(),
		UpdatedBy:     &actorID,
		Comment:       req.Comment,
	}
	if err := s.applications.AppendHistory(ctx, &entry); err != nil {
		return nil, err
	}
	application.StatusHistory = append(application.StatusHistory, entry)

	if req.Status == models.StatusInterviewScheduled {
		s.notify(ctx, student.UserID, notification.Intent{
			Kind: notification.KindInterviewScheduled,
			TemplateData: map[string]string{
				"studentName":     student.FullName,
				"internshipTitle": internship.Title,
				"interviewDate":   req.InterviewDate.Format(time.RFC1123),
				"interviewLink":   req.InterviewLink,
			},
		})
	}

	s.notify(ctx, student.UserID, notification.Intent{
		Kind: notification.KindApplicationStatusUpdate,
		TemplateData: map[string]string{
			"studentName":     student.FullName,
			"internshipTitle": internship.Title,
			"status":          string(req.Status),
		},
	})

	return application, nil
}

// Delete removes an application permanently. Seats already taken by a
// selected candidate are not restored.
func (s *ApplicationService) Delete(ctx context.Context, applicationID int64) error {
	return s.applications.Delete(ctx, applicationID)
}

// notify resolves the recipient's account email and hands the intent to the
// gateway. Failures are logged and swallowed; notifications never fail an
// operation.
func (s *ApplicationService) notify(ctx context.Context, userID int64, intent notification.Intent) {
	user, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userId", userID).Msg("Could not resolve notification recipient")
		return
	}
	intent.RecipientEmail = user.Email
	s.notifier.Dispatch(intent)
}
