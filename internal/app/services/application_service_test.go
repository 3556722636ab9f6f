package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/notification"
)

// ---- in-memory fakes ----

type fakeApplicationStore struct {
	apps    map[int64]*models.Application
	history map[int64][]models.StatusHistoryEntry
	nextID  int64
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{
		apps:    make(map[int64]*models.Application),
		history: make(map[int64][]models.StatusHistoryEntry),
	}
}

func (f *fakeApplicationStore) Create(_ context.Context, application *models.Application, seed models.StatusHistoryEntry) error {
	for _, existing := range f.apps {
		if existing.StudentID == application.StudentID && existing.InternshipID == application.InternshipID {
			return apperrors.ErrDuplicateApplication
		}
	}
	f.nextID++
	application.ID = f.nextID
	stored := *application
	f.apps[application.ID] = &stored
	seed.ApplicationID = application.ID
	f.history[application.ID] = []models.StatusHistoryEntry{seed}
	application.StatusHistory = []models.StatusHistoryEntry{seed}
	return nil
}

func (f *fakeApplicationStore) GetByID(_ context.Context, id int64) (*models.Application, error) {
	stored, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *stored
	copied.StatusHistory = append([]models.StatusHistoryEntry(nil), f.history[id]...)
	return &copied, nil
}

func (f *fakeApplicationStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range f.apps {
		if a.StudentID == studentID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeApplicationStore) List(_ context.Context, _ dto.ApplicationListFilter, _, _ int) ([]*models.Application, int64, error) {
	var out []*models.Application
	for _, a := range f.apps {
		copied := *a
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeApplicationStore) UpdateStatus(_ context.Context, application *models.Application) error {
	stored, ok := f.apps[application.ID]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	stored.Status = application.Status
	stored.MentorComments = application.MentorComments
	stored.MentorActionDate = application.MentorActionDate
	stored.InterviewDate = application.InterviewDate
	stored.InterviewMode = application.InterviewMode
	stored.InterviewLink = application.InterviewLink
	return nil
}

func (f *fakeApplicationStore) AppendHistory(_ context.Context, entry *models.StatusHistoryEntry) error {
	f.nextID++
	entry.ID = f.nextID
	f.history[entry.ApplicationID] = append(f.history[entry.ApplicationID], *entry)
	return nil
}

func (f *fakeApplicationStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.apps[id]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	delete(f.apps, id)
	delete(f.history, id)
	return nil
}

type fakeInternshipStore struct {
	internships map[int64]*models.Internship
}

func (f *fakeInternshipStore) GetByID(_ context.Context, id int64) (*models.Internship, error) {
	stored, ok := f.internships[id]
	if !ok {
		return nil, apperrors.ErrInternshipNotFound
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeInternshipStore) GetActiveForDepartment(_ context.Context, department string) ([]*models.Internship, error) {
	var out []*models.Internship
	for _, i := range f.internships {
		if !i.IsActive {
			continue
		}
		if len(i.EligibleDepartments) == 0 {
			out = append(out, i)
			continue
		}
		for _, d := range i.EligibleDepartments {
			if d == department {
				out = append(out, i)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeInternshipStore) DecrementSeats(_ context.Context, id int64) (int, error) {
	stored, ok := f.internships[id]
	if !ok {
		return 0, apperrors.ErrInternshipNotFound
	}
	if stored.SeatsRemaining > 0 {
		stored.SeatsRemaining--
	}
	return stored.SeatsRemaining, nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	stored, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return stored, nil
}

func (f *fakeStudentStore) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

type fakeAccountStore struct {
	users map[int64]*models.User
}

func (f *fakeAccountStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	stored, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return stored, nil
}

type fakeGateway struct {
	intents []notification.Intent
}

func (f *fakeGateway) Dispatch(intent notification.Intent) {
	f.intents = append(f.intents, intent)
}

// ---- fixture ----

type workflowFixture struct {
	service     *ApplicationService
	apps        *fakeApplicationStore
	internships *fakeInternshipStore
	gateway     *fakeGateway
	now         time.Time
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	apps := newFakeApplicationStore()
	internships := &fakeInternshipStore{internships: map[int64]*models.Internship{
		10: {
			ID:             10,
			Title:          "Backend Developer Intern",
			Company:        "Acme Corp",
			TotalSeats:     2,
			SeatsRemaining: 2,
			IsActive:       true,
		},
	}}
	students := &fakeStudentStore{students: map[int64]*models.Student{
		1: {ID: 1, UserID: 100, FullName: "Priya Sharma", Department: "Computer Science"},
		2: {ID: 2, UserID: 200, FullName: "Rahul Verma", Department: "Computer Science"},
	}}
	accounts := &fakeAccountStore{users: map[int64]*models.User{
		100: {ID: 100, Email: "priya@campus.edu"},
		200: {ID: 200, Email: "rahul@campus.edu"},
	}}
	gateway := &fakeGateway{}

	service := NewApplicationService(apps, internships, students, accounts, gateway,
		func() time.Time { return now }, zerolog.Nop())

	return &workflowFixture{
		service:     service,
		apps:        apps,
		internships: internships,
		gateway:     gateway,
		now:         now,
	}
}

// ---- tests ----

func TestApplyCreatesPendingApplication(t *testing.T) {
	f := newWorkflowFixture(t)

	application, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)

	assert.Equal(t, models.StatusMentorPending, application.Status)
	require.Len(t, application.StatusHistory, 1)
	assert.Equal(t, models.StatusApplied, application.StatusHistory[0].Status)
	assert.Equal(t, f.now, application.StatusHistory[0].Timestamp)
	assert.Nil(t, application.StatusHistory[0].UpdatedBy)

	// seats are untouched until selection
	assert.Equal(t, 2, f.internships.internships[10].SeatsRemaining)

	require.Len(t, f.gateway.intents, 1)
	assert.Equal(t, notification.KindApplicationSubmitted, f.gateway.intents[0].Kind)
	assert.Equal(t, "priya@campus.edu", f.gateway.intents[0].RecipientEmail)
}

func TestApplyRejectsDuplicate(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)

	_, err = f.service.Apply(context.Background(), 100, 10)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
}

func TestApplyRejectsWhenNoSeats(t *testing.T) {
	f := newWorkflowFixture(t)
	f.internships.internships[10].SeatsRemaining = 0

	_, err := f.service.Apply(context.Background(), 100, 10)
	assert.ErrorIs(t, err, apperrors.ErrNoSeatsAvailable)
	assert.Empty(t, f.gateway.intents)
}

func TestApplyRejectsInactiveInternship(t *testing.T) {
	f := newWorkflowFixture(t)
	f.internships.internships[10].IsActive = false

	_, err := f.service.Apply(context.Background(), 100, 10)
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
}

func TestMentorReviewApprove(t *testing.T) {
	f := newWorkflowFixture(t)
	application, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)
	mailsAfterApply := len(f.gateway.intents)

	reviewed, err := f.service.MentorReview(context.Background(), application.ID, 55, MentorActionApprove, "solid profile")
	require.NoError(t, err)

	assert.Equal(t, models.StatusMentorApproved, reviewed.Status)
	assert.Equal(t, "solid profile", reviewed.MentorComments)
	require.NotNil(t, reviewed.MentorActionDate)
	assert.Equal(t, f.now, *reviewed.MentorActionDate)

	require.Len(t, reviewed.StatusHistory, 2)
	last := reviewed.StatusHistory[1]
	assert.Equal(t, models.StatusMentorApproved, last.Status)
	require.NotNil(t, last.UpdatedBy)
	assert.Equal(t, int64(55), *last.UpdatedBy)

	// mentor decisions do not notify the student
	assert.Len(t, f.gateway.intents, mailsAfterApply)
}

func TestMentorReviewRequiresPendingStatus(t *testing.T) {
	f := newWorkflowFixture(t)
	application, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)

	_, err = f.service.MentorReview(context.Background(), application.ID, 55, MentorActionReject, "")
	require.NoError(t, err)

	_, err = f.service.MentorReview(context.Background(), application.ID, 55, MentorActionApprove, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestMentorReviewRejectsUnknownAction(t *testing.T) {
	f := newWorkflowFixture(t)
	application, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)

	_, err = f.service.MentorReview(context.Background(), application.ID, 55, "defer", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidMentorAction)
}

func TestUpdateStatusSelectedTakesOneSeat(t *testing.T) {
	f := newWorkflowFixture(t)
	first, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)
	second, err := f.service.Apply(context.Background(), 200, 10)
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), first.ID, 77, dto.UpdateStatusRequest{Status: models.StatusSelected})
	require.NoError(t, err)
	assert.Equal(t, 1, f.internships.internships[10].SeatsRemaining)

	_, err = f.service.UpdateStatus(context.Background(), second.ID, 77, dto.UpdateStatusRequest{Status: models.StatusSelected})
	require.NoError(t, err)
	assert.Equal(t, 0, f.internships.internships[10].SeatsRemaining)
}

func TestUpdateStatusSelectedFloorsAtZero(t *testing.T) {
	f := newWorkflowFixture(t)
	f.internships.internships[10].SeatsRemaining = 0
	application, err := f.service.Apply(context.Background(), 100, 10)
	// applying is blocked at zero seats, so place the row directly
	require.ErrorIs(t, err, apperrors.ErrNoSeatsAvailable)
	require.Nil(t, application)

	f.internships.internships[10].SeatsRemaining = 1
	application, err = f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)
	f.internships.internships[10].SeatsRemaining = 0

	// selecting when the counter already hit zero must not go negative
	_, err = f.service.UpdateStatus(context.Background(), application.ID, 77, dto.UpdateStatusRequest{Status: models.StatusSelected})
	require.NoError(t, err)
	assert.Equal(t, 0, f.internships.internships[10].SeatsRemaining)
}

func TestUpdateStatusInterviewRequiresDateAndLink(t *testing.T) {
	f := newWorkflowFixture(t)
	application, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), application.ID, 77, dto.UpdateStatusRequest{
		Status: models.StatusInterviewScheduled,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStatusInterviewNotifiesTwice(t *testing.T) {
	f := newWorkflowFixture(t)
	application, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)
	mailsAfterApply := len(f.gateway.intents)

	interviewAt := f.now.Add(48 * time.Hour)
	updated, err := f.service.UpdateStatus(context.Background(), application.ID, 77, dto.UpdateStatusRequest{
		Status:        models.StatusInterviewScheduled,
		InterviewDate: &interviewAt,
		InterviewMode: models.InterviewOnline,
		InterviewLink: "https://meet.example.com/abc",
	})
	require.NoError(t, err)

	require.NotNil(t, updated.InterviewDate)
	assert.Equal(t, interviewAt, *updated.InterviewDate)
	assert.Equal(t, "https://meet.example.com/abc", updated.InterviewLink)

	// interview details plus the generic status update
	require.Len(t, f.gateway.intents, mailsAfterApply+2)
	assert.Equal(t, notification.KindInterviewScheduled, f.gateway.intents[mailsAfterApply].Kind)
	assert.Equal(t, notification.KindApplicationStatusUpdate, f.gateway.intents[mailsAfterApply+1].Kind)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newWorkflowFixture(t)
	application, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), application.ID, 77, dto.UpdateStatusRequest{
		Status: models.ApplicationStatus("archived"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestStatusHistoryIsAppendOnly(t *testing.T) {
	f := newWorkflowFixture(t)
	application, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)

	_, err = f.service.MentorReview(context.Background(), application.ID, 55, MentorActionApprove, "ok")
	require.NoError(t, err)
	_, err = f.service.UpdateStatus(context.Background(), application.ID, 77, dto.UpdateStatusRequest{Status: models.StatusShortlisted})
	require.NoError(t, err)
	_, err = f.service.UpdateStatus(context.Background(), application.ID, 77, dto.UpdateStatusRequest{Status: models.StatusSelected})
	require.NoError(t, err)

	final, err := f.service.GetByID(context.Background(), application.ID)
	require.NoError(t, err)

	require.Len(t, final.StatusHistory, 4)
	want := []models.ApplicationStatus{
		models.StatusApplied,
		models.StatusMentorApproved,
		models.StatusShortlisted,
		models.StatusSelected,
	}
	for i, entry := range final.StatusHistory {
		assert.Equal(t, want[i], entry.Status)
	}
}

func TestDeleteDoesNotRestoreSeats(t *testing.T) {
	f := newWorkflowFixture(t)
	application, err := f.service.Apply(context.Background(), 100, 10)
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), application.ID, 77, dto.UpdateStatusRequest{Status: models.StatusSelected})
	require.NoError(t, err)
	require.Equal(t, 1, f.internships.internships[10].SeatsRemaining)

	require.NoError(t, f.service.Delete(context.Background(), application.ID))

	_, err = f.service.GetByID(context.Background(), application.ID)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	assert.Equal(t, 1, f.internships.internships[10].SeatsRemaining)
}
